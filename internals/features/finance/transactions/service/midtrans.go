package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"

	"ucentric_backend/internals/features/finance/transactions/model"
)

var (
	ErrGatewayDisabled = errors.New("payment gateway not configured")
	ErrGatewayNotFound = errors.New("order not found at gateway")
)

// Gateway looks up an order's live status; it never writes anything back.
type Gateway interface {
	Status(ctx context.Context, orderID string) (*model.GatewayStatus, error)
}

type midtransGateway struct {
	client coreapi.Client
}

// NewMidtransGateway returns nil when serverKey is empty.
func NewMidtransGateway(serverKey string, useProduction bool) Gateway {
	if strings.TrimSpace(serverKey) == "" {
		return nil
	}
	g := &midtransGateway{}
	if useProduction {
		g.client.New(serverKey, midtrans.Production)
	} else {
		g.client.New(serverKey, midtrans.Sandbox)
	}
	return g
}

func (g *midtransGateway) Status(_ context.Context, orderID string) (*model.GatewayStatus, error) {
	res, merr := g.client.CheckTransaction(orderID)
	if merr != nil {
		if merr.StatusCode == http.StatusNotFound {
			return nil, ErrGatewayNotFound
		}
		return nil, fmt.Errorf("midtrans check %s: %s", orderID, merr.Message)
	}
	if res == nil {
		return nil, ErrGatewayNotFound
	}
	if res.StatusCode == "404" {
		return nil, ErrGatewayNotFound
	}
	return &model.GatewayStatus{
		OrderID:           res.OrderID,
		TransactionID:     res.TransactionID,
		TransactionStatus: res.TransactionStatus,
		FraudStatus:       res.FraudStatus,
		PaymentType:       res.PaymentType,
		GrossAmount:       res.GrossAmount,
		TransactionTime:   res.TransactionTime,
		StatusCode:        res.StatusCode,
		StatusMessage:     res.StatusMessage,
	}, nil
}
