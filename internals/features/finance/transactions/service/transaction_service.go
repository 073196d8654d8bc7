package service

import (
	"context"
	"errors"
	"strings"

	"ucentric_backend/internals/features/finance/transactions/model"
	"ucentric_backend/internals/features/finance/transactions/repository"
	"ucentric_backend/internals/helpers/listquery"
)

var ErrNotFound = errors.New("transaction not found")

type TransactionService struct {
	repo    repository.TransactionRepository
	gateway Gateway
}

func NewTransactionService(repo repository.TransactionRepository, gateway Gateway) *TransactionService {
	return &TransactionService{repo: repo, gateway: gateway}
}

func (s *TransactionService) List(ctx context.Context, p listquery.Params) listquery.Result[model.TransactionModel] {
	return s.repo.List(ctx, p)
}

// GatewayStatus only queries orders we have a payments row for.
func (s *TransactionService) GatewayStatus(ctx context.Context, orderID string) (*model.GatewayStatus, error) {
	if s.gateway == nil {
		return nil, ErrGatewayDisabled
	}
	orderID = strings.TrimSpace(orderID)
	ok, err := s.repo.ExistsOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	return s.gateway.Status(ctx, orderID)
}
