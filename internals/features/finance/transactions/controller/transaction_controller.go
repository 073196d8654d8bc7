package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"ucentric_backend/internals/features/finance/transactions/service"
	helper "ucentric_backend/internals/helpers"
	"ucentric_backend/internals/helpers/dbtime"
	"ucentric_backend/internals/helpers/listquery"
)

type TransactionController struct {
	svc *service.TransactionService
}

func NewTransactionController(svc *service.TransactionService) *TransactionController {
	return &TransactionController{svc: svc}
}

// GET /transactions?page&search&status&startDate&endDate&includeStats
func (ctrl *TransactionController) List(c *fiber.Ctx) error {
	p, err := listquery.ParseParams(c, helper.DefaultOpts, dbtime.GetLocation(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonList(c, ctrl.svc.List(c.UserContext(), p))
}

// GET /transactions/:orderId/gateway-status
func (ctrl *TransactionController) GatewayStatus(c *fiber.Ctx) error {
	orderID := c.Params("orderId")
	if orderID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Order ID is required")
	}
	st, err := ctrl.svc.GatewayStatus(c.UserContext(), orderID)
	switch {
	case err == nil:
		return helper.JsonOK(c, "", st)
	case errors.Is(err, service.ErrNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Transaction not found")
	case errors.Is(err, service.ErrGatewayNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Order not found at payment gateway")
	case errors.Is(err, service.ErrGatewayDisabled):
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Payment gateway is not configured")
	default:
		return helper.JsonInternal(c, err, "Failed to check payment status")
	}
}
