package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ucentric_backend/internals/features/finance/withdrawals/dto"
	"ucentric_backend/internals/features/finance/withdrawals/service"
	helper "ucentric_backend/internals/helpers"
	"ucentric_backend/internals/helpers/dbtime"
	"ucentric_backend/internals/helpers/listquery"
)

var validateWithdrawal = helper.NewValidator()

type WithdrawalController struct {
	svc *service.WithdrawalService
}

func NewWithdrawalController(svc *service.WithdrawalService) *WithdrawalController {
	return &WithdrawalController{svc: svc}
}

// GET /withdrawals?page&search&status&startDate&endDate&includeStats
func (ctrl *WithdrawalController) List(c *fiber.Ctx) error {
	p, err := listquery.ParseParams(c, helper.DefaultOpts, dbtime.GetLocation(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonList(c, ctrl.svc.List(c.UserContext(), p))
}

// GET /withdrawals/:id
func (ctrl *WithdrawalController) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid withdrawal ID")
	}
	w, err := ctrl.svc.Get(c.UserContext(), id)
	if err != nil {
		return ctrl.fail(c, err, "Failed to fetch withdrawal")
	}
	return helper.JsonOK(c, "", w)
}

// PUT /withdrawals/:id/status {status}
func (ctrl *WithdrawalController) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid withdrawal ID")
	}
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateWithdrawal.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err, dto.Messages))
	}

	w, err := ctrl.svc.UpdateStatus(c.UserContext(), id, req.Status)
	if err != nil {
		return ctrl.fail(c, err, "Failed to update status")
	}
	return helper.JsonUpdated(c, "Status updated", w)
}

func (ctrl *WithdrawalController) fail(c *fiber.Ctx, err error, msg string) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Withdrawal not found")
	case errors.Is(err, service.ErrInvalidStatus):
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid status")
	default:
		return helper.JsonInternal(c, err, msg)
	}
}
