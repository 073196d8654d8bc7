package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ucentric_backend/internals/features/hr/applications/dto"
	"ucentric_backend/internals/features/hr/applications/service"
	helper "ucentric_backend/internals/helpers"
	"ucentric_backend/internals/helpers/dbtime"
	"ucentric_backend/internals/helpers/listquery"
)

var validateApplication = helper.NewValidator()

type ApplicationController struct {
	svc *service.ApplicationService
}

func NewApplicationController(svc *service.ApplicationService) *ApplicationController {
	return &ApplicationController{svc: svc}
}

// GET /applications?page&limit&search&status&startDate&endDate&includeStats
func (ctrl *ApplicationController) List(c *fiber.Ctx) error {
	p, err := listquery.ParseParams(c, helper.ApplicationOpts, dbtime.GetLocation(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonList(c, ctrl.svc.List(c.UserContext(), p))
}

// GET /applications/:id
func (ctrl *ApplicationController) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid application ID")
	}
	app, err := ctrl.svc.Get(c.UserContext(), id)
	if err != nil {
		return ctrl.fail(c, err, "Failed to fetch application")
	}
	return helper.JsonOK(c, "", app)
}

// POST /applications (publik dan entri manual HR)
func (ctrl *ApplicationController) Submit(c *fiber.Ctx) error {
	var req dto.CreateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validateApplication.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err, dto.Messages))
	}

	app, err := ctrl.svc.Submit(c.UserContext(), req)
	if err != nil {
		return ctrl.fail(c, err, "Failed to submit application")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SubmitResponse{
		Success:       true,
		Message:       "Application submitted successfully",
		ApplicationID: app.ID.String(),
	})
}

// PUT /applications {id, status} atau PUT /applications/:id {status}
func (ctrl *ApplicationController) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if pid := c.Params("id"); pid != "" {
		req.ID = pid
	}
	if err := validateApplication.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err, dto.Messages))
	}

	app, err := ctrl.svc.UpdateStatus(c.UserContext(), uuid.MustParse(req.ID), req.Status)
	if err != nil {
		return ctrl.fail(c, err, "Failed to update application")
	}
	return helper.JsonUpdated(c, "Application updated successfully", app)
}

// DELETE /applications?id= atau /applications/:id
func (ctrl *ApplicationController) Delete(c *fiber.Ctx) error {
	raw := c.Params("id")
	if raw == "" {
		raw = c.Query("id")
	}
	if raw == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid application ID")
	}
	if err := ctrl.svc.Delete(c.UserContext(), id); err != nil {
		return ctrl.fail(c, err, "Failed to delete application")
	}
	return helper.JsonDeleted(c, "Application deleted successfully")
}

func (ctrl *ApplicationController) fail(c *fiber.Ctx, err error, msg string) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Application not found")
	case errors.Is(err, service.ErrRoleNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Role not found")
	case errors.Is(err, service.ErrDuplicateApplication):
		return helper.JsonError(c, fiber.StatusConflict, "This email has already applied for this role.")
	case errors.Is(err, service.ErrInvalidStatus):
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid status")
	default:
		return helper.JsonInternal(c, err, msg)
	}
}
