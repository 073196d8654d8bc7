package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ucentric_backend/internals/features/hr/roles/dto"
	"ucentric_backend/internals/features/hr/roles/service"
	helper "ucentric_backend/internals/helpers"
	"ucentric_backend/internals/helpers/dbtime"
	"ucentric_backend/internals/helpers/listquery"
)

var validateRole = helper.NewValidator()

type RoleController struct {
	svc *service.RoleService
}

func NewRoleController(svc *service.RoleService) *RoleController {
	return &RoleController{svc: svc}
}

// GET /roles?page&limit&search&status=active|inactive&includeStats
func (ctrl *RoleController) List(c *fiber.Ctx) error {
	p, err := listquery.ParseParams(c, helper.DefaultOpts, dbtime.GetLocation(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonList(c, ctrl.svc.List(c.UserContext(), p))
}

// GET /roles/:id
func (ctrl *RoleController) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid role ID")
	}
	role, err := ctrl.svc.Get(c.UserContext(), id)
	if err != nil {
		return ctrl.fail(c, err, "Failed to fetch role")
	}
	return helper.JsonOK(c, "", role)
}

// POST /roles
func (ctrl *RoleController) Create(c *fiber.Ctx) error {
	var req dto.RoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validateRole.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err, dto.Messages))
	}

	role, err := ctrl.svc.Create(c.UserContext(), req)
	if err != nil {
		return ctrl.fail(c, err, "Failed to create role")
	}
	return helper.JsonCreated(c, "Role created successfully", role)
}

// PUT /roles (id di body) atau PUT /roles/:id
func (ctrl *RoleController) Update(c *fiber.Ctx) error {
	var req dto.RoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if pid := c.Params("id"); pid != "" {
		req.ID = pid
	}
	if strings.TrimSpace(req.ID) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID is required")
	}
	req.Normalize()
	if err := validateRole.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err, dto.Messages))
	}

	role, err := ctrl.svc.Update(c.UserContext(), uuid.MustParse(req.ID), req)
	if err != nil {
		return ctrl.fail(c, err, "Failed to update role")
	}
	return helper.JsonUpdated(c, "Role updated successfully", role)
}

// DELETE /roles?id= atau DELETE /roles/:id
func (ctrl *RoleController) Delete(c *fiber.Ctx) error {
	raw := c.Params("id")
	if raw == "" {
		raw = c.Query("id")
	}
	if raw == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid role ID")
	}
	if err := ctrl.svc.Delete(c.UserContext(), id); err != nil {
		return ctrl.fail(c, err, "Failed to delete role")
	}
	return helper.JsonDeleted(c, "Role deleted successfully")
}

// GET /public/careers
func (ctrl *RoleController) Careers(c *fiber.Ctx) error {
	roles, err := ctrl.svc.Careers(c.UserContext())
	if err != nil {
		return helper.JsonInternal(c, err, "Failed to fetch roles")
	}
	return helper.JsonOK(c, "", roles)
}

// GET /public/careers/:slug
func (ctrl *RoleController) CareerBySlug(c *fiber.Ctx) error {
	role, err := ctrl.svc.CareerBySlug(c.UserContext(), strings.ToLower(strings.TrimSpace(c.Params("slug"))))
	if err != nil {
		return ctrl.fail(c, err, "Failed to fetch role")
	}
	return helper.JsonOK(c, "", role)
}

func (ctrl *RoleController) fail(c *fiber.Ctx, err error, msg string) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Role not found")
	case errors.Is(err, service.ErrRoleHasApplications):
		return helper.JsonError(c, fiber.StatusBadRequest, "Cannot delete role with existing applications")
	case errors.Is(err, service.ErrSlugTaken):
		return helper.JsonError(c, fiber.StatusConflict, "Slug already in use, please retry")
	case errors.Is(err, helper.ErrSlugExhausted):
		return helper.JsonError(c, fiber.StatusConflict, "Could not generate a unique slug")
	default:
		return helper.JsonInternal(c, err, msg)
	}
}
