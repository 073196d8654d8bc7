package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ucentric_backend/internals/constants"
	"ucentric_backend/internals/features/users/users/dto"
	"ucentric_backend/internals/features/users/users/service"
	helper "ucentric_backend/internals/helpers"
	"ucentric_backend/internals/helpers/dbtime"
	"ucentric_backend/internals/helpers/listquery"
	"ucentric_backend/internals/middlewares/authz"
)

var validateUser = helper.NewValidator()

type UserController struct {
	svc      *service.UserService
	validate *validator.Validate
}

func NewUserController(svc *service.UserService) *UserController {
	return &UserController{svc: svc, validate: validateUser}
}

// GET /users?page&limit&search&role&includeStats
func (ctrl *UserController) List(c *fiber.Ctx) error {
	p, err := listquery.ParseParams(c, helper.DefaultOpts, dbtime.GetLocation(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if role := c.Query("role"); role != "" {
		p.Status = role
	}
	return helper.JsonList(c, ctrl.svc.List(c.UserContext(), p))
}

// GET /users/:id
func (ctrl *UserController) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user ID")
	}
	u, err := ctrl.svc.Get(c.UserContext(), id)
	if err != nil {
		return ctrl.fail(c, err, "Failed to fetch user")
	}
	return helper.JsonOK(c, "", u)
}

// POST /users
func (ctrl *UserController) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err, dto.Messages))
	}
	if err := canGrant(c, req.Role); err != nil {
		return err
	}

	u, err := ctrl.svc.Create(c.UserContext(), req)
	if err != nil {
		return ctrl.fail(c, err, "Failed to create user")
	}
	return helper.JsonCreated(c, "User created successfully", u)
}

// PUT /users (id di body) atau PUT /users/:id
func (ctrl *UserController) Update(c *fiber.Ctx) error {
	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if pid := c.Params("id"); pid != "" {
		req.ID = pid
	}
	if strings.TrimSpace(req.ID) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "User ID is required")
	}
	if err := ctrl.validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err, dto.Messages))
	}
	if req.Role != nil {
		if err := canGrant(c, *req.Role); err != nil {
			return err
		}
	}

	u, err := ctrl.svc.Update(c.UserContext(), uuid.MustParse(req.ID), req)
	if err != nil {
		return ctrl.fail(c, err, "Failed to update user")
	}
	return helper.JsonUpdated(c, "User updated successfully", u)
}

// DELETE /users?id= atau DELETE /users/:id
func (ctrl *UserController) Delete(c *fiber.Ctx) error {
	raw := c.Params("id")
	if raw == "" {
		raw = c.Query("id")
	}
	if raw == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "User ID is required")
	}
	target, err := uuid.Parse(raw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	actor, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	if err := ctrl.svc.Delete(c.UserContext(), actor, target); err != nil {
		return ctrl.fail(c, err, "Failed to delete user")
	}
	return helper.JsonDeleted(c, "User deleted successfully")
}

// canGrant: role superadmin hanya boleh diberikan oleh superadmin.
func canGrant(c *fiber.Ctx, role string) error {
	if constants.NormalizeRole(role) != constants.RoleSuperadmin {
		return nil
	}
	actorRole, _ := c.Locals(constants.LocalUserRole).(string)
	if !authz.IsAuthorized(actorRole, constants.RoleSuperadmin) {
		return fiber.NewError(fiber.StatusForbidden, "Only a superadmin can grant the superadmin role")
	}
	return nil
}

func (ctrl *UserController) fail(c *fiber.Ctx, err error, msg string) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	case errors.Is(err, service.ErrEmailTaken):
		return helper.JsonError(c, fiber.StatusConflict, "User with this email already exists")
	case errors.Is(err, service.ErrSelfDelete):
		return helper.JsonError(c, fiber.StatusBadRequest, "Cannot delete your own account")
	case errors.Is(err, service.ErrInvalidRole):
		return helper.JsonError(c, fiber.StatusBadRequest, dto.Messages["role.oneof"])
	case errors.Is(err, service.ErrNoChanges):
		return helper.JsonError(c, fiber.StatusBadRequest, "Nothing to update")
	default:
		return helper.JsonInternal(c, err, msg)
	}
}
