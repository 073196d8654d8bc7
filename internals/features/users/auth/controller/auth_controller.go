package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"ucentric_backend/internals/constants"
	"ucentric_backend/internals/features/users/auth/dto"
	"ucentric_backend/internals/features/users/auth/service"
	userRepo "ucentric_backend/internals/features/users/users/repository"
	helper "ucentric_backend/internals/helpers"
)

var validateAuth = helper.NewValidator()

type AuthController struct {
	svc          *service.AuthService
	secureCookie bool
}

func NewAuthController(svc *service.AuthService, secureCookie bool) *AuthController {
	return &AuthController{svc: svc, secureCookie: secureCookie}
}

// POST /auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err, dto.Messages))
	}

	res, err := ctrl.svc.Login(c.UserContext(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return helper.JsonInternal(c, err, "Login failed")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    res.AccessToken,
		Expires:  res.ExpiresAt,
		HTTPOnly: true,
		Secure:   ctrl.secureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return helper.JsonOK(c, "Login successful", res)
}

// GET /auth/me
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	u, err := ctrl.svc.Me(c.UserContext(), userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - User not found")
		}
		return helper.JsonInternal(c, err, "Failed to load session")
	}
	return helper.JsonOK(c, "", u)
}

// POST /auth/logout
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	token, _ := c.Locals(constants.LocalToken).(string)
	if err := ctrl.svc.Logout(c.UserContext(), token); err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Invalid or expired token")
		}
		return helper.JsonInternal(c, err, "Logout failed")
	}
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   ctrl.secureCookie,
		Path:     "/",
	})
	return helper.JsonOK(c, "Logged out", nil)
}
