package auth

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"ucentric_backend/internals/features/users/auth/service"
	"ucentric_backend/internals/helpers/applog"
)

// TokenVerifier is satisfied by *service.AuthService.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*service.Claims, error)
}

// AuthMiddleware menolak request tanpa token valid dan mengisi Locals (user_id, userRole, ...).
func AuthMiddleware(v TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		claims, err := v.Verify(c.UserContext(), token)
		switch {
		case err == nil:
		case errors.Is(err, service.ErrTokenRevoked):
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token is blacklisted")
		case errors.Is(err, service.ErrInvalidToken):
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or expired token")
		default:
			applog.WithContext(c.UserContext()).WithError(err).Error("[AUTH] token verification failed")
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}

		storeClaimsToLocals(c, token, claims)
		return c.Next()
	}
}
