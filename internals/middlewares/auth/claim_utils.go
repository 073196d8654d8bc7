package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"ucentric_backend/internals/constants"
	"ucentric_backend/internals/features/users/auth/service"
)

var (
	errNoToken       = errors.New("Unauthorized - No token provided")
	errInvalidFormat = errors.New("Unauthorized - Invalid token format")
)

// extractBearerToken: header Authorization dulu, fallback cookie access_token.
func extractBearerToken(c *fiber.Ctx) (string, error) {
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if auth == "" {
		if cookieTok := c.Cookies("access_token"); cookieTok != "" {
			auth = "Bearer " + cookieTok
		}
	}
	if auth == "" {
		return "", errNoToken
	}

	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", errInvalidFormat
	}
	tok := strings.Trim(strings.TrimSpace(fields[1]), "\"'")
	if tok == "" {
		return "", errNoToken
	}
	return tok, nil
}

func storeClaimsToLocals(c *fiber.Ctx, token string, claims *service.Claims) {
	c.Locals(constants.LocalUserID, claims.ID)
	c.Locals(constants.LocalUserRole, constants.NormalizeRole(claims.Role))
	c.Locals(constants.LocalUserName, claims.Name)
	c.Locals(constants.LocalUserEmail, claims.Email)
	c.Locals(constants.LocalToken, token)
}
