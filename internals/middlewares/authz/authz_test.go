package authz

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ucentric_backend/internals/constants"
	helper "ucentric_backend/internals/helpers"
)

func TestPolicyTable(t *testing.T) {
	a, err := NewAuthorizer(ModeEnforce)
	require.NoError(t, err)

	cases := []struct {
		role, obj, act string
		want           bool
	}{
		{"user", "applications", ActionDelete, true},
		{"user", "roles", ActionCreate, true},
		{"user", "withdrawals", ActionUpdate, true},
		{"user", "transactions", ActionRead, true},
		{"user", "transactions", ActionUpdate, false},
		{"user", "users", ActionRead, false},
		{"admin", "users", ActionDelete, true},
		{"superadmin", "users", ActionCreate, true},
		{"superadmin", "mitra", ActionRead, true},
		{"", "applications", ActionRead, false},
		{"guest", "applications", ActionRead, false},
		{"superadmin", "dashboard", ActionRead, false},
	}
	for _, tc := range cases {
		ok, enforced, err := a.Authorize(tc.role, tc.obj, tc.act)
		require.NoError(t, err)
		assert.True(t, enforced)
		assert.Equal(t, tc.want, ok, "%s %s %s", tc.role, tc.obj, tc.act)
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("", false)
	require.NoError(t, err)
	assert.Equal(t, ModeEnforce, m)

	m, err = ParseMode(" SHADOW ", false)
	require.NoError(t, err)
	assert.Equal(t, ModeShadow, m)

	_, err = ParseMode("disabled", false)
	assert.Error(t, err)

	m, err = ParseMode("disabled", true)
	require.NoError(t, err)
	assert.Equal(t, ModeDisabled, m)

	_, err = ParseMode("lenient", true)
	assert.Error(t, err)
}

func newApp(t *testing.T, mode Mode, role string) *fiber.App {
	t.Helper()
	a, err := NewAuthorizer(mode)
	require.NoError(t, err)

	app := fiber.New(fiber.Config{ErrorHandler: helper.FiberErrorHandler})
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(constants.LocalUserRole, role)
		return c.Next()
	})
	app.Delete("/users", a.Require("users"), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	return app
}

func TestRequireEnforceDenies(t *testing.T) {
	resp, err := newApp(t, ModeEnforce, "user").Test(httptest.NewRequest("DELETE", "/users", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, err = newApp(t, ModeEnforce, "admin").Test(httptest.NewRequest("DELETE", "/users", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireShadowLetsThrough(t *testing.T) {
	resp, err := newApp(t, ModeShadow, "user").Test(httptest.NewRequest("DELETE", "/users", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestActionFromMethod(t *testing.T) {
	assert.Equal(t, ActionRead, ActionFromMethod("GET"))
	assert.Equal(t, ActionCreate, ActionFromMethod("POST"))
	assert.Equal(t, ActionUpdate, ActionFromMethod("put"))
	assert.Equal(t, ActionUpdate, ActionFromMethod("PATCH"))
	assert.Equal(t, ActionDelete, ActionFromMethod("DELETE"))
}

func TestIsAuthorized(t *testing.T) {
	assert.True(t, IsAuthorized("superadmin", constants.RoleSuperadmin))
	assert.True(t, IsAuthorized(" Admin ", constants.RoleAdmin, constants.RoleSuperadmin))
	assert.False(t, IsAuthorized("admin", constants.RoleSuperadmin))
	assert.False(t, IsAuthorized("", constants.AllRoles...))
}
