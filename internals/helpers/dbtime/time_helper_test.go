package dbtime

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ucentric_backend/internals/configs"
)

func locationName(t *testing.T, header string) string {
	t.Helper()
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		first := GetLocation(c)
		assert.Same(t, first, GetLocation(c))
		return c.SendString(first.String())
	})

	req := httptest.NewRequest("GET", "/", nil)
	if header != "" {
		req.Header.Set(HeaderTimezone, header)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestGetLocation(t *testing.T) {
	assert.Equal(t, "Asia/Makassar", locationName(t, "Asia/Makassar"))
	assert.Equal(t, configs.AppLocation().String(), locationName(t, "Mars/Olympus"))
	assert.Equal(t, configs.AppLocation().String(), locationName(t, ""))
}
