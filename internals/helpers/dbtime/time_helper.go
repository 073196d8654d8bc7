package dbtime

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"ucentric_backend/internals/configs"
)

const (
	HeaderTimezone = "X-Timezone"
	LocAppLoc      = "app_loc" // *time.Location, cache per request
)

// GetLocation menentukan timezone untuk batas hari (startDate/endDate):
//  1. c.Locals("app_loc") kalau sudah di-resolve
//  2. header X-Timezone (nama IANA, mis. "Asia/Makassar")
//  3. APP_TIMEZONE dari config (fallback Asia/Jakarta lalu UTC)
func GetLocation(c *fiber.Ctx) *time.Location {
	if c == nil {
		return configs.AppLocation()
	}
	if loc, ok := c.Locals(LocAppLoc).(*time.Location); ok && loc != nil {
		return loc
	}

	loc := configs.AppLocation()
	if tz := strings.TrimSpace(c.Get(HeaderTimezone)); tz != "" {
		// header tidak valid diabaikan, bukan 400
		if l, err := time.LoadLocation(tz); err == nil {
			loc = l
		}
	}
	c.Locals(LocAppLoc, loc)
	return loc
}
