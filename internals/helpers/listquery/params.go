package listquery

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	helper "ucentric_backend/internals/helpers"
)

// ParseParams membaca query string list: page, limit|per_page, search|q, status,
// startDate|from, endDate|to, includeStats. Error hanya untuk tanggal yang tidak valid.
func ParseParams(c *fiber.Ctx, opt helper.Options, loc *time.Location) (Params, error) {
	paging := helper.ResolvePaging(c, opt)

	search := c.Query("search")
	if search == "" {
		search = c.Query("q")
	}

	from, to, err := helper.ParseDateRange(
		firstNonEmpty(c.Query("startDate"), c.Query("from")),
		firstNonEmpty(c.Query("endDate"), c.Query("to")),
		loc,
	)
	if err != nil {
		return Params{}, err
	}

	stats := strings.ToLower(strings.TrimSpace(c.Query("includeStats")))

	return Params{
		Page:         paging.Page,
		Limit:        paging.Limit,
		Search:       strings.TrimSpace(search),
		Status:       strings.TrimSpace(c.Query("status")),
		From:         from,
		To:           to,
		IncludeStats: stats == "true" || stats == "1",
	}, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
