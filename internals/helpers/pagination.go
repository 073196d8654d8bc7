package helper

import (
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type Options struct {
	DefaultLimit int
	MaxLimit     int
}

// ===== Preset =====
var (
	DefaultOpts     = Options{DefaultLimit: 50, MaxLimit: 200}
	ApplicationOpts = Options{DefaultLimit: 10, MaxLimit: 200}
)

type Paging struct {
	Page   int
	Limit  int
	Offset int
}

// Meta adalah bentuk pagination yang dikirim ke dashboard.
type Meta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// ResolvePaging membaca ?page= & ?limit= (alias ?per_page=) lalu normalisasi.
func ResolvePaging(c *fiber.Ctx, opt Options) Paging {
	limitRaw := strings.TrimSpace(c.Query("limit"))
	if limitRaw == "" {
		limitRaw = strings.TrimSpace(c.Query("per_page"))
	}
	return NewPaging(atoiDefault(c.Query("page"), 1), atoiDefault(limitRaw, 0), opt)
}

func NewPaging(page, limit int, opt Options) Paging {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = opt.DefaultLimit
	}
	if opt.MaxLimit > 0 && limit > opt.MaxLimit {
		limit = opt.MaxLimit
	}
	// offset harus muat di int32; halaman sejauh itu pasti kosong
	if maxPage := math.MaxInt32/limit + 1; page > maxPage {
		page = maxPage
	}
	return Paging{Page: page, Limit: limit, Offset: (page - 1) * limit}
}

// BuildMeta: totalPages = ceil(total/limit), 0 kalau tidak ada data.
func BuildMeta(total int64, page, limit int) Meta {
	if limit <= 0 {
		limit = DefaultOpts.DefaultLimit
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Meta{Total: total, Page: page, Limit: limit, TotalPages: totalPages}
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}
