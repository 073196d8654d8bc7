// Package listquery builds the paginated, filterable list reads shared by every dashboard table.
package listquery

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	helper "ucentric_backend/internals/helpers"
	"ucentric_backend/internals/helpers/applog"
	"ucentric_backend/internals/middlewares/metrics"
)

// StatusAll disables the status filter, same as an empty status.
const StatusAll = "ALL"

// TotalKey is the stats entry holding the count across every status.
const TotalKey = "TOTAL"

// Spec describes one entity's list. Column names are trusted SQL, never user input.
type Spec struct {
	Entity        string
	SearchColumns []string
	// StatusExpr dipakai untuk filter dan GROUP BY (boleh ekspresi, mis. CASE).
	StatusExpr      string
	NormalizeStatus func(string) string
	StatusKeys      []string
	DateColumn      string
	OrderColumn     string
	TieBreaker      string
	Select          []string
	Preloads        []string
}

type Params struct {
	Page         int
	Limit        int
	Search       string
	Status       string
	From         *time.Time
	To           *time.Time
	IncludeStats bool
}

type Result[T any] struct {
	Data  []T              `json:"data"`
	Meta  helper.Meta      `json:"meta"`
	Stats map[string]int64 `json:"stats,omitempty"`
}

type statusCount struct {
	Status string
	Count  int64
}

// Run executes Query and degrades any failure to an empty page.
func Run[T any](ctx context.Context, db *gorm.DB, spec Spec, p Params) Result[T] {
	res, err := Query[T](ctx, db, spec, p)
	if err != nil {
		applog.WithContext(ctx).
			WithError(err).
			WithField("entity", spec.Entity).
			Error("list query failed, returning empty page")
		metrics.ListQueryFailures.WithLabelValues(spec.Entity).Inc()
		return Empty[T](spec, p)
	}
	return res
}

// Query issues rows, count and (optionally) stats concurrently over the same predicate.
func Query[T any](ctx context.Context, db *gorm.DB, spec Spec, p Params) (Result[T], error) {
	p = normalize(p)

	var (
		rows   = make([]T, 0, p.Limit)
		total  int64
		groups []statusCount
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		q := filtered[T](gctx, db, spec, p, true)
		if len(spec.Select) > 0 {
			q = q.Select(spec.Select)
		}
		for _, rel := range spec.Preloads {
			q = q.Preload(rel)
		}
		q = q.Order(spec.OrderColumn + " DESC")
		if spec.TieBreaker != "" {
			q = q.Order(spec.TieBreaker + " DESC")
		}
		return q.Limit(p.Limit).Offset((p.Page - 1) * p.Limit).Find(&rows).Error
	})

	g.Go(func() error {
		return filtered[T](gctx, db, spec, p, true).Count(&total).Error
	})

	if p.IncludeStats && spec.StatusExpr != "" {
		g.Go(func() error {
			// stats sengaja mengabaikan filter status
			return filtered[T](gctx, db, spec, p, false).
				Select(fmt.Sprintf("%s AS status, count(*) AS count", spec.StatusExpr)).
				Group(spec.StatusExpr).
				Scan(&groups).Error
		})
	}

	if err := g.Wait(); err != nil {
		return Result[T]{}, err
	}
	if rows == nil {
		rows = []T{}
	}

	res := Result[T]{Data: rows, Meta: helper.BuildMeta(total, p.Page, p.Limit)}
	if p.IncludeStats {
		res.Stats = buildStats(spec.StatusKeys, groups)
	}
	return res, nil
}

// Empty is the degraded answer: no rows, zero totals, zero-filled stats when asked.
func Empty[T any](spec Spec, p Params) Result[T] {
	p = normalize(p)
	res := Result[T]{Data: []T{}, Meta: helper.BuildMeta(0, p.Page, p.Limit)}
	if p.IncludeStats {
		res.Stats = buildStats(spec.StatusKeys, nil)
	}
	return res
}

func normalize(p Params) Params {
	paging := helper.NewPaging(p.Page, p.Limit, helper.DefaultOpts)
	p.Page, p.Limit = paging.Page, paging.Limit
	p.Search = strings.TrimSpace(p.Search)
	p.Status = strings.TrimSpace(p.Status)
	return p
}

func filtered[T any](ctx context.Context, db *gorm.DB, spec Spec, p Params, withStatus bool) *gorm.DB {
	q := db.WithContext(ctx).Model(new(T))

	if p.Search != "" && len(spec.SearchColumns) > 0 {
		pattern := "%" + EscapeLike(p.Search) + "%"
		parts := make([]string, len(spec.SearchColumns))
		args := make([]any, len(spec.SearchColumns))
		for i, col := range spec.SearchColumns {
			parts[i] = col + " ILIKE ?"
			args[i] = pattern
		}
		// gorm membungkus OR dengan kurung kalau ada kondisi lain
		q = q.Where(strings.Join(parts, " OR "), args...)
	}

	if withStatus && spec.StatusExpr != "" && p.Status != "" && !strings.EqualFold(p.Status, StatusAll) {
		status := p.Status
		if spec.NormalizeStatus != nil {
			status = spec.NormalizeStatus(status)
		}
		q = q.Where(spec.StatusExpr+" = ?", status)
	}

	if spec.DateColumn != "" {
		if p.From != nil {
			q = q.Where(spec.DateColumn+" >= ?", *p.From)
		}
		if p.To != nil {
			q = q.Where(spec.DateColumn+" <= ?", *p.To)
		}
	}
	return q
}

func buildStats(keys []string, groups []statusCount) map[string]int64 {
	stats := make(map[string]int64, len(keys)+len(groups)+1)
	for _, k := range keys {
		stats[k] = 0
	}
	var total int64
	for _, g := range groups {
		stats[g.Status] += g.Count
		total += g.Count
	}
	stats[TotalKey] = total
	return stats
}

// EscapeLike makes s match literally inside a LIKE/ILIKE pattern.
func EscapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
