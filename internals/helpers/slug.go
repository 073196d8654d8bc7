package helper

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

const (
	slugMaxLen = 100
	// MaxSlugSuffix is the highest suffix EnsureUniqueSlug tries (base-1 .. base-1000).
	MaxSlugSuffix = 1000
)

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

	ErrSlugExhausted = errors.New("no free slug suffix available")
)

// SlugChecker melaporkan apakah slug sudah dipakai.
type SlugChecker func(ctx context.Context, slug string) (bool, error)

// DeriveSlug mengubah judul bebas jadi slug [a-z0-9-]: hilangkan diakritik,
// setiap run non-alfanumerik jadi satu "-", trim ujung, fallback "item".
func DeriveSlug(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))

	var buf []rune
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		buf = append(buf, r)
	}
	s = reNonAlnum.ReplaceAllString(string(buf), "-")
	s = strings.Trim(s, "-")

	if utf8.RuneCountInString(s) > slugMaxLen {
		s = strings.Trim(string([]rune(s)[:slugMaxLen]), "-")
	}
	if s == "" {
		s = "item"
	}
	return s
}

// EnsureUniqueSlug returns base when free, otherwise the first free base-1, base-2, ...
func EnsureUniqueSlug(ctx context.Context, exists SlugChecker, base string) (string, error) {
	for i := 0; i <= MaxSlugSuffix; i++ {
		candidate := base
		if i > 0 {
			candidate = fmt.Sprintf("%s-%d", base, i)
		}
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", ErrSlugExhausted
}

// SlugExistsIn checks table.column for an existing slug.
func SlugExistsIn(db *gorm.DB, table, column string) SlugChecker {
	return func(ctx context.Context, slug string) (bool, error) {
		var count int64
		err := db.WithContext(ctx).
			Table(table).
			Where(fmt.Sprintf("%s = ?", column), slug).
			Count(&count).Error
		if err != nil {
			return false, err
		}
		return count > 0, nil
	}
}
