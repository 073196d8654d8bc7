package roles

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ucentric_backend/internals/features/hr/roles/model"
	"ucentric_backend/internals/helpers/applog"
)

//go:embed data_roles.json
var defaultRoles []byte

type RoleSeed struct {
	Title            string   `json:"title"`
	Slug             string   `json:"slug"`
	Department       string   `json:"department"`
	Type             string   `json:"type"`
	Location         string   `json:"location"`
	Requirements     []string `json:"requirements"`
	Responsibilities []string `json:"responsibilities"`
}

// SeedRoles inserts the bundled roles, skipping any slug that already exists.
func SeedRoles(ctx context.Context, db *gorm.DB) (int64, error) {
	return SeedRolesFromJSON(ctx, db, defaultRoles)
}

func SeedRolesFromJSON(ctx context.Context, db *gorm.DB, raw []byte) (int64, error) {
	var seeds []RoleSeed
	if err := sonic.Unmarshal(raw, &seeds); err != nil {
		return 0, fmt.Errorf("decode role seeds: %w", err)
	}

	var inserted int64
	for _, s := range seeds {
		role := model.InternshipRoleModel{
			ID:               uuid.New(),
			Title:            s.Title,
			Slug:             s.Slug,
			Department:       s.Department,
			Type:             s.Type,
			Location:         s.Location,
			IsActive:         true,
			Requirements:     pq.StringArray(nonNil(s.Requirements)),
			Responsibilities: pq.StringArray(nonNil(s.Responsibilities)),
		}
		res := db.WithContext(ctx).
			Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "slug"}}, DoNothing: true}).
			Create(&role)
		if res.Error != nil {
			return inserted, fmt.Errorf("seed role %q: %w", s.Slug, res.Error)
		}
		if res.RowsAffected == 0 {
			applog.Log.Debugf("role '%s' sudah ada, dilewati", s.Slug)
			continue
		}
		inserted++
		applog.Log.Infof("role '%s' ditambahkan", s.Slug)
	}
	return inserted, nil
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
