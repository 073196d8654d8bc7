package seeds

import (
	"context"

	"gorm.io/gorm"

	"ucentric_backend/internals/helpers/applog"
	"ucentric_backend/internals/seeds/roles"
)

// RunAllSeeds is idempotent; rows that already exist are left untouched.
func RunAllSeeds(ctx context.Context, db *gorm.DB) error {
	n, err := roles.SeedRoles(ctx, db)
	if err != nil {
		return err
	}
	applog.Log.WithField("inserted", n).Info("seed internship roles done")
	return nil
}
