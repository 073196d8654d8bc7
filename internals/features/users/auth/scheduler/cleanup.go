package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"ucentric_backend/internals/features/users/auth/repository"
	"ucentric_backend/internals/helpers/applog"
)

// CleanupSpec jalan setiap hari jam 03:00 (zona waktu aplikasi).
const CleanupSpec = "0 3 * * *"

// StartBlacklistCleanupScheduler purges blacklist rows whose expiry is older than ttlDays.
// Caller stops the returned cron on shutdown.
func StartBlacklistCleanupScheduler(repo repository.BlacklistRepository, ttlDays int, loc *time.Location) (*cron.Cron, error) {
	if ttlDays <= 0 {
		ttlDays = 7
	}
	if loc == nil {
		loc = time.UTC
	}

	c := cron.New(cron.WithLocation(loc))
	if _, err := c.AddFunc(CleanupSpec, func() { RunCleanup(context.Background(), repo, ttlDays, time.Now()) }); err != nil {
		return nil, err
	}
	c.Start()
	applog.Log.WithField("spec", CleanupSpec).WithField("ttl_days", ttlDays).Info("[CLEANUP] token_blacklist scheduler started")
	return c, nil
}

func RunCleanup(ctx context.Context, repo repository.BlacklistRepository, ttlDays int, now time.Time) int64 {
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	cutoff := now.Add(-time.Duration(ttlDays) * 24 * time.Hour)
	n, err := repo.PurgeExpiredBefore(ctx, cutoff)
	if err != nil {
		applog.Log.WithError(err).Error("[CLEANUP] failed to purge token_blacklist")
		return 0
	}
	if n > 0 {
		applog.Log.Infof("[CLEANUP] %d expired tokens removed", n)
	}
	return n
}
