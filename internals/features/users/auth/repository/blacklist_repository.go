package repository

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ucentric_backend/internals/features/users/auth/model"
)

type BlacklistRepository interface {
	Add(ctx context.Context, token string, expiresAt time.Time) error
	Exists(ctx context.Context, token string) (bool, error)
	PurgeExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// blacklistRepository menyimpan HMAC-SHA256(token) dalam hex, bukan JWT mentah.
type blacklistRepository struct {
	db     *gorm.DB
	secret []byte
}

func NewBlacklistRepository(db *gorm.DB, secret string) BlacklistRepository {
	return &blacklistRepository{db: db, secret: []byte(secret)}
}

func (r *blacklistRepository) digest(token string) string {
	m := hmac.New(sha256.New, r.secret)
	_, _ = m.Write([]byte(token))
	return hex.EncodeToString(m.Sum(nil))
}

// Add is idempotent; logging out twice keeps one row.
func (r *blacklistRepository) Add(ctx context.Context, token string, expiresAt time.Time) error {
	row := model.TokenBlacklist{ID: uuid.New(), Token: r.digest(token), ExpiredAt: expiresAt}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "token"}}, DoNothing: true}).
		Create(&row).Error
}

func (r *blacklistRepository) Exists(ctx context.Context, token string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.TokenBlacklist{}).
		Where("token = ?", r.digest(token)).
		Count(&count).Error
	return count > 0, err
}

func (r *blacklistRepository) PurgeExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("expired_at < ?", cutoff).Delete(&model.TokenBlacklist{})
	return res.RowsAffected, res.Error
}
