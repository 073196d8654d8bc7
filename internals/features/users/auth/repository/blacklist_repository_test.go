package repository

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return db, mock
}

func hmacHex(token, secret string) string {
	m := hmac.New(sha256.New, []byte(secret))
	m.Write([]byte(token))
	return hex.EncodeToString(m.Sum(nil))
}

func TestBlacklistStoresDigestNotToken(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBlacklistRepository(db, "s3cret")
	const jwt = "eyJhbGciOiJIUzI1NiJ9.payload.sig"
	want := hmacHex(jwt, "s3cret")
	exp := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(`INSERT INTO "token_blacklist" .* ON CONFLICT \("token"\) DO NOTHING`).
		WithArgs(sqlmock.AnyArg(), want, exp, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Add(context.Background(), jwt, exp))

	mock.ExpectQuery(`SELECT count\(\*\) FROM "token_blacklist" WHERE token = \$1`).
		WithArgs(want).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	ok, err := repo.Exists(context.Background(), jwt)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBlacklistDigestDependsOnSecret(t *testing.T) {
	a := NewBlacklistRepository(nil, "one").(*blacklistRepository)
	b := NewBlacklistRepository(nil, "two").(*blacklistRepository)

	assert.Len(t, a.digest("tok"), 64)
	assert.Equal(t, a.digest("tok"), a.digest("tok"))
	assert.NotEqual(t, a.digest("tok"), b.digest("tok"))
	assert.NotEqual(t, "tok", a.digest("tok"))
}
