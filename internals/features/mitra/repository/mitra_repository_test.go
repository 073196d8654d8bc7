package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ucentric_backend/internals/helpers/listquery"
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

func TestList_FiltersOnTriStateExpression(t *testing.T) {
	db, mock := newMockDB(t)
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "ukasir_token" WHERE ` + statusExpr + ` = $1 ORDER BY register_date DESC,token_number DESC`)).
		WithArgs("unknown", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"token_number", "status_active"}).AddRow("TK-1", nil))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "ukasir_token" WHERE ` + statusExpr + ` = $1`)).
		WithArgs("unknown").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	res := NewMitraRepository(db).List(context.Background(), listquery.Params{Page: 1, Limit: 50, Status: "NULL"})

	require.Len(t, res.Data, 1)
	assert.Equal(t, "TK-1", res.Data[0].TokenNumber)
	assert.Nil(t, res.Data[0].StatusActive)
	assert.Equal(t, int64(1), res.Meta.Total)
}

func TestList_DegradesToEmptyStatsOnError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.MatchExpectationsInOrder(false)
	mock.ExpectQuery(`SELECT`).WillReturnError(errors.New("relation does not exist"))
	mock.ExpectQuery(`SELECT`).WillReturnError(errors.New("relation does not exist"))
	mock.ExpectQuery(`SELECT`).WillReturnError(errors.New("relation does not exist"))

	res := NewMitraRepository(db).List(context.Background(), listquery.Params{Page: 1, Limit: 50, IncludeStats: true})

	assert.Empty(t, res.Data)
	assert.Equal(t, map[string]int64{"active": 0, "inactive": 0, "unknown": 0, "TOTAL": 0}, res.Stats)
}

func TestFindByToken_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "ukasir_token" WHERE token_number = $1`)).
		WithArgs("nope", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"token_number"}))

	_, err := NewMitraRepository(db).FindByToken(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}
