package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"ucentric_backend/internals/features/finance/transactions/model"
	"ucentric_backend/internals/helpers/listquery"
)

// Status di payments free-text dari gateway; stats dikelompokkan per nilai yang ada.
var ListSpec = listquery.Spec{
	Entity:          "transactions",
	SearchColumns:   []string{"order_id", "name", "email"},
	StatusExpr:      "COALESCE(lower(status), 'unknown')",
	NormalizeStatus: func(s string) string { return strings.ToLower(strings.TrimSpace(s)) },
	DateColumn:      "created_at",
	OrderColumn:     "created_at",
	TieBreaker:      "id",
}

type TransactionRepository interface {
	List(ctx context.Context, p listquery.Params) listquery.Result[model.TransactionModel]
	ExistsOrder(ctx context.Context, orderID string) (bool, error)
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) List(ctx context.Context, p listquery.Params) listquery.Result[model.TransactionModel] {
	return listquery.Run[model.TransactionModel](ctx, r.db, ListSpec, p)
}

func (r *transactionRepository) ExistsOrder(ctx context.Context, orderID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.TransactionModel{}).Where("order_id = ?", orderID).Count(&count).Error
	return count > 0, err
}
