package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ucentric_backend/internals/features/finance/withdrawals/model"
	"ucentric_backend/internals/helpers/listquery"
)

var ErrNotFound = errors.New("withdrawal not found")

var ListSpec = listquery.Spec{
	Entity:          "withdrawals",
	SearchColumns:   []string{"user_email", "bank_name", "account_number", "account_name"},
	StatusExpr:      "status",
	NormalizeStatus: model.NormalizeStatus,
	StatusKeys:      model.Statuses,
	DateColumn:      "created_at",
	OrderColumn:     "created_at",
	TieBreaker:      "id",
}

type WithdrawalRepository interface {
	List(ctx context.Context, p listquery.Params) listquery.Result[model.WithdrawalModel]
	FindByID(ctx context.Context, id uuid.UUID) (*model.WithdrawalModel, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string, at time.Time) (*model.WithdrawalModel, error)
}

type withdrawalRepository struct {
	db *gorm.DB
}

func NewWithdrawalRepository(db *gorm.DB) WithdrawalRepository {
	return &withdrawalRepository{db: db}
}

func (r *withdrawalRepository) List(ctx context.Context, p listquery.Params) listquery.Result[model.WithdrawalModel] {
	return listquery.Run[model.WithdrawalModel](ctx, r.db, ListSpec, p)
}

func (r *withdrawalRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.WithdrawalModel, error) {
	var w model.WithdrawalModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&w).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &w, nil
}

// UpdateStatus writes status and updated_at, then returns the stored row.
func (r *withdrawalRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string, at time.Time) (*model.WithdrawalModel, error) {
	res := r.db.WithContext(ctx).Model(&model.WithdrawalModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_at": at})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(ctx, id)
}
