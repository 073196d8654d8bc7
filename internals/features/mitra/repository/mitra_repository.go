package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ucentric_backend/internals/features/mitra/model"
	"ucentric_backend/internals/helpers/listquery"
)

var ErrNotFound = errors.New("mitra token not found")

const statusExpr = "CASE WHEN status_active IS TRUE THEN 'active' WHEN status_active IS FALSE THEN 'inactive' ELSE 'unknown' END"

var ListSpec = listquery.Spec{
	Entity:          "mitra",
	SearchColumns:   []string{"token_number", "name", "email"},
	StatusExpr:      statusExpr,
	NormalizeStatus: model.NormalizeStatus,
	StatusKeys:      model.Statuses,
	DateColumn:      "register_date",
	OrderColumn:     "register_date",
	TieBreaker:      "token_number",
}

type MitraRepository interface {
	List(ctx context.Context, p listquery.Params) listquery.Result[model.MitraTokenModel]
	FindByToken(ctx context.Context, token string) (*model.MitraTokenModel, error)
}

type mitraRepository struct {
	db *gorm.DB
}

func NewMitraRepository(db *gorm.DB) MitraRepository {
	return &mitraRepository{db: db}
}

func (r *mitraRepository) List(ctx context.Context, p listquery.Params) listquery.Result[model.MitraTokenModel] {
	return listquery.Run[model.MitraTokenModel](ctx, r.db, ListSpec, p)
}

func (r *mitraRepository) FindByToken(ctx context.Context, token string) (*model.MitraTokenModel, error) {
	var m model.MitraTokenModel
	if err := r.db.WithContext(ctx).Where("token_number = ?", token).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}
