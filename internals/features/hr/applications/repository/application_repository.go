package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ucentric_backend/internals/features/hr/applications/model"
	"ucentric_backend/internals/helpers/listquery"
)

var ErrNotFound = errors.New("application not found")

var ListSpec = listquery.Spec{
	Entity:        "applications",
	SearchColumns: []string{"first_name", "last_name", "email"},
	StatusExpr:    "status",
	StatusKeys:    model.Statuses,
	DateColumn:    "created_at",
	OrderColumn:   "created_at",
	TieBreaker:    "id",
	Preloads:      []string{"Role", "University", "Major"},
}

type ApplicationRepository interface {
	List(ctx context.Context, p listquery.Params) listquery.Result[model.InternshipApplicationModel]
	FindByID(ctx context.Context, id uuid.UUID) (*model.InternshipApplicationModel, error)
	// Transaction runs fn in one DB transaction; repository methods taking tx use it when non-nil.
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
	EmailAppliedForRole(ctx context.Context, tx *gorm.DB, email string, roleID uuid.UUID) (bool, error)
	Create(ctx context.Context, tx *gorm.DB, app *model.InternshipApplicationModel) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.InternshipApplicationModel, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) conn(ctx context.Context, tx *gorm.DB) *gorm.DB {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx)
}

func (r *applicationRepository) List(ctx context.Context, p listquery.Params) listquery.Result[model.InternshipApplicationModel] {
	return listquery.Run[model.InternshipApplicationModel](ctx, r.db, ListSpec, p)
}

func (r *applicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.InternshipApplicationModel, error) {
	var app model.InternshipApplicationModel
	err := r.db.WithContext(ctx).
		Preload("Role").Preload("University").Preload("Major").
		Where("id = ?", id).
		Take(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

// EmailAppliedForRole: email dibandingkan case-insensitive.
func (r *applicationRepository) EmailAppliedForRole(ctx context.Context, tx *gorm.DB, email string, roleID uuid.UUID) (bool, error) {
	var count int64
	err := r.conn(ctx, tx).Model(&model.InternshipApplicationModel{}).
		Where("lower(email) = lower(?) AND role_id = ?", email, roleID).
		Count(&count).Error
	return count > 0, err
}

func (r *applicationRepository) Create(ctx context.Context, tx *gorm.DB, app *model.InternshipApplicationModel) error {
	return r.conn(ctx, tx).Omit("Role", "University", "Major").Create(app).Error
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.InternshipApplicationModel, error) {
	res := r.db.WithContext(ctx).Model(&model.InternshipApplicationModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_at": time.Now()})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *applicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.InternshipApplicationModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
