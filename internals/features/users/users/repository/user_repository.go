package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ucentric_backend/internals/constants"
	"ucentric_backend/internals/features/users/users/model"
	"ucentric_backend/internals/helpers/listquery"
)

var ErrNotFound = errors.New("user not found")

var ListSpec = listquery.Spec{
	Entity:          "users",
	SearchColumns:   []string{"name", "email"},
	StatusExpr:      "role",
	NormalizeStatus: constants.NormalizeRole,
	StatusKeys:      constants.AllRoles,
	DateColumn:      "created_at",
	OrderColumn:     "created_at",
	TieBreaker:      "id",
}

type UserRepository interface {
	List(ctx context.Context, p listquery.Params) listquery.Result[model.UserModel]
	FindByID(ctx context.Context, id uuid.UUID) (*model.UserModel, error)
	FindByEmail(ctx context.Context, email string) (*model.UserModel, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, u *model.UserModel) error
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*model.UserModel, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) List(ctx context.Context, p listquery.Params) listquery.Result[model.UserModel] {
	return listquery.Run[model.UserModel](ctx, r.db, ListSpec, p)
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.UserModel, error) {
	var u model.UserModel
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.UserModel, error) {
	var u model.UserModel
	err := r.db.WithContext(ctx).
		Where("lower(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("lower(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&count).Error
	return count > 0, err
}

func (r *userRepository) Create(ctx context.Context, u *model.UserModel) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *userRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*model.UserModel, error) {
	res := r.db.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.UserModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.UserModel{}).Count(&n).Error
	return n, err
}
