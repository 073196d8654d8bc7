package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ucentric_backend/internals/features/hr/masterdata/model"
)

var ErrEmptyName = errors.New("name is empty")

type MasterDataRepository interface {
	ListUniversities(ctx context.Context) ([]model.UniversityModel, error)
	ListMajors(ctx context.Context) ([]model.MajorModel, error)
	UniversityByName(ctx context.Context, tx *gorm.DB, name string) (*model.UniversityModel, bool, error)
	MajorByName(ctx context.Context, tx *gorm.DB, name string) (*model.MajorModel, bool, error)
}

type masterDataRepository struct {
	db *gorm.DB
}

func NewMasterDataRepository(db *gorm.DB) MasterDataRepository {
	return &masterDataRepository{db: db}
}

func (r *masterDataRepository) ListUniversities(ctx context.Context) ([]model.UniversityModel, error) {
	out := []model.UniversityModel{}
	err := r.db.WithContext(ctx).Select("id", "name").Order("name ASC").Find(&out).Error
	return out, err
}

func (r *masterDataRepository) ListMajors(ctx context.Context) ([]model.MajorModel, error) {
	out := []model.MajorModel{}
	err := r.db.WithContext(ctx).Select("id", "name").Order("name ASC").Find(&out).Error
	return out, err
}

// UniversityByName is get-or-create; created reports whether a row was inserted.
// tx may be nil to use the repository connection.
func (r *masterDataRepository) UniversityByName(ctx context.Context, tx *gorm.DB, name string) (*model.UniversityModel, bool, error) {
	name = NormalizeName(name)
	if name == "" {
		return nil, false, ErrEmptyName
	}
	var u model.UniversityModel
	created, err := getOrCreate(r.conn(ctx, tx), &u, name, func() any {
		return &model.UniversityModel{ID: uuid.New(), Name: name}
	})
	if err != nil {
		return nil, false, err
	}
	return &u, created, nil
}

func (r *masterDataRepository) MajorByName(ctx context.Context, tx *gorm.DB, name string) (*model.MajorModel, bool, error) {
	name = NormalizeName(name)
	if name == "" {
		return nil, false, ErrEmptyName
	}
	var m model.MajorModel
	created, err := getOrCreate(r.conn(ctx, tx), &m, name, func() any {
		return &model.MajorModel{ID: uuid.New(), Name: name}
	})
	if err != nil {
		return nil, false, err
	}
	return &m, created, nil
}

func (r *masterDataRepository) conn(ctx context.Context, tx *gorm.DB) *gorm.DB {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx)
}

// getOrCreate: cari case-insensitive; kalau belum ada insert (ON CONFLICT DO NOTHING) lalu baca ulang.
func getOrCreate(db *gorm.DB, dst any, name string, fresh func() any) (bool, error) {
	err := db.Where("lower(name) = lower(?)", name).Take(dst).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(fresh())
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, db.Where("lower(name) = lower(?)", name).Take(dst).Error
}

// NormalizeName collapses inner whitespace and trims.
func NormalizeName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
