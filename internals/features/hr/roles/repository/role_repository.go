package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ucentric_backend/internals/features/hr/roles/model"
	helper "ucentric_backend/internals/helpers"
	"ucentric_backend/internals/helpers/listquery"
)

var (
	ErrNotFound            = errors.New("role not found")
	ErrRoleHasApplications = errors.New("role has applications")
)

const applicationCountSelect = "(SELECT count(*) FROM internship_applications a WHERE a.role_id = internship_roles.id) AS application_count"

var roleColumns = []string{"internship_roles.*", applicationCountSelect}

var ListSpec = listquery.Spec{
	Entity:          "roles",
	SearchColumns:   []string{"title", "department", "location"},
	StatusExpr:      "CASE WHEN is_active THEN 'active' ELSE 'inactive' END",
	NormalizeStatus: NormalizeActiveStatus,
	StatusKeys:      []string{"active", "inactive"},
	DateColumn:      "created_at",
	OrderColumn:     "created_at",
	TieBreaker:      "id",
	Select:          roleColumns,
}

type RoleRepository interface {
	List(ctx context.Context, p listquery.Params) listquery.Result[model.InternshipRoleModel]
	ListActive(ctx context.Context) ([]model.RoleOption, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.InternshipRoleModel, error)
	FindActiveBySlug(ctx context.Context, slug string) (*model.RoleOption, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, role *model.InternshipRoleModel) error
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*model.InternshipRoleModel, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type roleRepository struct {
	db   *gorm.DB
	slug helper.SlugChecker
}

func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db, slug: helper.SlugExistsIn(db, "internship_roles", "slug")}
}

func (r *roleRepository) List(ctx context.Context, p listquery.Params) listquery.Result[model.InternshipRoleModel] {
	return listquery.Run[model.InternshipRoleModel](ctx, r.db, ListSpec, p)
}

func (r *roleRepository) ListActive(ctx context.Context) ([]model.RoleOption, error) {
	out := []model.RoleOption{}
	err := r.db.WithContext(ctx).Model(&model.InternshipRoleModel{}).
		Select("id", "title", "slug", "department", "type", "location", "requirements", "responsibilities").
		Where("is_active = ?", true).
		Order("created_at DESC").
		Scan(&out).Error
	return out, err
}

func (r *roleRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.InternshipRoleModel, error) {
	var role model.InternshipRoleModel
	err := r.db.WithContext(ctx).Select(roleColumns).Where("internship_roles.id = ?", id).Take(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &role, nil
}

func (r *roleRepository) FindActiveBySlug(ctx context.Context, slug string) (*model.RoleOption, error) {
	var out []model.RoleOption
	err := r.db.WithContext(ctx).Model(&model.InternshipRoleModel{}).
		Select("id", "title", "slug", "department", "type", "location", "requirements", "responsibilities").
		Where("slug = ? AND is_active = ?", slug, true).
		Limit(1).
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return &out[0], nil
}

func (r *roleRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	return r.slug(ctx, slug)
}

func (r *roleRepository) Create(ctx context.Context, role *model.InternshipRoleModel) error {
	return r.db.WithContext(ctx).Create(role).Error
}

// Update never writes slug; the caller's map must not carry it.
func (r *roleRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*model.InternshipRoleModel, error) {
	delete(fields, "slug")
	res := r.db.WithContext(ctx).Model(&model.InternshipRoleModel{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(ctx, id)
}

// Delete refuses roles that still have applications; the FK is the backstop for a racing insert.
func (r *roleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Table("internship_applications").Where("role_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrRoleHasApplications
		}
		res := tx.Where("id = ?", id).Delete(&model.InternshipRoleModel{})
		if res.Error != nil {
			if errors.Is(res.Error, gorm.ErrForeignKeyViolated) {
				return ErrRoleHasApplications
			}
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// NormalizeActiveStatus accepts active/inactive (and true/false) in any case.
func NormalizeActiveStatus(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "true", "1":
		return "active"
	case "false", "0":
		return "inactive"
	}
	return s
}
