package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"ucentric_backend/internals/features/hr/roles/dto"
	"ucentric_backend/internals/features/hr/roles/model"
	"ucentric_backend/internals/features/hr/roles/repository"
	helper "ucentric_backend/internals/helpers"
	"ucentric_backend/internals/helpers/cache"
	"ucentric_backend/internals/helpers/listquery"
)

var (
	ErrNotFound            = repository.ErrNotFound
	ErrRoleHasApplications = repository.ErrRoleHasApplications
	ErrSlugTaken           = errors.New("slug already taken")
)

type RoleService struct {
	repo       repository.RoleRepository
	cache      *cache.Cache
	careersTTL time.Duration
}

func NewRoleService(repo repository.RoleRepository, c *cache.Cache, careersTTL time.Duration) *RoleService {
	if careersTTL <= 0 {
		careersTTL = time.Minute
	}
	return &RoleService{repo: repo, cache: c, careersTTL: careersTTL}
}

func (s *RoleService) List(ctx context.Context, p listquery.Params) listquery.Result[model.InternshipRoleModel] {
	return s.repo.List(ctx, p)
}

func (s *RoleService) Get(ctx context.Context, id uuid.UUID) (*model.InternshipRoleModel, error) {
	return s.repo.FindByID(ctx, id)
}

// Careers returns active roles for the public career page (cached).
func (s *RoleService) Careers(ctx context.Context) ([]model.RoleOption, error) {
	return cache.Remember(ctx, s.cache, cache.KeyCareers, s.careersTTL, s.repo.ListActive)
}

func (s *RoleService) CareerBySlug(ctx context.Context, slug string) (*model.RoleOption, error) {
	return s.repo.FindActiveBySlug(ctx, slug)
}

// Create derives the slug from req.Slug (or the title) and suffixes it until unique.
func (s *RoleService) Create(ctx context.Context, req dto.RoleRequest) (*model.InternshipRoleModel, error) {
	req.Normalize()

	base := req.Slug
	if base == "" {
		base = req.Title
	}
	slug, err := helper.EnsureUniqueSlug(ctx, s.repo.SlugExists, helper.DeriveSlug(base))
	if err != nil {
		return nil, err
	}

	role := &model.InternshipRoleModel{
		ID:               uuid.New(),
		Title:            req.Title,
		Slug:             slug,
		Department:       req.Department,
		Type:             req.Type,
		Location:         req.Location,
		IsActive:         true,
		Requirements:     req.Requirements,
		Responsibilities: req.Responsibilities,
	}
	if req.IsActive != nil {
		role.IsActive = *req.IsActive
	}
	if err := s.repo.Create(ctx, role); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	s.invalidate(ctx)
	return role, nil
}

// Update replaces the editable fields. Slug stays as created.
func (s *RoleService) Update(ctx context.Context, id uuid.UUID, req dto.RoleRequest) (*model.InternshipRoleModel, error) {
	req.Normalize()

	fields := map[string]any{
		"title":            req.Title,
		"department":       req.Department,
		"type":             req.Type,
		"location":         req.Location,
		"requirements":     pq.StringArray(req.Requirements),
		"responsibilities": pq.StringArray(req.Responsibilities),
		"updated_at":       time.Now(),
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}

	role, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return role, nil
}

func (s *RoleService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *RoleService) invalidate(ctx context.Context) {
	s.cache.Delete(ctx, cache.KeyCareers, cache.KeyMasterData)
}
