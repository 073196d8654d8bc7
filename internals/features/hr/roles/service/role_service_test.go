package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ucentric_backend/internals/features/hr/roles/dto"
	"ucentric_backend/internals/features/hr/roles/model"
	"ucentric_backend/internals/features/hr/roles/repository"
	"ucentric_backend/internals/helpers/listquery"
)

type memRoles struct {
	roles        map[uuid.UUID]*model.InternshipRoleModel
	applications map[uuid.UUID]int64
	lastUpdate   map[string]any
}

func newMemRoles() *memRoles {
	return &memRoles{roles: map[uuid.UUID]*model.InternshipRoleModel{}, applications: map[uuid.UUID]int64{}}
}

func (m *memRoles) List(context.Context, listquery.Params) listquery.Result[model.InternshipRoleModel] {
	return listquery.Result[model.InternshipRoleModel]{}
}

func (m *memRoles) ListActive(context.Context) ([]model.RoleOption, error) {
	out := []model.RoleOption{}
	for _, r := range m.roles {
		if r.IsActive {
			out = append(out, model.RoleOption{ID: r.ID, Title: r.Title, Slug: r.Slug})
		}
	}
	return out, nil
}

func (m *memRoles) FindByID(_ context.Context, id uuid.UUID) (*model.InternshipRoleModel, error) {
	r, ok := m.roles[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *r
	cp.ApplicationCount = m.applications[id]
	return &cp, nil
}

func (m *memRoles) FindActiveBySlug(_ context.Context, slug string) (*model.RoleOption, error) {
	for _, r := range m.roles {
		if r.Slug == slug && r.IsActive {
			return &model.RoleOption{ID: r.ID, Slug: r.Slug, Title: r.Title}, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memRoles) SlugExists(_ context.Context, slug string) (bool, error) {
	for _, r := range m.roles {
		if r.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (m *memRoles) Create(_ context.Context, role *model.InternshipRoleModel) error {
	m.roles[role.ID] = role
	return nil
}

func (m *memRoles) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*model.InternshipRoleModel, error) {
	m.lastUpdate = fields
	r, ok := m.roles[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if v, ok := fields["title"].(string); ok {
		r.Title = v
	}
	if v, ok := fields["is_active"].(bool); ok {
		r.IsActive = v
	}
	return m.FindByID(ctx, id)
}

func (m *memRoles) Delete(_ context.Context, id uuid.UUID) error {
	if m.applications[id] > 0 {
		return repository.ErrRoleHasApplications
	}
	if _, ok := m.roles[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.roles, id)
	return nil
}

func frontendReq() dto.RoleRequest {
	return dto.RoleRequest{
		Title:        "Frontend Developer Intern!!",
		Department:   "Engineering",
		Type:         "Internship",
		Location:     "Remote",
		Requirements: []string{" React ", "", "TypeScript"},
	}
}

func TestCreate_DerivesUniqueSlug(t *testing.T) {
	repo := newMemRoles()
	svc := NewRoleService(repo, nil, 0)

	first, err := svc.Create(context.Background(), frontendReq())
	require.NoError(t, err)
	assert.Equal(t, "frontend-developer-intern", first.Slug)
	assert.True(t, first.IsActive)
	assert.Equal(t, []string{"React", "TypeScript"}, []string(first.Requirements))

	second, err := svc.Create(context.Background(), frontendReq())
	require.NoError(t, err)
	assert.Equal(t, "frontend-developer-intern-1", second.Slug)
}

func TestCreate_PrefersExplicitSlug(t *testing.T) {
	svc := NewRoleService(newMemRoles(), nil, 0)
	req := frontendReq()
	req.Slug = "FE Intern 2025"

	role, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "fe-intern-2025", role.Slug)
}

func TestUpdate_NeverTouchesSlug(t *testing.T) {
	repo := newMemRoles()
	svc := NewRoleService(repo, nil, 0)
	role, err := svc.Create(context.Background(), frontendReq())
	require.NoError(t, err)

	req := frontendReq()
	req.Title = "Senior Frontend Intern"
	req.Slug = "something-else"
	inactive := false
	req.IsActive = &inactive

	updated, err := svc.Update(context.Background(), role.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "Senior Frontend Intern", updated.Title)
	assert.Equal(t, "frontend-developer-intern", updated.Slug)
	assert.False(t, updated.IsActive)
	assert.NotContains(t, repo.lastUpdate, "slug")
}

func TestDelete_BlockedWhileApplicationsExist(t *testing.T) {
	repo := newMemRoles()
	svc := NewRoleService(repo, nil, 0)
	role, err := svc.Create(context.Background(), frontendReq())
	require.NoError(t, err)
	repo.applications[role.ID] = 2

	err = svc.Delete(context.Background(), role.ID)
	assert.ErrorIs(t, err, ErrRoleHasApplications)
	_, stillThere := repo.roles[role.ID]
	assert.True(t, stillThere)

	repo.applications[role.ID] = 0
	assert.NoError(t, svc.Delete(context.Background(), role.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), role.ID), ErrNotFound)
}

func TestCareers_OnlyActive(t *testing.T) {
	repo := newMemRoles()
	svc := NewRoleService(repo, nil, 0)
	_, err := svc.Create(context.Background(), frontendReq())
	require.NoError(t, err)
	req := frontendReq()
	off := false
	req.IsActive = &off
	_, err = svc.Create(context.Background(), req)
	require.NoError(t, err)

	roles, err := svc.Careers(context.Background())
	require.NoError(t, err)
	assert.Len(t, roles, 1)

	_, err = svc.CareerBySlug(context.Background(), "frontend-developer-intern-1")
	assert.ErrorIs(t, err, ErrNotFound)
}
