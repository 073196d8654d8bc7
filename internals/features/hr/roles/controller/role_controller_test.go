package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ucentric_backend/internals/features/hr/roles/model"
	"ucentric_backend/internals/features/hr/roles/repository"
	"ucentric_backend/internals/features/hr/roles/service"
	helper "ucentric_backend/internals/helpers"
)

// stubRepo overrides only what the handlers under test reach.
type stubRepo struct {
	repository.RoleRepository
	created *model.InternshipRoleModel
	blocked map[uuid.UUID]bool
}

func (s *stubRepo) SlugExists(context.Context, string) (bool, error) { return false, nil }

func (s *stubRepo) Create(_ context.Context, r *model.InternshipRoleModel) error {
	s.created = r
	return nil
}

func (s *stubRepo) Delete(_ context.Context, id uuid.UUID) error {
	if s.blocked[id] {
		return repository.ErrRoleHasApplications
	}
	return repository.ErrNotFound
}

func (s *stubRepo) FindActiveBySlug(_ context.Context, slug string) (*model.RoleOption, error) {
	if slug == "frontend-developer-intern" {
		return &model.RoleOption{Slug: slug, Title: "Frontend Developer Intern"}, nil
	}
	return nil, repository.ErrNotFound
}

func newApp(repo *stubRepo) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.FiberErrorHandler})
	svc := service.NewRoleService(repo, nil, 0)
	ctrl := NewRoleController(svc)
	app.Post("/roles", ctrl.Create)
	app.Delete("/roles", ctrl.Delete)
	app.Get("/careers/:slug", ctrl.CareerBySlug)
	return app
}

func decode(t *testing.T, body io.Reader) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestCreate_MissingFieldsIs400(t *testing.T) {
	app := newApp(&stubRepo{})
	req := httptest.NewRequest("POST", "/roles", strings.NewReader(`{"title":"  "}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decode(t, resp.Body)
	errs := body["errors"].([]any)
	paths := make([]string, 0, len(errs))
	for _, e := range errs {
		paths = append(paths, e.(map[string]any)["path"].(string))
	}
	assert.ElementsMatch(t, []string{"title", "department", "type", "location"}, paths)
}

func TestCreate_Returns201WithSlug(t *testing.T) {
	repo := &stubRepo{}
	app := newApp(repo)
	req := httptest.NewRequest("POST", "/roles", strings.NewReader(
		`{"title":"UI/UX Designer Intern","department":"Product","type":"Internship","location":"Remote"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.NotNil(t, repo.created)
	assert.Equal(t, "ui-ux-designer-intern", repo.created.Slug)
}

func TestDelete_WithApplicationsIs400(t *testing.T) {
	id := uuid.New()
	app := newApp(&stubRepo{blocked: map[uuid.UUID]bool{id: true}})

	resp, err := app.Test(httptest.NewRequest("DELETE", "/roles?id="+id.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Cannot delete role with existing applications", decode(t, resp.Body)["message"])

	resp, err = app.Test(httptest.NewRequest("DELETE", "/roles", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/roles?id="+uuid.NewString(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCareerBySlug(t *testing.T) {
	app := newApp(&stubRepo{})

	resp, err := app.Test(httptest.NewRequest("GET", "/careers/Frontend-Developer-Intern", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/careers/unknown", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
