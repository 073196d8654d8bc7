package controller

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ucentric_backend/internals/features/finance/withdrawals/model"
	"ucentric_backend/internals/features/finance/withdrawals/repository"
	"ucentric_backend/internals/features/finance/withdrawals/service"
	helper "ucentric_backend/internals/helpers"
	"ucentric_backend/internals/helpers/listquery"
)

type memRepo struct {
	rows   map[uuid.UUID]*model.WithdrawalModel
	writes int
}

func (m *memRepo) List(_ context.Context, p listquery.Params) listquery.Result[model.WithdrawalModel] {
	return listquery.Empty[model.WithdrawalModel](repository.ListSpec, p)
}

func (m *memRepo) FindByID(_ context.Context, id uuid.UUID) (*model.WithdrawalModel, error) {
	if w, ok := m.rows[id]; ok {
		cp := *w
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (m *memRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string, at time.Time) (*model.WithdrawalModel, error) {
	m.writes++
	w, ok := m.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	w.Status = status
	w.UpdatedAt = at
	return m.FindByID(ctx, id)
}

func newApp(repo *memRepo) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.FiberErrorHandler})
	ctrl := NewWithdrawalController(service.NewWithdrawalService(repo))
	app.Get("/withdrawals", ctrl.List)
	app.Get("/withdrawals/:id", ctrl.Get)
	app.Put("/withdrawals/:id/status", ctrl.UpdateStatus)
	return app
}

func putStatus(t *testing.T, app *fiber.App, id, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest("PUT", "/withdrawals/"+id+"/status", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestUpdateStatus(t *testing.T) {
	id := uuid.New()

	cases := []struct {
		name   string
		id     string
		body   string
		code   int
		writes int
	}{
		{"approved mixed case", id.String(), `{"status":"APPROVED"}`, fiber.StatusOK, 1},
		{"outside enum", id.String(), `{"status":"paid"}`, fiber.StatusBadRequest, 0},
		{"missing status", id.String(), `{}`, fiber.StatusBadRequest, 0},
		{"bad id", "abc", `{"status":"success"}`, fiber.StatusBadRequest, 0},
		{"unknown row", uuid.NewString(), `{"status":"success"}`, fiber.StatusNotFound, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &memRepo{rows: map[uuid.UUID]*model.WithdrawalModel{id: {ID: id, Status: "pending"}}}
			code, body := putStatus(t, newApp(repo), tc.id, tc.body)
			assert.Equal(t, tc.code, code)
			assert.Equal(t, tc.writes, repo.writes)
			if code == fiber.StatusOK {
				data := body["data"].(map[string]any)
				assert.Equal(t, "approved", data["status"])
			}
		})
	}
}

func TestGet_NotFound(t *testing.T) {
	resp, err := newApp(&memRepo{}).Test(httptest.NewRequest("GET", "/withdrawals/"+uuid.NewString(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestList_EmptyPageShape(t *testing.T) {
	resp, err := newApp(&memRepo{}).Test(httptest.NewRequest("GET", "/withdrawals?includeStats=true", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data  []any            `json:"data"`
		Stats map[string]int64 `json:"stats"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotNil(t, body.Data)
	for _, s := range model.Statuses {
		assert.Contains(t, body.Stats, s)
	}
	assert.Contains(t, body.Stats, "TOTAL")
}
