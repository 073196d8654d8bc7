package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"ucentric_backend/internals/features/hr/applications/dto"
	"ucentric_backend/internals/features/hr/applications/model"
	"ucentric_backend/internals/features/hr/applications/repository"
	mdModel "ucentric_backend/internals/features/hr/masterdata/model"
	mdRepo "ucentric_backend/internals/features/hr/masterdata/repository"
	roleModel "ucentric_backend/internals/features/hr/roles/model"
	roleRepo "ucentric_backend/internals/features/hr/roles/repository"
)

type memApps struct {
	repository.ApplicationRepository
	rows map[uuid.UUID]*model.InternshipApplicationModel
}

func (m *memApps) Transaction(_ context.Context, fn func(tx *gorm.DB) error) error { return fn(nil) }

func (m *memApps) EmailAppliedForRole(_ context.Context, _ *gorm.DB, email string, roleID uuid.UUID) (bool, error) {
	for _, a := range m.rows {
		if strings.EqualFold(a.Email, email) && a.RoleID == roleID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memApps) Create(_ context.Context, _ *gorm.DB, app *model.InternshipApplicationModel) error {
	m.rows[app.ID] = app
	return nil
}

func (m *memApps) UpdateStatus(_ context.Context, id uuid.UUID, status string) (*model.InternshipApplicationModel, error) {
	a, ok := m.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	a.Status = status
	return a, nil
}

type oneRole struct {
	roleRepo.RoleRepository
	id uuid.UUID
}

func (r oneRole) FindByID(_ context.Context, id uuid.UUID) (*roleModel.InternshipRoleModel, error) {
	if id != r.id {
		return nil, roleRepo.ErrNotFound
	}
	return &roleModel.InternshipRoleModel{ID: id}, nil
}

type memMaster struct {
	mdRepo.MasterDataRepository
	names map[string]uuid.UUID
}

func (m *memMaster) get(name string) (uuid.UUID, bool) {
	if id, ok := m.names[name]; ok {
		return id, false
	}
	id := uuid.New()
	m.names[name] = id
	return id, true
}

func (m *memMaster) UniversityByName(_ context.Context, _ *gorm.DB, name string) (*mdModel.UniversityModel, bool, error) {
	id, created := m.get("u:" + name)
	return &mdModel.UniversityModel{ID: id, Name: name}, created, nil
}

func (m *memMaster) MajorByName(_ context.Context, _ *gorm.DB, name string) (*mdModel.MajorModel, bool, error) {
	id, created := m.get("m:" + name)
	return &mdModel.MajorModel{ID: id, Name: name}, created, nil
}

type recordedEvent struct {
	event, key string
	payload    any
}

type recorder struct{ events []recordedEvent }

func (r *recorder) Publish(_ context.Context, event, key string, payload any) error {
	r.events = append(r.events, recordedEvent{event, key, payload})
	return nil
}

type fixture struct {
	svc    *ApplicationService
	apps   *memApps
	roleID uuid.UUID
	events *recorder
}

func newFixture() fixture {
	roleID := uuid.New()
	apps := &memApps{rows: map[uuid.UUID]*model.InternshipApplicationModel{}}
	ev := &recorder{}
	svc := NewApplicationService(apps, oneRole{id: roleID}, &memMaster{names: map[string]uuid.UUID{}}, nil, ev)
	return fixture{svc: svc, apps: apps, roleID: roleID, events: ev}
}

func (f fixture) request() dto.CreateApplicationRequest {
	return dto.CreateApplicationRequest{
		FirstName:      "Siti",
		LastName:       "Rahma",
		Email:          "siti@example.com",
		UniversityName: "Universitas Gadjah Mada",
		MajorName:      "Informatika",
		Semester:       "5",
		RoleID:         f.roleID.String(),
		Motivation:     "Ingin belajar",
	}
}

func TestSubmit_CreatesPendingApplication(t *testing.T) {
	f := newFixture()

	app, err := f.svc.Submit(context.Background(), f.request())
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, app.Status)
	assert.Nil(t, app.PortfolioURL)
	assert.Len(t, f.apps.rows, 1)

	require.Len(t, f.events.events, 1)
	assert.Equal(t, "application.submitted", f.events.events[0].event)
	assert.Equal(t, app.ID.String(), f.events.events[0].key)
}

func TestSubmit_DuplicateEmailForSameRoleIsRejected(t *testing.T) {
	f := newFixture()
	_, err := f.svc.Submit(context.Background(), f.request())
	require.NoError(t, err)

	again := f.request()
	again.Email = "SITI@example.com"
	_, err = f.svc.Submit(context.Background(), again)
	assert.ErrorIs(t, err, ErrDuplicateApplication)
	assert.Len(t, f.apps.rows, 1)
	assert.Len(t, f.events.events, 1)
}

func TestSubmit_UnknownRole(t *testing.T) {
	f := newFixture()
	req := f.request()
	req.RoleID = uuid.NewString()

	_, err := f.svc.Submit(context.Background(), req)
	assert.ErrorIs(t, err, ErrRoleNotFound)
	assert.Empty(t, f.apps.rows)
}

func TestSubmit_ReusesUniversityAndMajor(t *testing.T) {
	f := newFixture()
	a, err := f.svc.Submit(context.Background(), f.request())
	require.NoError(t, err)

	other := f.request()
	other.Email = "budi@example.com"
	b, err := f.svc.Submit(context.Background(), other)
	require.NoError(t, err)

	assert.Equal(t, a.UniversityID, b.UniversityID)
	assert.Equal(t, a.MajorID, b.MajorID)
}

func TestUpdateStatus_ExactEnumOnly(t *testing.T) {
	f := newFixture()
	app, err := f.svc.Submit(context.Background(), f.request())
	require.NoError(t, err)

	_, err = f.svc.UpdateStatus(context.Background(), app.ID, "accepted")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Equal(t, model.StatusPending, f.apps.rows[app.ID].Status)

	updated, err := f.svc.UpdateStatus(context.Background(), app.ID, model.StatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, model.StatusAccepted, updated.Status)
	assert.Equal(t, "application.status_changed", f.events.events[len(f.events.events)-1].event)

	_, err = f.svc.UpdateStatus(context.Background(), uuid.New(), model.StatusRejected)
	assert.ErrorIs(t, err, ErrNotFound)
}
