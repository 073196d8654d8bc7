package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ucentric_backend/internals/features/hr/masterdata/model"
	"ucentric_backend/internals/features/hr/masterdata/repository"
	roleModel "ucentric_backend/internals/features/hr/roles/model"
	roleRepo "ucentric_backend/internals/features/hr/roles/repository"
)

type fakeMaster struct {
	repository.MasterDataRepository
	err error
}

func (f fakeMaster) ListUniversities(context.Context) ([]model.UniversityModel, error) {
	return []model.UniversityModel{{ID: uuid.New(), Name: "ITB"}}, f.err
}

func (f fakeMaster) ListMajors(context.Context) ([]model.MajorModel, error) {
	return []model.MajorModel{{ID: uuid.New(), Name: "Informatika"}}, nil
}

type fakeRoles struct {
	roleRepo.RoleRepository
}

func (fakeRoles) ListActive(context.Context) ([]roleModel.RoleOption, error) {
	return []roleModel.RoleOption{{ID: uuid.New(), Slug: "frontend-developer-intern"}}, nil
}

func TestGet_CombinesAllThreeLists(t *testing.T) {
	svc := NewMasterDataService(fakeMaster{}, fakeRoles{}, nil, 0)

	data, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Len(t, data.Roles, 1)
	assert.Equal(t, "ITB", data.Universities[0].Name)
	assert.Equal(t, "Informatika", data.Majors[0].Name)
}

func TestGet_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	svc := NewMasterDataService(fakeMaster{err: boom}, fakeRoles{}, nil, 0)

	_, err := svc.Get(context.Background())
	assert.ErrorIs(t, err, boom)
}
