package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"ucentric_backend/internals/features/users/users/dto"
	"ucentric_backend/internals/features/users/users/model"
	"ucentric_backend/internals/features/users/users/repository"
	"ucentric_backend/internals/helpers/listquery"
)

type memRepo struct {
	users   map[uuid.UUID]*model.UserModel
	deleted []uuid.UUID
}

func newMemRepo(seed ...*model.UserModel) *memRepo {
	r := &memRepo{users: map[uuid.UUID]*model.UserModel{}}
	for _, u := range seed {
		r.users[u.ID] = u
	}
	return r
}

func (r *memRepo) List(context.Context, listquery.Params) listquery.Result[model.UserModel] {
	return listquery.Result[model.UserModel]{}
}

func (r *memRepo) FindByID(_ context.Context, id uuid.UUID) (*model.UserModel, error) {
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (r *memRepo) FindByEmail(_ context.Context, email string) (*model.UserModel, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	return err == nil, nil
}

func (r *memRepo) Create(_ context.Context, u *model.UserModel) error {
	r.users[u.ID] = u
	return nil
}

func (r *memRepo) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*model.UserModel, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "name":
			u.Name = v.(string)
		case "role":
			u.Role = v.(string)
		case "password":
			u.Password = v.(string)
		case "email":
			u.Email = v.(string)
		}
	}
	return r.FindByID(ctx, id)
}

func (r *memRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.users, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *memRepo) Count(context.Context) (int64, error) { return int64(len(r.users)), nil }

func TestCreateHashesAndDefaultsRole(t *testing.T) {
	repo := newMemRepo()
	svc := NewUserService(repo)

	u, err := svc.Create(context.Background(), dto.CreateUserRequest{
		Name: "Sari", Email: "sari@ucentric.id", Password: "rahasia1",
	})
	require.NoError(t, err)
	assert.Equal(t, "user", u.Role)
	assert.NotEqual(t, "rahasia1", u.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("rahasia1")))

	cost, err := bcrypt.Cost([]byte(u.Password))
	require.NoError(t, err)
	assert.Equal(t, BcryptCost, cost)
}

func TestCreateDuplicateEmail(t *testing.T) {
	existing := &model.UserModel{ID: uuid.New(), Email: "a@b.co"}
	svc := NewUserService(newMemRepo(existing))

	_, err := svc.Create(context.Background(), dto.CreateUserRequest{Name: "Ab", Email: "a@b.co", Password: "123456"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUpdateIgnoresEmailAndRehashes(t *testing.T) {
	id := uuid.New()
	repo := newMemRepo(&model.UserModel{ID: id, Name: "Old", Email: "keep@x.id", Password: "old", Role: "user"})
	svc := NewUserService(repo)

	newEmail, newPass, newRole := "changed@x.id", "baru123", "admin"
	u, err := svc.Update(context.Background(), id, dto.UpdateUserRequest{
		Email: &newEmail, Password: &newPass, Role: &newRole,
	})
	require.NoError(t, err)
	assert.Equal(t, "keep@x.id", u.Email)
	assert.Equal(t, "admin", u.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("baru123")))
}

func TestUpdateUnknownAndEmpty(t *testing.T) {
	id := uuid.New()
	svc := NewUserService(newMemRepo(&model.UserModel{ID: id}))

	_, err := svc.Update(context.Background(), uuid.New(), dto.UpdateUserRequest{})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Update(context.Background(), id, dto.UpdateUserRequest{})
	assert.ErrorIs(t, err, ErrNoChanges)
}

func TestDeleteRejectsSelfRegardlessOfRole(t *testing.T) {
	id := uuid.New()
	repo := newMemRepo(&model.UserModel{ID: id, Role: "superadmin"})
	svc := NewUserService(repo)

	err := svc.Delete(context.Background(), id, id)
	assert.ErrorIs(t, err, ErrSelfDelete)
	assert.Empty(t, repo.deleted)

	other := uuid.New()
	repo.users[other] = &model.UserModel{ID: other}
	require.NoError(t, svc.Delete(context.Background(), id, other))
	assert.Equal(t, []uuid.UUID{other}, repo.deleted)
}

func TestUnknownRoleIsRejectedBeforeWrite(t *testing.T) {
	id := uuid.New()
	repo := newMemRepo(&model.UserModel{ID: id, Role: "user"})
	svc := NewUserService(repo)

	_, err := svc.Create(context.Background(), dto.CreateUserRequest{Name: "Owner", Email: "o@x.id", Password: "secret1", Role: "owner"})
	assert.ErrorIs(t, err, ErrInvalidRole)
	assert.Len(t, repo.users, 1)

	owner := "owner"
	_, err = svc.Update(context.Background(), id, dto.UpdateUserRequest{Role: &owner})
	assert.ErrorIs(t, err, ErrInvalidRole)
	assert.Equal(t, "user", repo.users[id].Role)

	u, err := svc.Create(context.Background(), dto.CreateUserRequest{Name: "Boss", Email: "b@x.id", Password: "secret1", Role: " SuperAdmin "})
	require.NoError(t, err)
	assert.Equal(t, "superadmin", u.Role)
}
