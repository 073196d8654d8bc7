package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ucentric_backend/internals/constants"
	"ucentric_backend/internals/features/users/users/dto"
	"ucentric_backend/internals/features/users/users/model"
	"ucentric_backend/internals/features/users/users/repository"
	"ucentric_backend/internals/helpers/listquery"
)

const BcryptCost = 10

var (
	ErrNotFound    = repository.ErrNotFound
	ErrEmailTaken  = errors.New("email already registered")
	ErrSelfDelete  = errors.New("cannot delete own account")
	ErrInvalidRole = errors.New("unknown role")
	ErrNoChanges   = errors.New("nothing to update")
)

type UserService struct {
	repo repository.UserRepository
	cost int
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo, cost: BcryptCost}
}

func (s *UserService) List(ctx context.Context, p listquery.Params) listquery.Result[model.UserModel] {
	return s.repo.List(ctx, p)
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*model.UserModel, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) Create(ctx context.Context, req dto.CreateUserRequest) (*model.UserModel, error) {
	req.Normalize()
	if !constants.IsValidRole(req.Role) {
		return nil, ErrInvalidRole
	}
	email := strings.TrimSpace(req.Email)

	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := s.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := &model.UserModel{
		ID:       uuid.New(),
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: hash,
		Role:     req.Role,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

// Update applies the present fields only. Email is immutable and ignored.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateUserRequest) (*model.UserModel, error) {
	fields := map[string]any{}
	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		fields["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Role != nil && *req.Role != "" {
		role := constants.NormalizeRole(*req.Role)
		if !constants.IsValidRole(role) {
			return nil, ErrInvalidRole
		}
		fields["role"] = role
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := s.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		fields["password"] = hash
	}
	if len(fields) == 0 {
		// tetap cek keberadaan supaya id salah = 404
		if _, err := s.repo.FindByID(ctx, id); err != nil {
			return nil, err
		}
		return nil, ErrNoChanges
	}
	return s.repo.Update(ctx, id, fields)
}

// Delete refuses when the acting user targets their own account.
func (s *UserService) Delete(ctx context.Context, actorID, targetID uuid.UUID) error {
	if actorID == targetID {
		return ErrSelfDelete
	}
	return s.repo.Delete(ctx, targetID)
}

func (s *UserService) HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), s.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
