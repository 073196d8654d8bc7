package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"ucentric_backend/internals/features/users/auth/dto"
	"ucentric_backend/internals/features/users/auth/repository"
	userModel "ucentric_backend/internals/features/users/users/model"
	userRepo "ucentric_backend/internals/features/users/users/repository"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService struct {
	users     userRepo.UserRepository
	blacklist repository.BlacklistRepository
	tokens    *TokenService
}

func NewAuthService(users userRepo.UserRepository, blacklist repository.BlacklistRepository, tokens *TokenService) *AuthService {
	return &AuthService{users: users, blacklist: blacklist, tokens: tokens}
}

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if u.Password == "" || bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, exp, err := s.tokens.Issue(u)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{AccessToken: token, TokenType: "Bearer", ExpiresAt: exp, User: u}, nil
}

// Me reloads the user so role changes made after login are visible.
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*userModel.UserModel, error) {
	return s.users.FindByID(ctx, userID)
}

// Logout blacklists token until it would have expired anyway.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return err
	}
	exp := time.Now().Add(s.tokens.ttl)
	if claims.ExpiresAt != nil {
		exp = claims.ExpiresAt.Time
	}
	return s.blacklist.Add(ctx, token, exp)
}

// Verify is used by the auth middleware: signature, expiry, then blacklist.
func (s *AuthService) Verify(ctx context.Context, token string) (*Claims, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, err
	}
	revoked, err := s.blacklist.Exists(ctx, token)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrTokenRevoked
	}
	return claims, nil
}

var ErrTokenRevoked = errors.New("token is blacklisted")
