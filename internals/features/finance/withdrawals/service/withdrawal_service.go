package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"ucentric_backend/internals/features/finance/withdrawals/model"
	"ucentric_backend/internals/features/finance/withdrawals/repository"
	"ucentric_backend/internals/helpers/listquery"
)

var (
	ErrNotFound      = repository.ErrNotFound
	ErrInvalidStatus = errors.New("invalid withdrawal status")
)

type WithdrawalService struct {
	repo repository.WithdrawalRepository
	now  func() time.Time
}

func NewWithdrawalService(repo repository.WithdrawalRepository) *WithdrawalService {
	return &WithdrawalService{repo: repo, now: time.Now}
}

func (s *WithdrawalService) List(ctx context.Context, p listquery.Params) listquery.Result[model.WithdrawalModel] {
	return s.repo.List(ctx, p)
}

func (s *WithdrawalService) Get(ctx context.Context, id uuid.UUID) (*model.WithdrawalModel, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateStatus rejects values outside the enum before any write; the stored form is lower-case.
func (s *WithdrawalService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.WithdrawalModel, error) {
	if !model.IsValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, model.NormalizeStatus(status), s.now())
}
