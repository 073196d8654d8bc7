package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ucentric_backend/internals/features/hr/applications/dto"
	"ucentric_backend/internals/features/hr/applications/model"
	"ucentric_backend/internals/features/hr/applications/repository"
	mdRepo "ucentric_backend/internals/features/hr/masterdata/repository"
	roleRepo "ucentric_backend/internals/features/hr/roles/repository"
	"ucentric_backend/internals/helpers/cache"
	"ucentric_backend/internals/helpers/listquery"
	"ucentric_backend/internals/infra/queue"
)

var (
	ErrNotFound             = repository.ErrNotFound
	ErrRoleNotFound         = errors.New("role not found")
	ErrDuplicateApplication = errors.New("email already applied for this role")
	ErrInvalidStatus        = errors.New("invalid application status")
)

// ApplicationEvent is the payload of application.* events.
type ApplicationEvent struct {
	ApplicationID string `json:"applicationId"`
	RoleID        string `json:"roleId"`
	Email         string `json:"email"`
	Status        string `json:"status"`
}

type ApplicationService struct {
	repo   repository.ApplicationRepository
	roles  roleRepo.RoleRepository
	master mdRepo.MasterDataRepository
	cache  *cache.Cache
	events queue.Publisher
}

func NewApplicationService(
	repo repository.ApplicationRepository,
	roles roleRepo.RoleRepository,
	master mdRepo.MasterDataRepository,
	c *cache.Cache,
	events queue.Publisher,
) *ApplicationService {
	if events == nil {
		events = queue.Noop{}
	}
	return &ApplicationService{repo: repo, roles: roles, master: master, cache: c, events: events}
}

func (s *ApplicationService) List(ctx context.Context, p listquery.Params) listquery.Result[model.InternshipApplicationModel] {
	return s.repo.List(ctx, p)
}

func (s *ApplicationService) Get(ctx context.Context, id uuid.UUID) (*model.InternshipApplicationModel, error) {
	return s.repo.FindByID(ctx, id)
}

// Submit creates a PENDING application. One application per (email, role); a second is ErrDuplicateApplication.
func (s *ApplicationService) Submit(ctx context.Context, req dto.CreateApplicationRequest) (*model.InternshipApplicationModel, error) {
	req.Normalize()

	roleID, err := uuid.Parse(req.RoleID)
	if err != nil {
		return nil, ErrRoleNotFound
	}
	if _, err := s.roles.FindByID(ctx, roleID); err != nil {
		if errors.Is(err, roleRepo.ErrNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, err
	}

	var (
		app        *model.InternshipApplicationModel
		newMasters bool
	)
	err = s.repo.Transaction(ctx, func(tx *gorm.DB) error {
		dup, err := s.repo.EmailAppliedForRole(ctx, tx, req.Email, roleID)
		if err != nil {
			return err
		}
		if dup {
			return ErrDuplicateApplication
		}

		uni, uniNew, err := s.master.UniversityByName(ctx, tx, req.UniversityName)
		if err != nil {
			return err
		}
		major, majorNew, err := s.master.MajorByName(ctx, tx, req.MajorName)
		if err != nil {
			return err
		}
		newMasters = uniNew || majorNew

		app = &model.InternshipApplicationModel{
			ID:           uuid.New(),
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Email:        req.Email,
			UniversityID: uni.ID,
			MajorID:      major.ID,
			Semester:     req.Semester,
			RoleID:       roleID,
			Motivation:   req.Motivation,
			PortfolioURL: optional(req.PortfolioURL),
			CVURL:        optional(req.CVURL),
			Status:       model.StatusPending,
		}
		return s.repo.Create(ctx, tx, app)
	})
	if err != nil {
		return nil, err
	}

	if newMasters {
		s.cache.Delete(ctx, cache.KeyMasterData)
	}
	s.publish(ctx, queue.EventApplicationSubmitted, app)
	return app, nil
}

// UpdateStatus validates the target status before touching storage. Last write wins.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.InternshipApplicationModel, error) {
	if !model.IsValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	app, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, queue.EventApplicationStatusChanged, app)
	return app, nil
}

func (s *ApplicationService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// publish tidak menggagalkan request; error sudah dicatat producer.
func (s *ApplicationService) publish(ctx context.Context, event string, app *model.InternshipApplicationModel) {
	_ = s.events.Publish(ctx, event, app.ID.String(), ApplicationEvent{
		ApplicationID: app.ID.String(),
		RoleID:        app.RoleID.String(),
		Email:         app.Email,
		Status:        app.Status,
	})
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
