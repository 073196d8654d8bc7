package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"ucentric_backend/internals/features/hr/masterdata/model"
	"ucentric_backend/internals/features/hr/masterdata/repository"
	roleRepo "ucentric_backend/internals/features/hr/roles/repository"
	"ucentric_backend/internals/helpers/cache"
)

type MasterDataService struct {
	repo  repository.MasterDataRepository
	roles roleRepo.RoleRepository
	cache *cache.Cache
	ttl   time.Duration
}

func NewMasterDataService(repo repository.MasterDataRepository, roles roleRepo.RoleRepository, c *cache.Cache, ttl time.Duration) *MasterDataService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &MasterDataService{repo: repo, roles: roles, cache: c, ttl: ttl}
}

// Get returns active roles, universities and majors; served from cache when warm.
func (s *MasterDataService) Get(ctx context.Context) (model.MasterData, error) {
	return cache.Remember(ctx, s.cache, cache.KeyMasterData, s.ttl, s.load)
}

func (s *MasterDataService) load(ctx context.Context) (model.MasterData, error) {
	var out model.MasterData
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.Roles, err = s.roles.ListActive(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.Universities, err = s.repo.ListUniversities(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.Majors, err = s.repo.ListMajors(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.MasterData{}, err
	}
	return out, nil
}
