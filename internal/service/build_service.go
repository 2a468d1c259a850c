package service

import (
	"context"
	"errors"
	"time"

	"github.com/tomd/hero-build-planner/internal/config"
	"github.com/tomd/hero-build-planner/internal/domain"
	"github.com/tomd/hero-build-planner/internal/repository"
	"gorm.io/gorm"
)

// BuildService owns the build aggregate: the build row plus its
// build_upgrade rows. All multi-row writes go through the TxManager so a
// partial failure rolls the whole aggregate back.
type BuildService struct {
	buildRepo        repository.BuildRepository
	buildUpgradeRepo repository.BuildUpgradeRepository
	heroRepo         repository.HeroRepository
	txm              repository.TxManager
	cfg              *config.Config
}

func NewBuildService(repos *repository.Repositories, txm repository.TxManager, cfg *config.Config) *BuildService {
	return &BuildService{
		buildRepo:        repos.Build,
		buildUpgradeRepo: repos.BuildUpgrade,
		heroRepo:         repos.Hero,
		txm:              txm,
		cfg:              cfg,
	}
}

type BuildItemInput struct {
	UpgradeID uint
	Slot      int
}

type CreateBuildInput struct {
	HeroID      uint
	Name        string
	Description string
	IsPublic    bool
	Items       []BuildItemInput
}

type UpdateBuildInput struct {
	HeroID      *uint
	Name        *string
	Description *string
	IsPublic    *bool
	Items       []BuildItemInput
	ItemsSet    bool
}

type BuildWithItems struct {
	Build *domain.Build
	Items []*domain.BuildUpgrade
}

func (s *BuildService) Create(ctx context.Context, userID uint, input CreateBuildInput) (*domain.Build, error) {
	if _, err := s.heroRepo.GetByID(ctx, input.HeroID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrHeroNotFound
		}
		return nil, err
	}

	build := &domain.Build{
		UserID:      userID,
		HeroID:      input.HeroID,
		Name:        input.Name,
		Description: input.Description,
		IsPublic:    input.IsPublic,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	err := s.txm.Do(ctx, func(repos *repository.Repositories) error {
		if err := repos.Build.Create(ctx, build); err != nil {
			return err
		}
		return s.insertItems(ctx, repos, build.ID, input.Items)
	})
	if err != nil {
		return nil, err
	}
	return build, nil
}

func (s *BuildService) Get(ctx context.Context, id uint) (*BuildWithItems, error) {
	build, err := s.buildRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBuildNotFound
		}
		return nil, err
	}

	items, err := s.buildUpgradeRepo.GetByBuildID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &BuildWithItems{Build: build, Items: items}, nil
}

func (s *BuildService) List(ctx context.Context) ([]*domain.Build, error) {
	return s.buildRepo.List(ctx)
}

func (s *BuildService) Update(ctx context.Context, id uint, input UpdateBuildInput) (*domain.Build, error) {
	build, err := s.buildRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBuildNotFound
		}
		return nil, err
	}

	if input.HeroID != nil {
		if _, err := s.heroRepo.GetByID(ctx, *input.HeroID); err == nil {
			build.HeroID = *input.HeroID
		}
	}
	if input.Name != nil {
		build.Name = *input.Name
	}
	if input.Description != nil {
		build.Description = *input.Description
	}
	if input.IsPublic != nil {
		build.IsPublic = *input.IsPublic
	}
	build.UpdatedAt = time.Now()

	err = s.txm.Do(ctx, func(repos *repository.Repositories) error {
		if err := repos.Build.Update(ctx, build); err != nil {
			return err
		}
		if !input.ItemsSet {
			return nil
		}
		// Full replace: the provided list becomes the build's entire item set.
		if err := repos.BuildUpgrade.DeleteByBuildID(ctx, build.ID); err != nil {
			return err
		}
		return s.insertItems(ctx, repos, build.ID, input.Items)
	})
	if err != nil {
		return nil, err
	}
	return build, nil
}

func (s *BuildService) Delete(ctx context.Context, id uint) error {
	if _, err := s.buildRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrBuildNotFound
		}
		return err
	}

	// No DB-level cascade is configured; dependents go first.
	return s.txm.Do(ctx, func(repos *repository.Repositories) error {
		if err := repos.BuildUpgrade.DeleteByBuildID(ctx, id); err != nil {
			return err
		}
		return repos.Build.Delete(ctx, id)
	})
}

func (s *BuildService) insertItems(ctx context.Context, repos *repository.Repositories, buildID uint, items []BuildItemInput) error {
	for _, item := range items {
		if _, err := repos.Upgrade.GetByID(ctx, item.UpgradeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				if s.cfg.StrictBuildItems {
					return domain.ErrUpgradeNotFound
				}
				continue
			}
			return err
		}
		bu := &domain.BuildUpgrade{
			BuildID:   buildID,
			UpgradeID: item.UpgradeID,
			Slot:      item.Slot,
		}
		if err := repos.BuildUpgrade.Create(ctx, bu); err != nil {
			return err
		}
	}
	return nil
}
