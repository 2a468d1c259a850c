package service

import (
	"context"
	"errors"

	"github.com/tomd/hero-build-planner/internal/domain"
	"github.com/tomd/hero-build-planner/internal/repository"
	"gorm.io/gorm"
)

type BuildUpgradeService struct {
	buildUpgradeRepo repository.BuildUpgradeRepository
	buildRepo        repository.BuildRepository
	upgradeRepo      repository.UpgradeRepository
}

func NewBuildUpgradeService(buildUpgradeRepo repository.BuildUpgradeRepository, buildRepo repository.BuildRepository, upgradeRepo repository.UpgradeRepository) *BuildUpgradeService {
	return &BuildUpgradeService{
		buildUpgradeRepo: buildUpgradeRepo,
		buildRepo:        buildRepo,
		upgradeRepo:      upgradeRepo,
	}
}

type CreateBuildUpgradeInput struct {
	BuildID   uint
	UpgradeID uint
	Slot      int
}

type UpdateBuildUpgradeInput struct {
	BuildID   *uint
	UpgradeID *uint
	Slot      *int
}

func (s *BuildUpgradeService) Create(ctx context.Context, input CreateBuildUpgradeInput) (*domain.BuildUpgrade, error) {
	if _, err := s.buildRepo.GetByID(ctx, input.BuildID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBuildNotFound
		}
		return nil, err
	}
	if _, err := s.upgradeRepo.GetByID(ctx, input.UpgradeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUpgradeNotFound
		}
		return nil, err
	}

	bu := &domain.BuildUpgrade{
		BuildID:   input.BuildID,
		UpgradeID: input.UpgradeID,
		Slot:      input.Slot,
	}

	if err := s.buildUpgradeRepo.Create(ctx, bu); err != nil {
		return nil, err
	}
	return bu, nil
}

func (s *BuildUpgradeService) Get(ctx context.Context, id uint) (*domain.BuildUpgrade, error) {
	bu, err := s.buildUpgradeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBuildUpgradeNotFound
		}
		return nil, err
	}
	return bu, nil
}

func (s *BuildUpgradeService) List(ctx context.Context) ([]*domain.BuildUpgrade, error) {
	return s.buildUpgradeRepo.List(ctx)
}

func (s *BuildUpgradeService) Update(ctx context.Context, id uint, input UpdateBuildUpgradeInput) (*domain.BuildUpgrade, error) {
	bu, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.BuildID != nil {
		if _, err := s.buildRepo.GetByID(ctx, *input.BuildID); err == nil {
			bu.BuildID = *input.BuildID
		}
	}
	if input.UpgradeID != nil {
		if _, err := s.upgradeRepo.GetByID(ctx, *input.UpgradeID); err == nil {
			bu.UpgradeID = *input.UpgradeID
		}
	}
	if input.Slot != nil {
		bu.Slot = *input.Slot
	}

	if err := s.buildUpgradeRepo.Update(ctx, bu); err != nil {
		return nil, err
	}
	return bu, nil
}

func (s *BuildUpgradeService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.buildUpgradeRepo.Delete(ctx, id)
}
