package service

import (
	"context"
	"errors"

	"github.com/tomd/hero-build-planner/internal/domain"
	"github.com/tomd/hero-build-planner/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type UpgradeService struct {
	upgradeRepo repository.UpgradeRepository
	abilityRepo repository.AbilityRepository
}

func NewUpgradeService(upgradeRepo repository.UpgradeRepository, abilityRepo repository.AbilityRepository) *UpgradeService {
	return &UpgradeService{upgradeRepo: upgradeRepo, abilityRepo: abilityRepo}
}

type CreateUpgradeInput struct {
	AbilityID   uint
	Name        string
	Description string
	Cost        int
	Effect      datatypes.JSON
}

type UpdateUpgradeInput struct {
	AbilityID   *uint
	Name        *string
	Description *string
	Cost        *int
	Effect      datatypes.JSON
}

func (s *UpgradeService) Create(ctx context.Context, input CreateUpgradeInput) (*domain.Upgrade, error) {
	if _, err := s.abilityRepo.GetByID(ctx, input.AbilityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAbilityNotFound
		}
		return nil, err
	}

	effect := input.Effect
	if effect == nil {
		effect = datatypes.JSON([]byte("[]"))
	}

	upgrade := &domain.Upgrade{
		AbilityID:   input.AbilityID,
		Name:        input.Name,
		Description: input.Description,
		Cost:        input.Cost,
		Effect:      effect,
	}

	if err := s.upgradeRepo.Create(ctx, upgrade); err != nil {
		return nil, err
	}
	return upgrade, nil
}

func (s *UpgradeService) Get(ctx context.Context, id uint) (*domain.Upgrade, error) {
	upgrade, err := s.upgradeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUpgradeNotFound
		}
		return nil, err
	}
	return upgrade, nil
}

func (s *UpgradeService) List(ctx context.Context) ([]*domain.Upgrade, error) {
	return s.upgradeRepo.List(ctx)
}

func (s *UpgradeService) Update(ctx context.Context, id uint, input UpdateUpgradeInput) (*domain.Upgrade, error) {
	upgrade, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.AbilityID != nil {
		if _, err := s.abilityRepo.GetByID(ctx, *input.AbilityID); err == nil {
			upgrade.AbilityID = *input.AbilityID
		}
	}
	if input.Name != nil {
		upgrade.Name = *input.Name
	}
	if input.Description != nil {
		upgrade.Description = *input.Description
	}
	if input.Cost != nil {
		upgrade.Cost = *input.Cost
	}
	if input.Effect != nil {
		upgrade.Effect = input.Effect
	}

	if err := s.upgradeRepo.Update(ctx, upgrade); err != nil {
		return nil, err
	}
	return upgrade, nil
}

func (s *UpgradeService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.upgradeRepo.Delete(ctx, id)
}
