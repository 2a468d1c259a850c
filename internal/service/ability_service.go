package service

import (
	"context"
	"errors"

	"github.com/tomd/hero-build-planner/internal/domain"
	"github.com/tomd/hero-build-planner/internal/repository"
	"gorm.io/gorm"
)

type AbilityService struct {
	abilityRepo repository.AbilityRepository
	heroRepo    repository.HeroRepository
}

func NewAbilityService(abilityRepo repository.AbilityRepository, heroRepo repository.HeroRepository) *AbilityService {
	return &AbilityService{abilityRepo: abilityRepo, heroRepo: heroRepo}
}

type CreateAbilityInput struct {
	HeroID      uint
	Name        string
	Description string
	Cooldown    *int
	IconURL     *string
}

type UpdateAbilityInput struct {
	HeroID      *uint
	Name        *string
	Description *string
	Cooldown    *int
	CooldownSet bool
	IconURL     *string
	IconURLSet  bool
}

func (s *AbilityService) Create(ctx context.Context, input CreateAbilityInput) (*domain.Ability, error) {
	if _, err := s.heroRepo.GetByID(ctx, input.HeroID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrHeroNotFound
		}
		return nil, err
	}

	ability := &domain.Ability{
		HeroID:      input.HeroID,
		Name:        input.Name,
		Description: input.Description,
		Cooldown:    input.Cooldown,
		IconURL:     input.IconURL,
	}

	if err := s.abilityRepo.Create(ctx, ability); err != nil {
		return nil, err
	}
	return ability, nil
}

func (s *AbilityService) Get(ctx context.Context, id uint) (*domain.Ability, error) {
	ability, err := s.abilityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAbilityNotFound
		}
		return nil, err
	}
	return ability, nil
}

func (s *AbilityService) List(ctx context.Context) ([]*domain.Ability, error) {
	return s.abilityRepo.List(ctx)
}

func (s *AbilityService) Update(ctx context.Context, id uint, input UpdateAbilityInput) (*domain.Ability, error) {
	ability, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	// Hero reassignment applies only when the referenced hero exists.
	if input.HeroID != nil {
		if _, err := s.heroRepo.GetByID(ctx, *input.HeroID); err == nil {
			ability.HeroID = *input.HeroID
		}
	}
	if input.Name != nil {
		ability.Name = *input.Name
	}
	if input.Description != nil {
		ability.Description = *input.Description
	}
	if input.CooldownSet {
		ability.Cooldown = input.Cooldown
	}
	if input.IconURLSet {
		ability.IconURL = input.IconURL
	}

	if err := s.abilityRepo.Update(ctx, ability); err != nil {
		return nil, err
	}
	return ability, nil
}

func (s *AbilityService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.abilityRepo.Delete(ctx, id)
}
