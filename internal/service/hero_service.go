package service

import (
	"context"
	"errors"

	"github.com/tomd/hero-build-planner/internal/domain"
	"github.com/tomd/hero-build-planner/internal/repository"
	"gorm.io/gorm"
)

type HeroService struct {
	heroRepo repository.HeroRepository
}

func NewHeroService(heroRepo repository.HeroRepository) *HeroService {
	return &HeroService{heroRepo: heroRepo}
}

type CreateHeroInput struct {
	Name        string
	Role        string
	Description string
	ImageURL    *string
}

// UpdateHeroInput carries only the fields present in the request. Nil
// pointers mean "not provided"; ImageURLSet distinguishes an explicit null
// (clear the value) from absence.
type UpdateHeroInput struct {
	Name        *string
	Role        *string
	Description *string
	ImageURL    *string
	ImageURLSet bool
}

func (s *HeroService) Create(ctx context.Context, input CreateHeroInput) (*domain.Hero, error) {
	hero := &domain.Hero{
		Name:        input.Name,
		Role:        input.Role,
		Description: input.Description,
		ImageURL:    input.ImageURL,
	}

	if err := s.heroRepo.Create(ctx, hero); err != nil {
		return nil, err
	}
	return hero, nil
}

func (s *HeroService) Get(ctx context.Context, id uint) (*domain.Hero, error) {
	hero, err := s.heroRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrHeroNotFound
		}
		return nil, err
	}
	return hero, nil
}

func (s *HeroService) List(ctx context.Context, filter repository.HeroFilter) ([]*domain.Hero, error) {
	return s.heroRepo.List(ctx, filter)
}

func (s *HeroService) Update(ctx context.Context, id uint, input UpdateHeroInput) (*domain.Hero, error) {
	hero, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		hero.Name = *input.Name
	}
	if input.Role != nil {
		hero.Role = *input.Role
	}
	if input.Description != nil {
		hero.Description = *input.Description
	}
	if input.ImageURLSet {
		hero.ImageURL = input.ImageURL
	}

	if err := s.heroRepo.Update(ctx, hero); err != nil {
		return nil, err
	}
	return hero, nil
}

func (s *HeroService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.heroRepo.Delete(ctx, id)
}
