package postgres

import (
	"context"

	"github.com/tomd/hero-build-planner/internal/domain"
	"gorm.io/gorm"
)

type abilityRepository struct {
	db *gorm.DB
}

func NewAbilityRepository(db *gorm.DB) *abilityRepository {
	return &abilityRepository{db: db}
}

func (r *abilityRepository) Create(ctx context.Context, ability *domain.Ability) error {
	return r.db.WithContext(ctx).Create(ability).Error
}

func (r *abilityRepository) GetByID(ctx context.Context, id uint) (*domain.Ability, error) {
	var ability domain.Ability
	err := r.db.WithContext(ctx).First(&ability, id).Error
	if err != nil {
		return nil, err
	}
	return &ability, nil
}

func (r *abilityRepository) List(ctx context.Context) ([]*domain.Ability, error) {
	var abilities []*domain.Ability
	err := r.db.WithContext(ctx).Find(&abilities).Error
	if err != nil {
		return nil, err
	}
	return abilities, nil
}

func (r *abilityRepository) Update(ctx context.Context, ability *domain.Ability) error {
	return r.db.WithContext(ctx).Save(ability).Error
}

func (r *abilityRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Ability{}, id).Error
}
