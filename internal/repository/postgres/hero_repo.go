package postgres

import (
	"context"

	"github.com/tomd/hero-build-planner/internal/domain"
	"github.com/tomd/hero-build-planner/internal/repository"
	"gorm.io/gorm"
)

type heroRepository struct {
	db *gorm.DB
}

func NewHeroRepository(db *gorm.DB) *heroRepository {
	return &heroRepository{db: db}
}

func (r *heroRepository) Create(ctx context.Context, hero *domain.Hero) error {
	return r.db.WithContext(ctx).Create(hero).Error
}

func (r *heroRepository) GetByID(ctx context.Context, id uint) (*domain.Hero, error) {
	var hero domain.Hero
	err := r.db.WithContext(ctx).First(&hero, id).Error
	if err != nil {
		return nil, err
	}
	return &hero, nil
}

func (r *heroRepository) List(ctx context.Context, filter repository.HeroFilter) ([]*domain.Hero, error) {
	q := r.db.WithContext(ctx).Model(&domain.Hero{})

	if filter.Role != "" {
		q = q.Where("role = ?", filter.Role)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("name LIKE ? OR description LIKE ?", pattern, pattern)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit).Offset(filter.Offset)
	}

	var heroes []*domain.Hero
	if err := q.Find(&heroes).Error; err != nil {
		return nil, err
	}
	return heroes, nil
}

func (r *heroRepository) Update(ctx context.Context, hero *domain.Hero) error {
	return r.db.WithContext(ctx).Save(hero).Error
}

func (r *heroRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Hero{}, id).Error
}
