package postgres

import (
	"context"

	"github.com/tomd/hero-build-planner/internal/domain"
	"gorm.io/gorm"
)

type buildRepository struct {
	db *gorm.DB
}

func NewBuildRepository(db *gorm.DB) *buildRepository {
	return &buildRepository{db: db}
}

func (r *buildRepository) Create(ctx context.Context, build *domain.Build) error {
	return r.db.WithContext(ctx).Create(build).Error
}

func (r *buildRepository) GetByID(ctx context.Context, id uint) (*domain.Build, error) {
	var build domain.Build
	err := r.db.WithContext(ctx).First(&build, id).Error
	if err != nil {
		return nil, err
	}
	return &build, nil
}

func (r *buildRepository) List(ctx context.Context) ([]*domain.Build, error) {
	var builds []*domain.Build
	err := r.db.WithContext(ctx).Find(&builds).Error
	if err != nil {
		return nil, err
	}
	return builds, nil
}

func (r *buildRepository) Update(ctx context.Context, build *domain.Build) error {
	return r.db.WithContext(ctx).Save(build).Error
}

func (r *buildRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Build{}, id).Error
}
