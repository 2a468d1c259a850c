package postgres

import (
	"context"

	"github.com/tomd/hero-build-planner/internal/domain"
	"gorm.io/gorm"
)

type buildUpgradeRepository struct {
	db *gorm.DB
}

func NewBuildUpgradeRepository(db *gorm.DB) *buildUpgradeRepository {
	return &buildUpgradeRepository{db: db}
}

func (r *buildUpgradeRepository) Create(ctx context.Context, bu *domain.BuildUpgrade) error {
	return r.db.WithContext(ctx).Create(bu).Error
}

func (r *buildUpgradeRepository) GetByID(ctx context.Context, id uint) (*domain.BuildUpgrade, error) {
	var bu domain.BuildUpgrade
	err := r.db.WithContext(ctx).First(&bu, id).Error
	if err != nil {
		return nil, err
	}
	return &bu, nil
}

func (r *buildUpgradeRepository) List(ctx context.Context) ([]*domain.BuildUpgrade, error) {
	var records []*domain.BuildUpgrade
	err := r.db.WithContext(ctx).Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *buildUpgradeRepository) GetByBuildID(ctx context.Context, buildID uint) ([]*domain.BuildUpgrade, error) {
	var records []*domain.BuildUpgrade
	err := r.db.WithContext(ctx).Where("build_id = ?", buildID).Order("slot ASC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *buildUpgradeRepository) Update(ctx context.Context, bu *domain.BuildUpgrade) error {
	return r.db.WithContext(ctx).Save(bu).Error
}

func (r *buildUpgradeRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.BuildUpgrade{}, id).Error
}

func (r *buildUpgradeRepository) DeleteByBuildID(ctx context.Context, buildID uint) error {
	return r.db.WithContext(ctx).Where("build_id = ?", buildID).Delete(&domain.BuildUpgrade{}).Error
}
