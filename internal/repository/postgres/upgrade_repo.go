package postgres

import (
	"context"

	"github.com/tomd/hero-build-planner/internal/domain"
	"gorm.io/gorm"
)

type upgradeRepository struct {
	db *gorm.DB
}

func NewUpgradeRepository(db *gorm.DB) *upgradeRepository {
	return &upgradeRepository{db: db}
}

func (r *upgradeRepository) Create(ctx context.Context, upgrade *domain.Upgrade) error {
	return r.db.WithContext(ctx).Create(upgrade).Error
}

func (r *upgradeRepository) GetByID(ctx context.Context, id uint) (*domain.Upgrade, error) {
	var upgrade domain.Upgrade
	err := r.db.WithContext(ctx).First(&upgrade, id).Error
	if err != nil {
		return nil, err
	}
	return &upgrade, nil
}

func (r *upgradeRepository) List(ctx context.Context) ([]*domain.Upgrade, error) {
	var upgrades []*domain.Upgrade
	err := r.db.WithContext(ctx).Find(&upgrades).Error
	if err != nil {
		return nil, err
	}
	return upgrades, nil
}

func (r *upgradeRepository) Update(ctx context.Context, upgrade *domain.Upgrade) error {
	return r.db.WithContext(ctx).Save(upgrade).Error
}

func (r *upgradeRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Upgrade{}, id).Error
}
