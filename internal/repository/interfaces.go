package repository

import (
	"context"

	"github.com/tomd/hero-build-planner/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type SessionRepository interface {
	Create(ctx context.Context, session *domain.UserSession) error
	GetByUserID(ctx context.Context, userID uint) (*domain.UserSession, error)
	DeleteByUserID(ctx context.Context, userID uint) error
}

// HeroFilter narrows List results. Zero values mean "no constraint";
// Limit <= 0 returns the full set.
type HeroFilter struct {
	Role   string
	Search string
	Limit  int
	Offset int
}

type HeroRepository interface {
	Create(ctx context.Context, hero *domain.Hero) error
	GetByID(ctx context.Context, id uint) (*domain.Hero, error)
	List(ctx context.Context, filter HeroFilter) ([]*domain.Hero, error)
	Update(ctx context.Context, hero *domain.Hero) error
	Delete(ctx context.Context, id uint) error
}

type AbilityRepository interface {
	Create(ctx context.Context, ability *domain.Ability) error
	GetByID(ctx context.Context, id uint) (*domain.Ability, error)
	List(ctx context.Context) ([]*domain.Ability, error)
	Update(ctx context.Context, ability *domain.Ability) error
	Delete(ctx context.Context, id uint) error
}

type UpgradeRepository interface {
	Create(ctx context.Context, upgrade *domain.Upgrade) error
	GetByID(ctx context.Context, id uint) (*domain.Upgrade, error)
	List(ctx context.Context) ([]*domain.Upgrade, error)
	Update(ctx context.Context, upgrade *domain.Upgrade) error
	Delete(ctx context.Context, id uint) error
}

type BuildRepository interface {
	Create(ctx context.Context, build *domain.Build) error
	GetByID(ctx context.Context, id uint) (*domain.Build, error)
	List(ctx context.Context) ([]*domain.Build, error)
	Update(ctx context.Context, build *domain.Build) error
	Delete(ctx context.Context, id uint) error
}

type BuildUpgradeRepository interface {
	Create(ctx context.Context, bu *domain.BuildUpgrade) error
	GetByID(ctx context.Context, id uint) (*domain.BuildUpgrade, error)
	List(ctx context.Context) ([]*domain.BuildUpgrade, error)
	GetByBuildID(ctx context.Context, buildID uint) ([]*domain.BuildUpgrade, error)
	Update(ctx context.Context, bu *domain.BuildUpgrade) error
	Delete(ctx context.Context, id uint) error
	DeleteByBuildID(ctx context.Context, buildID uint) error
}

type Repositories struct {
	User         UserRepository
	Session      SessionRepository
	Hero         HeroRepository
	Ability      AbilityRepository
	Upgrade      UpgradeRepository
	Build        BuildRepository
	BuildUpgrade BuildUpgradeRepository
}

// TxManager runs fn against a transaction-bound set of repositories. The
// whole unit commits if fn returns nil and rolls back otherwise. Build
// aggregate writes (build row + its build_upgrade rows) go through this so
// a failure cannot leave partial state.
type TxManager interface {
	Do(ctx context.Context, fn func(repos *Repositories) error) error
}
