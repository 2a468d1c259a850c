package service

import (
	"github.com/tomd/hero-build-planner/internal/config"
	"github.com/tomd/hero-build-planner/internal/repository"
)

type Services struct {
	Auth         *AuthService
	Hero         *HeroService
	Ability      *AbilityService
	Upgrade      *UpgradeService
	Build        *BuildService
	BuildUpgrade *BuildUpgradeService
}

func NewServices(repos *repository.Repositories, txm repository.TxManager, cfg *config.Config) *Services {
	return &Services{
		Auth:         NewAuthService(repos.User, repos.Session, cfg),
		Hero:         NewHeroService(repos.Hero),
		Ability:      NewAbilityService(repos.Ability, repos.Hero),
		Upgrade:      NewUpgradeService(repos.Upgrade, repos.Ability),
		Build:        NewBuildService(repos, txm, cfg),
		BuildUpgrade: NewBuildUpgradeService(repos.BuildUpgrade, repos.Build, repos.Upgrade),
	}
}
