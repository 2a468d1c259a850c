package domain

import "errors"

var (
	ErrHeroNotFound         = errors.New("hero not found")
	ErrAbilityNotFound      = errors.New("ability not found")
	ErrUpgradeNotFound      = errors.New("upgrade not found")
	ErrBuildNotFound        = errors.New("build not found")
	ErrBuildUpgradeNotFound = errors.New("build upgrade not found")
	ErrUserNotFound         = errors.New("user not found")
)
