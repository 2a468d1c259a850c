package domain

import "time"

type Build struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"userId" gorm:"not null;index"`
	HeroID      uint      `json:"hero" gorm:"not null;index"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	IsPublic    bool      `json:"isPublic" gorm:"not null;default:false"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	User *User `json:"-" gorm:"foreignKey:UserID"`
	Hero *Hero `json:"-" gorm:"foreignKey:HeroID"`
}

// BuildUpgrade places one Upgrade into one slot of one Build. (build_id, slot)
// is unique in practice but not enforced by the schema.
type BuildUpgrade struct {
	ID        uint `json:"id" gorm:"primaryKey"`
	BuildID   uint `json:"build" gorm:"not null;index"`
	UpgradeID uint `json:"upgrade" gorm:"not null;index"`
	Slot      int  `json:"slot" gorm:"not null"`

	Build   *Build   `json:"-" gorm:"foreignKey:BuildID"`
	Upgrade *Upgrade `json:"-" gorm:"foreignKey:UpgradeID"`
}
