package domain

import "gorm.io/datatypes"

type Upgrade struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	AbilityID   uint           `json:"ability" gorm:"not null;index"`
	Name        string         `json:"name" gorm:"size:100;not null"`
	Description string         `json:"description" gorm:"type:text;not null"`
	Cost        int            `json:"cost" gorm:"not null"`
	Effect      datatypes.JSON `json:"effect" gorm:"type:jsonb;not null"` // opaque effect payload, e.g. {"damage": "+15%"}

	Ability *Ability `json:"-" gorm:"foreignKey:AbilityID"`
}
