package domain

type Ability struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	HeroID      uint    `json:"hero" gorm:"not null;index"`
	Name        string  `json:"name" gorm:"size:100;not null"`
	Description string  `json:"description" gorm:"type:text;not null"`
	Cooldown    *int    `json:"cooldown"`
	IconURL     *string `json:"iconUrl" gorm:"size:255"`

	Hero *Hero `json:"-" gorm:"foreignKey:HeroID"`
}
