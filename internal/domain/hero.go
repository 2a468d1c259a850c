package domain

type Hero struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"size:100;not null"`
	Role        string  `json:"role" gorm:"size:20;not null"`
	Description string  `json:"description" gorm:"type:text;not null"`
	ImageURL    *string `json:"imageUrl" gorm:"size:255"`
}

type HeroRole string

// Open set of role tags. Not enforced at the DB level.
const (
	RoleTank    HeroRole = "Tank"
	RoleDamage  HeroRole = "Damage"
	RoleSupport HeroRole = "Support"
	RoleFlex    HeroRole = "Flex"
)
