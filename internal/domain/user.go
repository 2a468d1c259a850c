package domain

import (
	"time"

	"gorm.io/datatypes"
)

const RoleUser = "ROLE_USER"

type User struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Email        string         `json:"email" gorm:"size:180;uniqueIndex;not null"`
	PasswordHash string         `json:"-" gorm:"column:password;not null"`
	Roles        datatypes.JSON `json:"roles" gorm:"type:jsonb;not null"` // ["ROLE_USER", ...]
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

type UserSession struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	UserID           uint      `json:"userId" gorm:"not null;index"`
	RefreshTokenHash string    `json:"-" gorm:"not null"`
	ExpiresAt        time.Time `json:"expiresAt" gorm:"not null"`
	CreatedAt        time.Time `json:"createdAt"`

	User *User `json:"-" gorm:"foreignKey:UserID"`
}
