package models

import (
	"time"
)

const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

// User is the single identity record. Federated accounts keep a NULL
// password hash, so the field is a pointer.
type User struct {
	ID           uint    `json:"id" gorm:"primaryKey"`
	Username     string  `json:"username" gorm:"uniqueIndex;not null"`
	Email        string  `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash *string `json:"-"`
	AuthProvider string  `json:"auth_provider" gorm:"not null;default:local"`
	AvatarPath   string  `json:"avatar_path,omitempty"`
	IsAdmin      bool    `json:"is_admin" gorm:"not null;default:false"`

	Orders []Order `json:"-" gorm:"foreignKey:UserID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
