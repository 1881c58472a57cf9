package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	Password     string `gorm:"not null" json:"-"`
	FullName     string `gorm:"not null" json:"fullName"`
	AvatarURL    string `json:"avatarUrl"`
	IsPremium    bool   `gorm:"default:false" json:"isPremium"`
	TokenVersion int    `gorm:"default:1" json:"-"`
	LastLoginAt  *time.Time `json:"lastLogin"`
}

// CreateUserInput represents the signup payload.
type CreateUserInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}
