package models

import "time"

// Category labels ledger entries for reporting. Default categories are
// shared rows with a nil UserID; user-created ones carry the owner.
type Category struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	UserID    *uint  `gorm:"index" json:"userId,omitempty"`
	Name      string `gorm:"not null" json:"name"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
	IsDefault bool   `gorm:"default:false" json:"isDefault"`
	CreatedAt time.Time `json:"createdAt"`
}

// The fallback bucket for entries without a category. It matches the
// seeded "Khác" default category so report groupings stay consistent.
const (
	UncategorizedName  = "Khác"
	UncategorizedIcon  = "📦"
	UncategorizedColor = "gray"
)
