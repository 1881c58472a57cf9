package models

import "time"

// Wallet statuses are modelled with IsActive only: wallets are never
// deleted, they are deactivated so their ledger history stays intact.
type Wallet struct {
	ID             uint    `gorm:"primarykey" json:"id"`
	UserID         uint    `gorm:"not null;index" json:"userId"`
	Name           string  `gorm:"not null" json:"name"`
	WalletTypeID   string  `gorm:"not null" json:"walletTypeId"`
	Type           *WalletType `gorm:"foreignKey:WalletTypeID" json:"type,omitempty"`
	InitialBalance float64 `gorm:"not null;default:0" json:"initialBalance"`
	CurrentBalance float64 `gorm:"not null;default:0" json:"currentBalance"`
	Description    string  `json:"description"`
	IsActive       bool    `gorm:"default:true" json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// WalletType is a seeded lookup row ("cash", "bank", ...).
type WalletType struct {
	ID          string `gorm:"primarykey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}
