package models

import "time"

// Transfer is an immutable record of a fund movement between two wallets
// of the same owner. A transfer implies two balance mutations but a
// single ledger row.
type Transfer struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Reference    string    `gorm:"uniqueIndex;not null" json:"reference"`
	UserID       uint      `gorm:"not null;index" json:"userId"`
	FromWalletID uint      `gorm:"not null" json:"fromWalletId"`
	ToWalletID   uint      `gorm:"not null" json:"toWalletId"`
	Amount       float64   `gorm:"not null" json:"amount"`
	Note         string    `json:"note"`
	CreatedAt    time.Time `json:"createdAt"`
}
