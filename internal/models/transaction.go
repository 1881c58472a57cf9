package models

import "time"

// Transaction types
const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

// Transaction is an immutable ledger entry for a single wallet. Rows are
// only ever inserted; there is no update or delete path.
type Transaction struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	Reference       string    `gorm:"uniqueIndex;not null" json:"reference"`
	UserID          uint      `gorm:"not null;index" json:"userId"`
	WalletID        uint      `gorm:"not null;index" json:"walletId"`
	Wallet          *Wallet   `gorm:"foreignKey:WalletID" json:"wallet,omitempty"`
	CategoryID      *uint     `json:"categoryId,omitempty"`
	Category        *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Type            string    `gorm:"not null" json:"type"`
	Amount          float64   `gorm:"not null" json:"amount"`
	Description     string    `json:"description"`
	TransactionDate time.Time `gorm:"not null;index" json:"transactionDate"`
	CreatedAt       time.Time `json:"createdAt"`
}
