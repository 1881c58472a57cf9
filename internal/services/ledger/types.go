package ledger

import "time"

// TransactionInput is a request to record an income or expense.
type TransactionInput struct {
	WalletID        uint
	CategoryID      *uint
	Type            string // models.TransactionTypeIncome or ...Expense
	Amount          float64
	Description     string
	TransactionDate *time.Time // defaults to now
}

// TransferInput is a request to move funds between two wallets of the
// same owner.
type TransferInput struct {
	FromWalletID uint
	ToWalletID   uint
	Amount       float64
	Note         string
}
