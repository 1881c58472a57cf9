package wallet

import "time"

// CreateInput captures the data required to create a wallet.
type CreateInput struct {
	Name           string
	WalletType     string
	InitialBalance float64
	Description    string
}

// View is the wallet shape returned to the UI.
type View struct {
	ID               uint      `json:"id"`
	Name             string    `json:"name"`
	Type             TypeView  `json:"type"`
	Balance          float64   `json:"balance"`
	TransactionCount int64     `json:"transactionCount"`
	Description      string    `json:"description"`
	IsActive         bool      `json:"isActive"`
	CreatedAt        time.Time `json:"createdAt"`
}

type TypeView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// Overview is the payload of GET /api/wallets.
type Overview struct {
	Wallets      []View  `json:"wallets"`
	TotalBalance float64 `json:"totalBalance"`
	Summary      struct {
		TotalWallets  int `json:"totalWallets"`
		ActiveWallets int `json:"activeWallets"`
	} `json:"summary"`
}
