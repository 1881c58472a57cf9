package repositories

import (
	"errors"

	"vimo/internal/models"
)

var (
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrWalletTypeNotFound  = errors.New("wallet type not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// WalletRepository defines wallet persistence operations.
type WalletRepository interface {
	Create(wallet *models.Wallet) error
	GetByID(id uint) (*models.Wallet, error)
	// GetOwnedActive returns the wallet only when it belongs to userID
	// and is active; ErrWalletNotFound otherwise.
	GetOwnedActive(id, userID uint) (*models.Wallet, error)
	ListActiveByUser(userID uint) ([]*models.Wallet, error)
	Update(wallet *models.Wallet) error
	Deactivate(id, userID uint) error
	CountTransactions(walletID uint) (int64, error)

	GetWalletType(id string) (*models.WalletType, error)
	ListWalletTypes() ([]*models.WalletType, error)
}
