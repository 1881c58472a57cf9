package repositories

import (
	"context"
	"time"

	"vimo/internal/models"
)

// LedgerRepository defines the append-only ledger store plus the balance
// mutations that must commit together with ledger rows. All writes are
// expected to run inside ExecuteInTransaction so that a failed append
// rolls back the balance change and vice versa.
type LedgerRepository interface {
	// ExecuteInTransaction runs fn against a repository bound to a
	// single database transaction. fn returning an error rolls back
	// every write issued through that repository.
	ExecuteInTransaction(fn func(LedgerRepository) error) error

	GetOwnedActiveWallet(walletID, userID uint) (*models.Wallet, error)

	// CreditWallet applies a positive delta to the wallet balance.
	CreditWallet(walletID uint, amount float64) error

	// DebitWallet decrements the balance only when the current balance
	// covers the amount, as a single conditional UPDATE. It returns
	// ErrInsufficientBalance when the predicate does not match, which
	// is what serializes concurrent debits against the same wallet.
	DebitWallet(walletID uint, amount float64) error

	CreateTransaction(tx *models.Transaction) error
	CreateTransfer(tr *models.Transfer) error

	ListByUser(ctx context.Context, userID uint, limit, offset int) ([]*models.Transaction, error)
	ListByUserInRange(ctx context.Context, userID uint, start, end time.Time) ([]*models.Transaction, error)
	RecentByUser(ctx context.Context, userID uint, limit int) ([]*models.Transaction, error)
	CountByUser(userID uint) (int64, error)
}
