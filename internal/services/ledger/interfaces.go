package ledger

import (
	"context"

	"vimo/internal/models"
)

// Service is the ledger writer. Implementations must guarantee that
// balance mutations and ledger appends commit atomically.
type Service interface {
	RecordTransaction(ctx context.Context, ownerID uint, input TransactionInput) (*models.Transaction, error)
	Transfer(ctx context.Context, ownerID uint, input TransferInput) (*models.Transfer, error)
	ListTransactions(ctx context.Context, ownerID uint, limit, offset int) ([]*models.Transaction, error)
}

// CategoryChecker validates that a category is visible to the owner.
type CategoryChecker interface {
	GetVisible(id, userID uint) (*models.Category, error)
}

// CacheInvalidator drops cached per-user views after a write.
type CacheInvalidator interface {
	InvalidateUser(ctx context.Context, userID uint) error
}
