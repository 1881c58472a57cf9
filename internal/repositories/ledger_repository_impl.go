package repositories

import (
	"context"
	"fmt"
	"time"

	"vimo/internal/models"

	"gorm.io/gorm"
)

type ledgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) ExecuteInTransaction(fn func(LedgerRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&ledgerRepository{db: tx})
	})
}

func (r *ledgerRepository) GetOwnedActiveWallet(walletID, userID uint) (*models.Wallet, error) {
	var wallet models.Wallet
	err := r.db.
		Where("id = ? AND user_id = ? AND is_active = ?", walletID, userID, true).
		First(&wallet).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return &wallet, nil
}

func (r *ledgerRepository) CreditWallet(walletID uint, amount float64) error {
	result := r.db.Model(&models.Wallet{}).
		Where("id = ? AND is_active = ?", walletID, true).
		Update("current_balance", gorm.Expr("current_balance + ?", amount))
	if result.Error != nil {
		return fmt.Errorf("failed to credit wallet: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrWalletNotFound
	}
	return nil
}

// DebitWallet relies on the WHERE predicate, not transaction isolation,
// to prevent lost updates: two concurrent debits race on the same row
// and the second one re-evaluates the balance check after the first
// commits.
func (r *ledgerRepository) DebitWallet(walletID uint, amount float64) error {
	result := r.db.Model(&models.Wallet{}).
		Where("id = ? AND is_active = ? AND current_balance >= ?", walletID, true, amount).
		Update("current_balance", gorm.Expr("current_balance - ?", amount))
	if result.Error != nil {
		return fmt.Errorf("failed to debit wallet: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrInsufficientBalance
	}
	return nil
}

func (r *ledgerRepository) CreateTransaction(tx *models.Transaction) error {
	if result := r.db.Create(tx); result.Error != nil {
		return fmt.Errorf("failed to create transaction: %w", result.Error)
	}
	return nil
}

func (r *ledgerRepository) CreateTransfer(tr *models.Transfer) error {
	if result := r.db.Create(tr); result.Error != nil {
		return fmt.Errorf("failed to create transfer: %w", result.Error)
	}
	return nil
}

func (r *ledgerRepository) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]*models.Transaction, error) {
	var txs []*models.Transaction
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Wallet").
		Preload("Wallet.Type").
		Where("user_id = ?", userID).
		Order("transaction_date DESC").
		Limit(limit).
		Offset(offset).
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, nil
}

func (r *ledgerRepository) ListByUserInRange(ctx context.Context, userID uint, start, end time.Time) ([]*models.Transaction, error) {
	var txs []*models.Transaction
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Wallet").
		Preload("Wallet.Type").
		Where("user_id = ? AND transaction_date >= ? AND transaction_date <= ?", userID, start, end).
		Order("transaction_date DESC").
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions in range: %w", err)
	}
	return txs, nil
}

func (r *ledgerRepository) RecentByUser(ctx context.Context, userID uint, limit int) ([]*models.Transaction, error) {
	var txs []*models.Transaction
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Wallet").
		Preload("Wallet.Type").
		Where("user_id = ?", userID).
		Order("transaction_date DESC").
		Limit(limit).
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent transactions: %w", err)
	}
	return txs, nil
}

func (r *ledgerRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Transaction{}).Where("user_id = ?", userID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}
