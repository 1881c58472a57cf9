package ledger

import (
	"context"
	"errors"
	"log"
	"time"

	domainerrors "vimo/internal/errors"
	"vimo/internal/models"
	"vimo/internal/repositories"

	"github.com/google/uuid"
)

type service struct {
	repo       repositories.LedgerRepository
	categories CategoryChecker
	cache      CacheInvalidator
}

// NewService creates a new ledger service. cache may be nil.
func NewService(repo repositories.LedgerRepository, categories CategoryChecker, cache CacheInvalidator) Service {
	if repo == nil {
		panic("ledger repository is required")
	}
	if categories == nil {
		panic("category checker is required")
	}
	return &service{
		repo:       repo,
		categories: categories,
		cache:      cache,
	}
}

func (s *service) RecordTransaction(ctx context.Context, ownerID uint, input TransactionInput) (*models.Transaction, error) {
	if input.Type != models.TransactionTypeIncome && input.Type != models.TransactionTypeExpense {
		return nil, domainerrors.ErrInvalidTransactionType
	}
	if input.Amount <= 0 {
		return nil, domainerrors.ErrInvalidAmount
	}
	if input.WalletID == 0 || input.CategoryID == nil {
		return nil, domainerrors.ErrMissingCategoryOrWallet
	}

	if _, err := s.categories.GetVisible(*input.CategoryID, ownerID); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}
		return nil, err
	}

	transactionDate := time.Now()
	if input.TransactionDate != nil {
		transactionDate = *input.TransactionDate
	}

	entry := &models.Transaction{
		Reference:       uuid.NewString(),
		UserID:          ownerID,
		WalletID:        input.WalletID,
		CategoryID:      input.CategoryID,
		Type:            input.Type,
		Amount:          input.Amount,
		Description:     input.Description,
		TransactionDate: transactionDate,
	}

	err := s.repo.ExecuteInTransaction(func(tx repositories.LedgerRepository) error {
		wallet, err := tx.GetOwnedActiveWallet(input.WalletID, ownerID)
		if err != nil {
			return err
		}

		if input.Type == models.TransactionTypeExpense {
			// Fast check against the loaded balance; the conditional
			// debit below is the authoritative one.
			if wallet.CurrentBalance < input.Amount {
				return repositories.ErrInsufficientBalance
			}
			if err := tx.DebitWallet(wallet.ID, input.Amount); err != nil {
				return err
			}
		} else {
			if err := tx.CreditWallet(wallet.ID, input.Amount); err != nil {
				return err
			}
		}

		return tx.CreateTransaction(entry)
	})
	if err != nil {
		return nil, s.mapRepoError(err)
	}

	s.invalidate(ctx, ownerID)
	return entry, nil
}

func (s *service) Transfer(ctx context.Context, ownerID uint, input TransferInput) (*models.Transfer, error) {
	if input.FromWalletID == 0 || input.ToWalletID == 0 {
		return nil, domainerrors.ErrMissingTransferFields
	}
	if input.FromWalletID == input.ToWalletID {
		return nil, domainerrors.ErrSameWalletTransfer
	}
	if input.Amount <= 0 {
		return nil, domainerrors.ErrInvalidAmount
	}

	transfer := &models.Transfer{
		Reference:    uuid.NewString(),
		UserID:       ownerID,
		FromWalletID: input.FromWalletID,
		ToWalletID:   input.ToWalletID,
		Amount:       input.Amount,
		Note:         input.Note,
	}

	err := s.repo.ExecuteInTransaction(func(tx repositories.LedgerRepository) error {
		fromWallet, err := tx.GetOwnedActiveWallet(input.FromWalletID, ownerID)
		if err != nil {
			return err
		}
		if _, err := tx.GetOwnedActiveWallet(input.ToWalletID, ownerID); err != nil {
			return err
		}

		if fromWallet.CurrentBalance < input.Amount {
			return repositories.ErrInsufficientBalance
		}
		if err := tx.DebitWallet(input.FromWalletID, input.Amount); err != nil {
			return err
		}
		if err := tx.CreditWallet(input.ToWalletID, input.Amount); err != nil {
			return err
		}

		return tx.CreateTransfer(transfer)
	})
	if err != nil {
		return nil, s.mapRepoError(err)
	}

	s.invalidate(ctx, ownerID)
	return transfer, nil
}

func (s *service) ListTransactions(ctx context.Context, ownerID uint, limit, offset int) ([]*models.Transaction, error) {
	return s.repo.ListByUser(ctx, ownerID, limit, offset)
}

func (s *service) mapRepoError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrWalletNotFound):
		return domainerrors.ErrWalletNotFound
	case errors.Is(err, repositories.ErrInsufficientBalance):
		return domainerrors.ErrInsufficientBalance
	default:
		return err
	}
}

func (s *service) invalidate(ctx context.Context, ownerID uint) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateUser(ctx, ownerID); err != nil {
		log.Printf("failed to invalidate cache for user %d: %v", ownerID, err)
	}
}
