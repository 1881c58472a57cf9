// Package wallet manages wallet records. Balances are written here only
// at creation time; every later balance change goes through the ledger
// service.
package wallet

import (
	"context"
	"errors"
	"log"
	"strings"

	"vimo/internal/models"
	"vimo/internal/repositories"
	"vimo/internal/repositories/cache"
)

// Service defines wallet management operations.
type Service interface {
	Create(ctx context.Context, ownerID uint, input CreateInput) (*View, error)
	Get(ctx context.Context, ownerID, walletID uint) (*View, error)
	Overview(ctx context.Context, ownerID uint) (*Overview, error)
	Deactivate(ctx context.Context, ownerID, walletID uint) error
	ListTypes(ctx context.Context) ([]*models.WalletType, error)
}

type service struct {
	repo  repositories.WalletRepository
	cache *cache.CacheService
}

// NewService creates a wallet service. cache may be nil.
func NewService(repo repositories.WalletRepository, cacheSvc *cache.CacheService) Service {
	if repo == nil {
		panic("wallet repository is required")
	}
	return &service{repo: repo, cache: cacheSvc}
}

func (s *service) Create(ctx context.Context, ownerID uint, input CreateInput) (*View, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrInvalidName
	}
	if input.InitialBalance < 0 {
		return nil, ErrNegativeBalance
	}

	walletType, err := s.repo.GetWalletType(input.WalletType)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletTypeNotFound) {
			return nil, ErrInvalidWalletType
		}
		return nil, err
	}

	wallet := &models.Wallet{
		UserID:         ownerID,
		Name:           strings.TrimSpace(input.Name),
		WalletTypeID:   walletType.ID,
		InitialBalance: input.InitialBalance,
		CurrentBalance: input.InitialBalance,
		Description:    input.Description,
		IsActive:       true,
	}
	if err := s.repo.Create(wallet); err != nil {
		return nil, err
	}
	wallet.Type = walletType

	s.invalidate(ctx, ownerID)
	return s.toView(wallet, 0), nil
}

func (s *service) Get(ctx context.Context, ownerID, walletID uint) (*View, error) {
	wallet, err := s.repo.GetOwnedActive(walletID, ownerID)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return nil, ErrWalletNotFound
		}
		return nil, err
	}

	count, err := s.repo.CountTransactions(wallet.ID)
	if err != nil {
		return nil, err
	}
	return s.toView(wallet, count), nil
}

func (s *service) Overview(ctx context.Context, ownerID uint) (*Overview, error) {
	if s.cache != nil {
		var cached Overview
		key := s.cache.GenerateKey("wallets", "user", ownerID)
		if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
			return &cached, nil
		}
	}

	wallets, err := s.repo.ListActiveByUser(ownerID)
	if err != nil {
		return nil, err
	}

	overview := &Overview{Wallets: make([]View, 0, len(wallets))}
	for _, w := range wallets {
		count, err := s.repo.CountTransactions(w.ID)
		if err != nil {
			return nil, err
		}
		overview.Wallets = append(overview.Wallets, *s.toView(w, count))
		overview.TotalBalance += w.CurrentBalance
	}
	overview.Summary.TotalWallets = len(wallets)
	overview.Summary.ActiveWallets = len(wallets)

	if s.cache != nil {
		key := s.cache.GenerateKey("wallets", "user", ownerID)
		if err := s.cache.Set(ctx, key, overview); err != nil {
			log.Printf("failed to cache wallet overview: %v", err)
		}
	}
	return overview, nil
}

func (s *service) Deactivate(ctx context.Context, ownerID, walletID uint) error {
	if err := s.repo.Deactivate(walletID, ownerID); err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return ErrWalletNotFound
		}
		return err
	}
	s.invalidate(ctx, ownerID)
	return nil
}

func (s *service) ListTypes(ctx context.Context) ([]*models.WalletType, error) {
	return s.repo.ListWalletTypes()
}

func (s *service) toView(w *models.Wallet, txCount int64) *View {
	view := &View{
		ID:               w.ID,
		Name:             w.Name,
		Balance:          w.CurrentBalance,
		TransactionCount: txCount,
		Description:      w.Description,
		IsActive:         w.IsActive,
		CreatedAt:        w.CreatedAt,
	}
	if w.Type != nil {
		view.Type = TypeView{
			ID:          w.Type.ID,
			Name:        w.Type.Name,
			Icon:        w.Type.Icon,
			Description: w.Type.Description,
		}
	}
	return view
}

func (s *service) invalidate(ctx context.Context, ownerID uint) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateUser(ctx, ownerID); err != nil {
		log.Printf("failed to invalidate cache for user %d: %v", ownerID, err)
	}
}
