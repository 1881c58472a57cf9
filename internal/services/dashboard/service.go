// Package dashboard assembles the home-screen snapshot: total balance,
// active wallets and the latest ledger entries.
package dashboard

import (
	"context"
	"log"
	"time"

	"vimo/internal/models"
	"vimo/internal/repositories"
	"vimo/internal/repositories/cache"
)

const (
	recentLimit = 5
	cacheTTL    = time.Minute
)

// WalletSummary is one wallet line on the dashboard.
type WalletSummary struct {
	ID      uint    `json:"id"`
	Name    string  `json:"name"`
	Type    string  `json:"type"`
	Balance float64 `json:"balance"`
	Icon    string  `json:"icon"`
}

// RecentEntry is one recent-transaction line, with the uncategorized
// fallback already applied.
type RecentEntry struct {
	ID          uint      `json:"id"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Category    Category  `json:"category"`
	Wallet      string    `json:"wallet"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

type Category struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// Snapshot is the payload of GET /api/dashboard.
type Snapshot struct {
	TotalBalance       float64         `json:"totalBalance"`
	Wallets            []WalletSummary `json:"wallets"`
	RecentTransactions []RecentEntry   `json:"recentTransactions"`
	Summary            struct {
		TotalWallets      int `json:"totalWallets"`
		TotalTransactions int `json:"totalTransactions"`
	} `json:"summary"`
}

// Service builds dashboard snapshots.
type Service interface {
	Snapshot(ctx context.Context, ownerID uint) (*Snapshot, error)
}

type service struct {
	wallets repositories.WalletRepository
	ledger  repositories.LedgerRepository
	cache   *cache.CacheService
}

// NewService creates a dashboard service. cacheSvc may be nil.
func NewService(wallets repositories.WalletRepository, ledger repositories.LedgerRepository, cacheSvc *cache.CacheService) Service {
	if wallets == nil || ledger == nil {
		panic("wallet and ledger repositories are required")
	}
	return &service{wallets: wallets, ledger: ledger, cache: cacheSvc}
}

func (s *service) Snapshot(ctx context.Context, ownerID uint) (*Snapshot, error) {
	if s.cache != nil {
		var cached Snapshot
		key := s.cache.GenerateKey("dashboard", "user", ownerID)
		if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
			return &cached, nil
		}
	}

	wallets, err := s.wallets.ListActiveByUser(ownerID)
	if err != nil {
		return nil, err
	}

	snapshot := &Snapshot{Wallets: make([]WalletSummary, 0, len(wallets))}
	for _, w := range wallets {
		summary := WalletSummary{
			ID:      w.ID,
			Name:    w.Name,
			Balance: w.CurrentBalance,
		}
		if w.Type != nil {
			summary.Type = w.Type.Name
			summary.Icon = w.Type.Icon
		}
		snapshot.Wallets = append(snapshot.Wallets, summary)
		snapshot.TotalBalance += w.CurrentBalance
	}

	recent, err := s.ledger.RecentByUser(ctx, ownerID, recentLimit)
	if err != nil {
		return nil, err
	}
	snapshot.RecentTransactions = make([]RecentEntry, 0, len(recent))
	for _, t := range recent {
		entry := RecentEntry{
			ID:          t.ID,
			Type:        t.Type,
			Amount:      t.Amount,
			Description: t.Description,
			Date:        t.TransactionDate,
			Category: Category{
				Name:  models.UncategorizedName,
				Icon:  models.UncategorizedIcon,
				Color: models.UncategorizedColor,
			},
		}
		if t.Category != nil {
			entry.Category = Category{Name: t.Category.Name, Icon: t.Category.Icon, Color: t.Category.Color}
		}
		if t.Wallet != nil {
			entry.Wallet = t.Wallet.Name
		}
		snapshot.RecentTransactions = append(snapshot.RecentTransactions, entry)
	}

	total, err := s.ledger.CountByUser(ownerID)
	if err != nil {
		return nil, err
	}
	snapshot.Summary.TotalWallets = len(wallets)
	snapshot.Summary.TotalTransactions = int(total)

	if s.cache != nil {
		key := s.cache.GenerateKey("dashboard", "user", ownerID)
		if err := s.cache.SetWithTTL(ctx, key, snapshot, cacheTTL); err != nil {
			log.Printf("failed to cache dashboard: %v", err)
		}
	}
	return snapshot, nil
}
