// Package report aggregates the ledger over a date range into the
// summary, breakdown and trend buckets the reports screen renders.
package report

import (
	"context"
	"sort"
	"time"

	"vimo/internal/models"
	"vimo/internal/repositories"
)

const recentLimit = 10

// Service builds period reports from the ledger.
type Service interface {
	Generate(ctx context.Context, ownerID uint, period string) (*Report, error)
}

type service struct {
	repo repositories.LedgerRepository
	now  func() time.Time
}

// NewService creates a report service. nowFn is for tests; pass nil for
// the real clock.
func NewService(repo repositories.LedgerRepository, nowFn func() time.Time) Service {
	if repo == nil {
		panic("ledger repository is required")
	}
	if nowFn == nil {
		nowFn = time.Now
	}
	return &service{repo: repo, now: nowFn}
}

func (s *service) Generate(ctx context.Context, ownerID uint, period string) (*Report, error) {
	now := s.now()
	start := periodStart(period, now)
	if period != PeriodWeek && period != PeriodYear {
		period = PeriodMonth
	}

	// Sorted by transaction date descending by the store.
	transactions, err := s.repo.ListByUserInRange(ctx, ownerID, start, now)
	if err != nil {
		return nil, err
	}

	return aggregate(period, start, now, transactions), nil
}

// periodStart mirrors the periods the UI offers: the last seven days,
// the current calendar month, or the current calendar year.
func periodStart(period string, now time.Time) time.Time {
	switch period {
	case PeriodWeek:
		return time.Date(now.Year(), now.Month(), now.Day()-7, 0, 0, 0, 0, now.Location())
	case PeriodYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	default:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}
}

// aggregate folds the ledger entries into every report bucket in a
// single pass.
func aggregate(period string, start, end time.Time, transactions []*models.Transaction) *Report {
	summary := Summary{TransactionCount: len(transactions)}
	categories := make(map[string]*CategoryBucket)
	wallets := make(map[string]*WalletBucket)
	days := make(map[string]*DayBucket)

	for _, t := range transactions {
		day := t.TransactionDate.Format("2006-01-02")
		bucket, ok := days[day]
		if !ok {
			bucket = &DayBucket{Date: day}
			days[day] = bucket
		}

		if t.Type == models.TransactionTypeIncome {
			summary.Income += t.Amount
			bucket.Income += t.Amount
			continue
		}

		summary.Expenses += t.Amount
		bucket.Expenses += t.Amount

		name, icon, color := categoryOf(t)
		cat, ok := categories[name]
		if !ok {
			cat = &CategoryBucket{Name: name, Icon: icon, Color: color}
			categories[name] = cat
		}
		cat.Amount += t.Amount
		cat.Count++

		if t.Wallet != nil {
			wal, ok := wallets[t.Wallet.Name]
			if !ok {
				wal = &WalletBucket{Name: t.Wallet.Name}
				if t.Wallet.Type != nil {
					wal.Type = t.Wallet.Type.Name
					wal.Icon = t.Wallet.Type.Icon
				}
				wallets[t.Wallet.Name] = wal
			}
			wal.Amount += t.Amount
			wal.Count++
		}
	}
	summary.Savings = summary.Income - summary.Expenses

	categoryBreakdown := make([]CategoryBucket, 0, len(categories))
	for _, cat := range categories {
		if summary.Expenses > 0 {
			cat.Percentage = cat.Amount / summary.Expenses * 100
		}
		categoryBreakdown = append(categoryBreakdown, *cat)
	}
	sort.Slice(categoryBreakdown, func(i, j int) bool {
		return categoryBreakdown[i].Amount > categoryBreakdown[j].Amount
	})

	walletBreakdown := make([]WalletBucket, 0, len(wallets))
	for _, wal := range wallets {
		walletBreakdown = append(walletBreakdown, *wal)
	}
	sort.Slice(walletBreakdown, func(i, j int) bool {
		return walletBreakdown[i].Amount > walletBreakdown[j].Amount
	})

	trendData := make([]DayBucket, 0, len(days))
	for _, bucket := range days {
		trendData = append(trendData, *bucket)
	}
	sort.Slice(trendData, func(i, j int) bool {
		return trendData[i].Date < trendData[j].Date
	})

	recent := make([]RecentTransaction, 0, recentLimit)
	for _, t := range transactions {
		if len(recent) == recentLimit {
			break
		}
		name, icon, color := categoryOf(t)
		rt := RecentTransaction{
			ID:          t.ID,
			Type:        t.Type,
			Amount:      t.Amount,
			Description: t.Description,
			Date:        t.TransactionDate,
			Category:    RecentCategory{Name: name, Icon: icon, Color: color},
		}
		if t.Wallet != nil {
			rt.Wallet.Name = t.Wallet.Name
			if t.Wallet.Type != nil {
				rt.Wallet.Type = t.Wallet.Type.Name
				rt.Wallet.Icon = t.Wallet.Type.Icon
			}
		}
		recent = append(recent, rt)
	}

	return &Report{
		Period:             period,
		Summary:            summary,
		CategoryBreakdown:  categoryBreakdown,
		WalletBreakdown:    walletBreakdown,
		TrendData:          trendData,
		RecentTransactions: recent,
		DateRange:          DateRange{StartDate: start, EndDate: end},
	}
}

// categoryOf resolves the category label, falling back to the
// uncategorized bucket for entries without one.
func categoryOf(t *models.Transaction) (name, icon, color string) {
	if t.Category != nil {
		return t.Category.Name, t.Category.Icon, t.Category.Color
	}
	return models.UncategorizedName, models.UncategorizedIcon, models.UncategorizedColor
}
