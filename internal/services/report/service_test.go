package report

import (
	"context"
	"testing"
	"time"

	"vimo/internal/models"
	"vimo/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLedgerRepo serves a fixed slice through ListByUserInRange and
// records the range it was asked for.
type stubLedgerRepo struct {
	transactions []*models.Transaction
	gotStart     time.Time
	gotEnd       time.Time
}

func (s *stubLedgerRepo) ListByUserInRange(_ context.Context, _ uint, start, end time.Time) ([]*models.Transaction, error) {
	s.gotStart, s.gotEnd = start, end
	return s.transactions, nil
}

func (s *stubLedgerRepo) ExecuteInTransaction(func(repositories.LedgerRepository) error) error {
	return nil
}
func (s *stubLedgerRepo) GetOwnedActiveWallet(uint, uint) (*models.Wallet, error) { return nil, nil }
func (s *stubLedgerRepo) CreditWallet(uint, float64) error                        { return nil }
func (s *stubLedgerRepo) DebitWallet(uint, float64) error                         { return nil }
func (s *stubLedgerRepo) CreateTransaction(*models.Transaction) error             { return nil }
func (s *stubLedgerRepo) CreateTransfer(*models.Transfer) error                   { return nil }
func (s *stubLedgerRepo) ListByUser(context.Context, uint, int, int) ([]*models.Transaction, error) {
	return nil, nil
}
func (s *stubLedgerRepo) RecentByUser(context.Context, uint, int) ([]*models.Transaction, error) {
	return nil, nil
}
func (s *stubLedgerRepo) CountByUser(uint) (int64, error) { return 0, nil }

var testNow = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func entry(typ string, amount float64, date time.Time, category *models.Category, wallet *models.Wallet) *models.Transaction {
	return &models.Transaction{
		Type:            typ,
		Amount:          amount,
		TransactionDate: date,
		Category:        category,
		Wallet:          wallet,
	}
}

func TestGeneratePeriodBoundaries(t *testing.T) {
	tests := []struct {
		name       string
		period     string
		wantPeriod string
		wantStart  time.Time
	}{
		{"week", PeriodWeek, PeriodWeek, time.Date(2025, time.March, 8, 0, 0, 0, 0, time.UTC)},
		{"month", PeriodMonth, PeriodMonth, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)},
		{"year", PeriodYear, PeriodYear, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{"unknown falls back to month", "quarter", PeriodMonth, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubLedgerRepo{}
			svc := NewService(repo, fixedClock)

			report, err := svc.Generate(context.Background(), 1, tt.period)
			require.NoError(t, err)

			assert.Equal(t, tt.wantPeriod, report.Period)
			assert.Equal(t, tt.wantStart, repo.gotStart)
			assert.Equal(t, testNow, repo.gotEnd)
			assert.Equal(t, tt.wantStart, report.DateRange.StartDate)
			assert.Equal(t, testNow, report.DateRange.EndDate)
		})
	}
}

func TestGenerateEmptyRange(t *testing.T) {
	svc := NewService(&stubLedgerRepo{}, fixedClock)

	report, err := svc.Generate(context.Background(), 1, PeriodMonth)
	require.NoError(t, err)

	assert.Zero(t, report.Summary.Income)
	assert.Zero(t, report.Summary.Expenses)
	assert.Zero(t, report.Summary.Savings)
	assert.Zero(t, report.Summary.TransactionCount)
	assert.Empty(t, report.CategoryBreakdown)
	assert.Empty(t, report.WalletBreakdown)
	assert.Empty(t, report.TrendData)
	assert.Empty(t, report.RecentTransactions)
}

func TestGenerateAggregation(t *testing.T) {
	food := &models.Category{Name: "Ăn uống", Icon: "🍔", Color: "orange"}
	transport := &models.Category{Name: "Đi lại", Icon: "🚗", Color: "blue"}
	cash := &models.Wallet{Name: "Ví chính", Type: &models.WalletType{Name: "Tiền mặt", Icon: "💵"}}
	card := &models.Wallet{Name: "Thẻ tín dụng", Type: &models.WalletType{Name: "Thẻ tín dụng", Icon: "💳"}}

	day1 := time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, time.March, 10, 18, 30, 0, 0, time.UTC)

	repo := &stubLedgerRepo{transactions: []*models.Transaction{
		entry(models.TransactionTypeExpense, 300000, day2, food, cash),
		entry(models.TransactionTypeExpense, 100000, day2, transport, card),
		entry(models.TransactionTypeIncome, 1000000, day1, nil, cash),
		entry(models.TransactionTypeExpense, 100000, day1, food, cash),
	}}
	svc := NewService(repo, fixedClock)

	report, err := svc.Generate(context.Background(), 1, PeriodMonth)
	require.NoError(t, err)

	assert.Equal(t, float64(1000000), report.Summary.Income)
	assert.Equal(t, float64(500000), report.Summary.Expenses)
	assert.Equal(t, float64(500000), report.Summary.Savings)
	assert.Equal(t, 4, report.Summary.TransactionCount)

	require.Len(t, report.CategoryBreakdown, 2)
	assert.Equal(t, "Ăn uống", report.CategoryBreakdown[0].Name)
	assert.Equal(t, float64(400000), report.CategoryBreakdown[0].Amount)
	assert.Equal(t, 2, report.CategoryBreakdown[0].Count)
	assert.InDelta(t, 80.0, report.CategoryBreakdown[0].Percentage, 1e-9)
	assert.Equal(t, "Đi lại", report.CategoryBreakdown[1].Name)
	assert.InDelta(t, 20.0, report.CategoryBreakdown[1].Percentage, 1e-9)

	require.Len(t, report.WalletBreakdown, 2)
	assert.Equal(t, "Ví chính", report.WalletBreakdown[0].Name)
	assert.Equal(t, float64(400000), report.WalletBreakdown[0].Amount)
	assert.Equal(t, "Tiền mặt", report.WalletBreakdown[0].Type)
	assert.Equal(t, "Thẻ tín dụng", report.WalletBreakdown[1].Name)

	require.Len(t, report.TrendData, 2)
	assert.Equal(t, "2025-03-03", report.TrendData[0].Date)
	assert.Equal(t, float64(1000000), report.TrendData[0].Income)
	assert.Equal(t, float64(100000), report.TrendData[0].Expenses)
	assert.Equal(t, "2025-03-10", report.TrendData[1].Date)
	assert.Equal(t, float64(400000), report.TrendData[1].Expenses)
}

func TestGenerateZeroExpensePercentages(t *testing.T) {
	cash := &models.Wallet{Name: "Ví chính"}
	repo := &stubLedgerRepo{transactions: []*models.Transaction{
		entry(models.TransactionTypeIncome, 500000, testNow, nil, cash),
	}}
	svc := NewService(repo, fixedClock)

	report, err := svc.Generate(context.Background(), 1, PeriodMonth)
	require.NoError(t, err)

	assert.Equal(t, float64(500000), report.Summary.Income)
	assert.Empty(t, report.CategoryBreakdown, "income entries do not create category buckets")
}

func TestGenerateUncategorizedFallback(t *testing.T) {
	cash := &models.Wallet{Name: "Ví chính"}
	repo := &stubLedgerRepo{transactions: []*models.Transaction{
		entry(models.TransactionTypeExpense, 50000, testNow, nil, cash),
	}}
	svc := NewService(repo, fixedClock)

	report, err := svc.Generate(context.Background(), 1, PeriodMonth)
	require.NoError(t, err)

	require.Len(t, report.CategoryBreakdown, 1)
	assert.Equal(t, models.UncategorizedName, report.CategoryBreakdown[0].Name)
	assert.Equal(t, models.UncategorizedIcon, report.CategoryBreakdown[0].Icon)
	assert.Equal(t, models.UncategorizedColor, report.CategoryBreakdown[0].Color)
	assert.InDelta(t, 100.0, report.CategoryBreakdown[0].Percentage, 1e-9)

	require.Len(t, report.RecentTransactions, 1)
	assert.Equal(t, models.UncategorizedName, report.RecentTransactions[0].Category.Name)
}

func TestGenerateRecentIsCapped(t *testing.T) {
	cash := &models.Wallet{Name: "Ví chính"}
	var transactions []*models.Transaction
	for i := 0; i < recentLimit+5; i++ {
		transactions = append(transactions, entry(models.TransactionTypeExpense, 1000, testNow.Add(-time.Duration(i)*time.Hour), nil, cash))
	}
	svc := NewService(&stubLedgerRepo{transactions: transactions}, fixedClock)

	report, err := svc.Generate(context.Background(), 1, PeriodMonth)
	require.NoError(t, err)

	assert.Len(t, report.RecentTransactions, recentLimit)
	assert.Equal(t, recentLimit+5, report.Summary.TransactionCount)
}
