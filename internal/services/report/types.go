package report

import "time"

// Periods accepted by the reports endpoint.
const (
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// Summary holds period totals. Savings is income minus expenses.
type Summary struct {
	Income           float64 `json:"income"`
	Expenses         float64 `json:"expenses"`
	Savings          float64 `json:"savings"`
	TransactionCount int     `json:"transactionCount"`
}

// CategoryBucket is an expense aggregate per category, with its share
// of the period's total expenses.
type CategoryBucket struct {
	Name       string  `json:"name"`
	Icon       string  `json:"icon"`
	Color      string  `json:"color"`
	Amount     float64 `json:"amount"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// WalletBucket is an expense aggregate per wallet.
type WalletBucket struct {
	Name   string  `json:"name"`
	Type   string  `json:"type"`
	Icon   string  `json:"icon"`
	Amount float64 `json:"amount"`
	Count  int     `json:"count"`
}

// DayBucket is one point of the per-day trend series.
type DayBucket struct {
	Date     string  `json:"date"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

// RecentCategory and RecentWallet shape the recent-transactions list
// for the UI, with the uncategorized fallback already applied.
type RecentCategory struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

type RecentWallet struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Icon string `json:"icon"`
}

type RecentTransaction struct {
	ID          uint           `json:"id"`
	Type        string         `json:"type"`
	Amount      float64        `json:"amount"`
	Description string         `json:"description"`
	Date        time.Time      `json:"date"`
	Category    RecentCategory `json:"category"`
	Wallet      RecentWallet   `json:"wallet"`
}

type DateRange struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// Report is the full payload of GET /api/reports.
type Report struct {
	Period             string              `json:"period"`
	Summary            Summary             `json:"summary"`
	CategoryBreakdown  []CategoryBucket    `json:"categoryBreakdown"`
	WalletBreakdown    []WalletBucket      `json:"walletBreakdown"`
	TrendData          []DayBucket         `json:"trendData"`
	RecentTransactions []RecentTransaction `json:"recentTransactions"`
	DateRange          DateRange           `json:"dateRange"`
}
