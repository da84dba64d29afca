// Package report aggregates the ledger into dashboard figures. It is
// straight summation over stored rows; nothing here mutates stock or cost.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sellerledger/backend/internal/domain/ledger"
	"github.com/shopspring/decimal"
)

const (
	dailyWindowDays   = 30
	monthlyWindowSize = 12
	recentLimit       = 5
)

// Period selects the chart granularity
type Period string

const (
	// PeriodDaily is a 30 day daily profit series
	PeriodDaily Period = "daily"
	// PeriodMonthly is a 12 month monthly profit series
	PeriodMonthly Period = "monthly"
)

// ChartPoint is one bucket of the profit series
type ChartPoint struct {
	Date   string          `json:"date"`
	Profit decimal.Decimal `json:"profit"`
}

// RecentEntry is a compact view of a recently recorded transaction
type RecentEntry struct {
	ID              uuid.UUID              `json:"id"`
	TransactionType ledger.TransactionType `json:"transaction_type"`
	OrderNumber     string                 `json:"order_number"`
	SalePrice       decimal.Decimal        `json:"sale_price"`
	TransactionDate time.Time              `json:"transaction_date"`
}

// DashboardStats is the aggregate the dashboard renders
type DashboardStats struct {
	TotalSales         decimal.Decimal `json:"total_sales"`
	GrossProfit        decimal.Decimal `json:"gross_profit"`
	TotalExpenses      decimal.Decimal `json:"total_expenses"`
	NetProfit          decimal.Decimal `json:"net_profit"`
	ChartData          []ChartPoint    `json:"chart_data"`
	RecentTransactions []RecentEntry   `json:"recent_transactions"`
}

// DashboardService computes dashboard aggregates over the ledger.
// Gross profit charges each sale its full frozen cost side, unit cost
// times quantity plus commission and shipping.
type DashboardService struct {
	transactionRepo ledger.TransactionRepository
	expenseRepo     ledger.ExpenseRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(transactionRepo ledger.TransactionRepository, expenseRepo ledger.ExpenseRepository) *DashboardService {
	return &DashboardService{
		transactionRepo: transactionRepo,
		expenseRepo:     expenseRepo,
	}
}

// Stats returns the all-time totals, the profit series for the requested
// period and the most recent transactions.
func (s *DashboardService) Stats(ctx context.Context, period Period) (*DashboardStats, error) {
	sales, err := s.transactionRepo.FindByType(ctx, ledger.TransactionTypeSale)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}

	stats := &DashboardStats{
		TotalSales:    decimal.Zero,
		GrossProfit:   decimal.Zero,
		TotalExpenses: decimal.Zero,
	}
	for i := range sales {
		stats.TotalSales = stats.TotalSales.Add(sales[i].SalePrice)
		stats.GrossProfit = stats.GrossProfit.Add(sales[i].NetProfit())
	}

	stats.TotalExpenses, err = s.expenseRepo.SumAmount(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}
	stats.NetProfit = stats.GrossProfit.Sub(stats.TotalExpenses)

	if period == PeriodMonthly {
		stats.ChartData = monthlyChart(sales, time.Now())
	} else {
		stats.ChartData = dailyChart(sales, time.Now())
	}

	recent, err := s.transactionRepo.FindRecent(ctx, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent transactions: %w", err)
	}
	stats.RecentTransactions = make([]RecentEntry, 0, len(recent))
	for i := range recent {
		stats.RecentTransactions = append(stats.RecentTransactions, RecentEntry{
			ID:              recent[i].ID,
			TransactionType: recent[i].TransactionType,
			OrderNumber:     recent[i].OrderNumber,
			SalePrice:       recent[i].SalePrice,
			TransactionDate: recent[i].TransactionDate,
		})
	}

	return stats, nil
}

// dailyChart buckets sale profit by calendar day over the trailing window,
// oldest bucket first, empty days included at zero.
func dailyChart(sales []ledger.Transaction, now time.Time) []ChartPoint {
	profits := make(map[string]decimal.Decimal, dailyWindowDays)
	for i := range sales {
		key := sales[i].TransactionDate.Format("2006-01-02")
		profits[key] = profits[key].Add(sales[i].NetProfit())
	}

	points := make([]ChartPoint, 0, dailyWindowDays)
	for i := dailyWindowDays - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		points = append(points, ChartPoint{
			Date:   day.Format("02/01"),
			Profit: profits[day.Format("2006-01-02")].Round(2),
		})
	}
	return points
}

// monthlyChart buckets sale profit by calendar month over the trailing
// twelve months, oldest bucket first.
func monthlyChart(sales []ledger.Transaction, now time.Time) []ChartPoint {
	profits := make(map[string]decimal.Decimal, monthlyWindowSize)
	for i := range sales {
		key := sales[i].TransactionDate.Format("2006-01")
		profits[key] = profits[key].Add(sales[i].NetProfit())
	}

	points := make([]ChartPoint, 0, monthlyWindowSize)
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for i := monthlyWindowSize - 1; i >= 0; i-- {
		month := first.AddDate(0, -i, 0)
		points = append(points, ChartPoint{
			Date:   fmt.Sprintf("%d/%d", int(month.Month()), month.Year()),
			Profit: profits[month.Format("2006-01")].Round(2),
		})
	}
	return points
}
