package services

import (
	"context"

	"spendwise/internal/currency"
	"spendwise/internal/insight"
	"spendwise/internal/models"
)

const (
	defaultTrendMonths   = 6
	defaultCategoryLimit = 6
	recentTransactions   = 5
)

// dashboardService computes dashboard aggregates over a user's full
// transaction set. Aggregation is done in memory; the transaction volume of a
// single user is small enough that a full load per request is the simple and
// correct choice.
type dashboardService struct {
	transactions  TransactionServicer
	users         UserServicer
	defaultSymbol string
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(transactions TransactionServicer, users UserServicer, defaultSymbol string) DashboardServicer {
	return &dashboardService{
		transactions:  transactions,
		users:         users,
		defaultSymbol: defaultSymbol,
	}
}

// GetSummary returns headline totals, the five most recent transactions and
// the user's currency symbol.
func (s *dashboardService) GetSummary(ctx context.Context, userID string) (*DashboardSummary, error) {
	txs, err := s.transactions.ListAllTransactions(ctx, userID)
	if err != nil {
		return nil, err
	}

	recent := txs
	if len(recent) > recentTransactions {
		recent = recent[:recentTransactions]
	}
	if recent == nil {
		recent = []models.Transaction{}
	}

	symbol, err := s.userSymbol(userID)
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{
		Summary:            insight.Summarize(txs),
		RecentTransactions: recent,
		CurrencySymbol:     symbol,
	}, nil
}

// GetSpending returns the category breakdown and monthly trend. Non-positive
// months or categories fall back to the defaults of six each.
func (s *dashboardService) GetSpending(ctx context.Context, userID string, months, categories int) (*SpendingReport, error) {
	if months <= 0 {
		months = defaultTrendMonths
	}
	if categories <= 0 {
		categories = defaultCategoryLimit
	}

	txs, err := s.transactions.ListAllTransactions(ctx, userID)
	if err != nil {
		return nil, err
	}

	symbol, err := s.userSymbol(userID)
	if err != nil {
		return nil, err
	}

	breakdown := insight.CategoryBreakdown(txs, categories)
	if breakdown == nil {
		breakdown = []insight.CategoryTotal{}
	}
	trend := insight.MonthlyTrend(txs, months)
	if trend == nil {
		trend = []insight.MonthTotal{}
	}

	return &SpendingReport{
		CategoryBreakdown: breakdown,
		MonthlyTrend:      trend,
		CurrencySymbol:    symbol,
	}, nil
}

func (s *dashboardService) userSymbol(userID string) (string, error) {
	user, err := s.users.GetUserByID(userID)
	if err != nil {
		return "", err
	}
	return currency.Resolve(user.CountryCode, s.defaultSymbol), nil
}
