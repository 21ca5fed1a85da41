package services

import (
	"context"

	"spendwise/internal/currency"
	apperrors "spendwise/internal/errors"
	"spendwise/internal/insight"
)

// topInsightCategories bounds the category detail sent to the model.
const topInsightCategories = 3

// insightGenerator is the subset of insight.Generator this service needs.
// Tests substitute a stub so no model call happens.
type insightGenerator interface {
	Generate(ctx context.Context, summary insight.FinancialSummary) (*insight.Insights, error)
}

// insightService builds a financial summary from the user's transactions and
// asks the generator for insights. Every call is a fresh generation; nothing
// is cached or retried.
type insightService struct {
	transactions  TransactionServicer
	users         UserServicer
	generator     insightGenerator
	defaultSymbol string
}

// NewInsightService creates a new InsightServicer.
func NewInsightService(transactions TransactionServicer, users UserServicer, generator insightGenerator, defaultSymbol string) InsightServicer {
	return &insightService{
		transactions:  transactions,
		users:         users,
		generator:     generator,
		defaultSymbol: defaultSymbol,
	}
}

// GenerateInsights summarizes the user's full transaction history and asks
// the model for tips. A user with no transactions gets an input error; model
// failures surface as a transient unavailable error the client may retry.
func (s *insightService) GenerateInsights(ctx context.Context, userID string) (*insight.Insights, error) {
	if s.generator == nil {
		return nil, apperrors.ErrInsightUnavailable
	}

	txs, err := s.transactions.ListAllTransactions(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(txs) == 0 {
		return nil, apperrors.ErrNoTransactionData
	}

	user, err := s.users.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	totals := insight.Summarize(txs)
	summary := insight.FinancialSummary{
		TotalIncome:    totals.TotalIncome,
		TotalExpenses:  totals.TotalExpenses,
		TopCategories:  insight.CategoryBreakdown(txs, topInsightCategories),
		CurrencySymbol: currency.Resolve(user.CountryCode, s.defaultSymbol),
	}

	out, err := s.generator.Generate(ctx, summary)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInsightUnavailable, err)
	}
	return out, nil
}
