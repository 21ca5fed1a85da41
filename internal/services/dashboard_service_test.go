package services

import (
	"context"
	"testing"
	"time"

	"spendwise/internal/feed"
	"spendwise/internal/models"
	"spendwise/internal/testutil"
)

func TestGetSummary(t *testing.T) {
	t.Run("totals_and_recent", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		txSvc := NewTransactionService(db, feed.NewHub())
		svc := NewDashboardService(txSvc, NewUserService(db), "$")
		user := testutil.CreateTestUser(t, db)

		base := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
		testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeIncome, 500, "salary", base)
		for i := 0; i < 6; i++ {
			testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeExpense, 10, "food", base.AddDate(0, 0, i+1))
		}

		summary, err := svc.GetSummary(context.Background(), user.ID)
		testutil.AssertNoError(t, err)

		if summary.Summary.TotalIncome != 500 || summary.Summary.TotalExpenses != 60 {
			t.Errorf("unexpected totals: %+v", summary.Summary)
		}
		if summary.Summary.Balance != 440 {
			t.Errorf("expected balance 440, got %v", summary.Summary.Balance)
		}
		if len(summary.RecentTransactions) != 5 {
			t.Fatalf("expected 5 recent transactions, got %d", len(summary.RecentTransactions))
		}
		for i := 1; i < len(summary.RecentTransactions); i++ {
			if summary.RecentTransactions[i].Date.After(summary.RecentTransactions[i-1].Date) {
				t.Error("expected recent transactions ordered newest first")
			}
		}
	})

	t.Run("empty_history", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		txSvc := NewTransactionService(db, feed.NewHub())
		svc := NewDashboardService(txSvc, NewUserService(db), "$")
		user := testutil.CreateTestUser(t, db)

		summary, err := svc.GetSummary(context.Background(), user.ID)
		testutil.AssertNoError(t, err)

		if summary.Summary.TotalIncome != 0 || summary.Summary.Balance != 0 {
			t.Errorf("expected zero totals, got %+v", summary.Summary)
		}
		if summary.RecentTransactions == nil || len(summary.RecentTransactions) != 0 {
			t.Errorf("expected empty slice, got %v", summary.RecentTransactions)
		}
	})

	t.Run("symbol_from_country", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		userSvc := NewUserService(db)
		svc := NewDashboardService(NewTransactionService(db, feed.NewHub()), userSvc, "$")
		user := testutil.CreateTestUser(t, db)

		_, err := userSvc.UpdateProfile(user.ID, user.Name, "", "IN")
		testutil.AssertNoError(t, err)

		summary, err := svc.GetSummary(context.Background(), user.ID)
		testutil.AssertNoError(t, err)
		if summary.CurrencySymbol != "₹" {
			t.Errorf("expected ₹, got %q", summary.CurrencySymbol)
		}
	})

	t.Run("symbol_falls_back_to_default", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDashboardService(NewTransactionService(db, feed.NewHub()), NewUserService(db), "€")
		user := testutil.CreateTestUser(t, db)

		summary, err := svc.GetSummary(context.Background(), user.ID)
		testutil.AssertNoError(t, err)
		if summary.CurrencySymbol != "€" {
			t.Errorf("expected default symbol, got %q", summary.CurrencySymbol)
		}
	})
}

func TestGetSpending(t *testing.T) {
	t.Run("breakdown_and_trend", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDashboardService(NewTransactionService(db, feed.NewHub()), NewUserService(db), "$")
		user := testutil.CreateTestUser(t, db)

		jan := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
		feb := time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC)
		testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeExpense, 100, "food", jan)
		testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeExpense, 40, "transport", feb)

		report, err := svc.GetSpending(context.Background(), user.ID, 6, 6)
		testutil.AssertNoError(t, err)

		if len(report.CategoryBreakdown) != 2 || report.CategoryBreakdown[0].Name != "Food" {
			t.Errorf("unexpected breakdown: %+v", report.CategoryBreakdown)
		}
		if len(report.MonthlyTrend) != 2 {
			t.Fatalf("expected 2 trend buckets, got %d", len(report.MonthlyTrend))
		}
		if report.MonthlyTrend[0].Label != "Jan 2024" || report.MonthlyTrend[1].Label != "Feb 2024" {
			t.Errorf("expected chronological labels, got %+v", report.MonthlyTrend)
		}
	})

	t.Run("caller_limits_respected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDashboardService(NewTransactionService(db, feed.NewHub()), NewUserService(db), "$")
		user := testutil.CreateTestUser(t, db)

		now := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
		testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeExpense, 100, "food", now)
		testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeExpense, 40, "transport", now)
		testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeExpense, 20, "entertainment", now)

		report, err := svc.GetSpending(context.Background(), user.ID, 6, 1)
		testutil.AssertNoError(t, err)
		if len(report.CategoryBreakdown) != 1 || report.CategoryBreakdown[0].Name != "Food" {
			t.Errorf("expected top category only, got %+v", report.CategoryBreakdown)
		}
	})

	t.Run("non_positive_params_use_defaults", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDashboardService(NewTransactionService(db, feed.NewHub()), NewUserService(db), "$")
		user := testutil.CreateTestUser(t, db)

		// Eight monthly buckets; the default window keeps the latest six.
		for i := 0; i < 8; i++ {
			date := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC).AddDate(0, i, 0)
			testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeExpense, 10, "food", date)
		}

		report, err := svc.GetSpending(context.Background(), user.ID, 0, -3)
		testutil.AssertNoError(t, err)
		if len(report.MonthlyTrend) != 6 {
			t.Errorf("expected default 6 month window, got %d", len(report.MonthlyTrend))
		}
		if report.MonthlyTrend[0].Label != "Mar 2024" {
			t.Errorf("expected window to start at Mar 2024, got %s", report.MonthlyTrend[0].Label)
		}
	})

	t.Run("empty_history_returns_empty_slices", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDashboardService(NewTransactionService(db, feed.NewHub()), NewUserService(db), "$")
		user := testutil.CreateTestUser(t, db)

		report, err := svc.GetSpending(context.Background(), user.ID, 0, 0)
		testutil.AssertNoError(t, err)
		if report.CategoryBreakdown == nil || report.MonthlyTrend == nil {
			t.Error("expected empty slices, not nil")
		}
	})
}
