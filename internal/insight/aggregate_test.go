package insight

import (
	"testing"
	"time"

	"spendwise/internal/models"
)

func tx(txType models.TransactionType, amount float64, categoryName string, date time.Time) models.Transaction {
	return models.Transaction{
		Type:         txType,
		Amount:       amount,
		CategoryName: categoryName,
		Date:         date,
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

func TestSummarize(t *testing.T) {
	t.Run("empty_list", func(t *testing.T) {
		s := Summarize(nil)
		if s.TotalIncome != 0 || s.TotalExpenses != 0 || s.Balance != 0 {
			t.Errorf("expected zero summary, got %+v", s)
		}
	})

	t.Run("partitions_by_type", func(t *testing.T) {
		txs := []models.Transaction{
			tx(models.TransactionTypeExpense, 100, "Food", date(2024, time.January, 15)),
			tx(models.TransactionTypeExpense, 50, "Food", date(2024, time.February, 10)),
			tx(models.TransactionTypeIncome, 500, "Salary", date(2024, time.January, 1)),
		}

		s := Summarize(txs)
		if s.TotalIncome != 500 {
			t.Errorf("expected income 500, got %v", s.TotalIncome)
		}
		if s.TotalExpenses != 150 {
			t.Errorf("expected expenses 150, got %v", s.TotalExpenses)
		}
		if s.Balance != 350 {
			t.Errorf("expected balance 350, got %v", s.Balance)
		}
	})

	t.Run("expenses_only_negative_balance", func(t *testing.T) {
		txs := []models.Transaction{
			tx(models.TransactionTypeExpense, 75, "Transport", date(2024, time.March, 3)),
		}

		s := Summarize(txs)
		if s.Balance != -75 {
			t.Errorf("expected balance -75, got %v", s.Balance)
		}
	})
}

func TestCategoryBreakdown(t *testing.T) {
	t.Run("sums_per_category_name", func(t *testing.T) {
		txs := []models.Transaction{
			tx(models.TransactionTypeExpense, 100, "Food", date(2024, time.January, 15)),
			tx(models.TransactionTypeExpense, 50, "Food", date(2024, time.February, 10)),
			tx(models.TransactionTypeIncome, 500, "Salary", date(2024, time.January, 1)),
		}

		got := CategoryBreakdown(txs, 6)
		if len(got) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(got))
		}
		if got[0].Name != "Food" || got[0].Amount != 150 {
			t.Errorf("expected {Food 150}, got %+v", got[0])
		}
	})

	t.Run("ignores_income", func(t *testing.T) {
		txs := []models.Transaction{
			tx(models.TransactionTypeIncome, 500, "Salary", date(2024, time.January, 1)),
		}

		if got := CategoryBreakdown(txs, 6); len(got) != 0 {
			t.Errorf("expected empty breakdown, got %+v", got)
		}
	})

	t.Run("sorted_descending", func(t *testing.T) {
		txs := []models.Transaction{
			tx(models.TransactionTypeExpense, 10, "Transport", date(2024, time.January, 2)),
			tx(models.TransactionTypeExpense, 200, "Housing", date(2024, time.January, 3)),
			tx(models.TransactionTypeExpense, 80, "Food", date(2024, time.January, 4)),
		}

		got := CategoryBreakdown(txs, 6)
		want := []string{"Housing", "Food", "Transport"}
		for i, name := range want {
			if got[i].Name != name {
				t.Errorf("position %d: expected %s, got %s", i, name, got[i].Name)
			}
		}
	})

	t.Run("tie_keeps_first_encounter_order", func(t *testing.T) {
		txs := []models.Transaction{
			tx(models.TransactionTypeExpense, 30, "Food", date(2024, time.January, 1)),
			tx(models.TransactionTypeExpense, 30, "Transport", date(2024, time.January, 2)),
		}

		got := CategoryBreakdown(txs, 1)
		if len(got) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(got))
		}
		if got[0].Name != "Food" {
			t.Errorf("expected Food to win the tie, got %s", got[0].Name)
		}
	})

	t.Run("truncation_is_lossy", func(t *testing.T) {
		txs := []models.Transaction{
			tx(models.TransactionTypeExpense, 300, "Housing", date(2024, time.January, 1)),
			tx(models.TransactionTypeExpense, 200, "Food", date(2024, time.January, 2)),
			tx(models.TransactionTypeExpense, 100, "Transport", date(2024, time.January, 3)),
		}

		got := CategoryBreakdown(txs, 2)
		if len(got) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(got))
		}
		var total float64
		for _, c := range got {
			if c.Name == "Transport" {
				t.Error("Transport should have been dropped, not rolled up")
			}
			total += c.Amount
		}
		if total != 500 {
			t.Errorf("expected kept total 500, got %v", total)
		}
	})

	t.Run("does_not_mutate_input", func(t *testing.T) {
		txs := []models.Transaction{
			tx(models.TransactionTypeExpense, 10, "Food", date(2024, time.January, 1)),
			tx(models.TransactionTypeExpense, 20, "Transport", date(2024, time.January, 2)),
		}

		_ = CategoryBreakdown(txs, 1)
		if txs[0].CategoryName != "Food" || txs[1].CategoryName != "Transport" {
			t.Error("input slice was mutated")
		}
	})
}

func TestMonthlyTrend(t *testing.T) {
	t.Run("buckets_by_calendar_month", func(t *testing.T) {
		txs := []models.Transaction{
			tx(models.TransactionTypeExpense, 100, "Food", date(2024, time.January, 15)),
			tx(models.TransactionTypeExpense, 50, "Food", date(2024, time.February, 10)),
			tx(models.TransactionTypeIncome, 500, "Salary", date(2024, time.January, 1)),
		}

		got := MonthlyTrend(txs, 6)
		if len(got) != 2 {
			t.Fatalf("expected 2 buckets, got %d", len(got))
		}
		if got[0].Label != "Jan 2024" || got[0].Amount != 100 {
			t.Errorf("expected {Jan 2024 100}, got %+v", got[0])
		}
		if got[1].Label != "Feb 2024" || got[1].Amount != 50 {
			t.Errorf("expected {Feb 2024 50}, got %+v", got[1])
		}
	})

	t.Run("sorts_by_year_then_month_not_label", func(t *testing.T) {
		// Alphabetically "Apr 2024" < "Dec 2023"; chronologically the reverse.
		txs := []models.Transaction{
			tx(models.TransactionTypeExpense, 10, "Food", date(2024, time.April, 1)),
			tx(models.TransactionTypeExpense, 20, "Food", date(2023, time.December, 1)),
		}

		got := MonthlyTrend(txs, 6)
		if got[0].Label != "Dec 2023" || got[1].Label != "Apr 2024" {
			t.Errorf("expected chronological order, got %q then %q", got[0].Label, got[1].Label)
		}
	})

	t.Run("keeps_most_recent_months", func(t *testing.T) {
		txs := []models.Transaction{
			tx(models.TransactionTypeExpense, 1, "Food", date(2024, time.January, 1)),
			tx(models.TransactionTypeExpense, 2, "Food", date(2024, time.February, 1)),
			tx(models.TransactionTypeExpense, 3, "Food", date(2024, time.March, 1)),
		}

		got := MonthlyTrend(txs, 2)
		if len(got) != 2 {
			t.Fatalf("expected 2 buckets, got %d", len(got))
		}
		if got[0].Label != "Feb 2024" || got[1].Label != "Mar 2024" {
			t.Errorf("expected the two most recent months, got %+v", got)
		}
	})

	t.Run("no_zero_fill_for_gap_months", func(t *testing.T) {
		txs := []models.Transaction{
			tx(models.TransactionTypeExpense, 10, "Food", date(2024, time.January, 1)),
			tx(models.TransactionTypeExpense, 30, "Food", date(2024, time.March, 1)),
		}

		got := MonthlyTrend(txs, 6)
		if len(got) != 2 {
			t.Fatalf("expected 2 buckets with a gap, got %d", len(got))
		}
		for _, b := range got {
			if b.Label == "Feb 2024" {
				t.Error("gap month should not produce a bucket")
			}
		}
	})

	t.Run("same_month_different_year_not_merged", func(t *testing.T) {
		txs := []models.Transaction{
			tx(models.TransactionTypeExpense, 10, "Food", date(2023, time.June, 1)),
			tx(models.TransactionTypeExpense, 20, "Food", date(2024, time.June, 1)),
		}

		got := MonthlyTrend(txs, 6)
		if len(got) != 2 {
			t.Fatalf("expected separate buckets per year, got %+v", got)
		}
	})
}
