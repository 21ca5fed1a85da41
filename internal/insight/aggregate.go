// Package insight computes dashboard aggregates from a user's transaction
// list and generates AI-backed summaries of them.
//
// The aggregation functions are pure: no I/O, no mutation of inputs, and no
// error paths. Input validation belongs to the transaction-creation boundary;
// malformed records degrade gracefully here (a missing category name simply
// groups under the empty string).
package insight

import (
	"sort"
	"time"

	"spendwise/internal/models"
)

// Summary holds the headline totals for a transaction list.
type Summary struct {
	TotalIncome   float64 `json:"total_income"`
	TotalExpenses float64 `json:"total_expenses"`
	Balance       float64 `json:"balance"`
}

// CategoryTotal is one entry of a category breakdown.
type CategoryTotal struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// MonthTotal is one bucket of a monthly spending trend.
type MonthTotal struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`

	year  int
	month time.Month
}

// Summarize partitions transactions by type and sums each side.
// An empty list yields zero totals.
func Summarize(txs []models.Transaction) Summary {
	var s Summary
	for _, t := range txs {
		switch t.Type {
		case models.TransactionTypeIncome:
			s.TotalIncome += t.Amount
		case models.TransactionTypeExpense:
			s.TotalExpenses += t.Amount
		}
	}
	s.Balance = s.TotalIncome - s.TotalExpenses
	return s
}

// CategoryBreakdown sums expense amounts per category display name, sorted
// descending by amount and truncated to limit entries. Ties keep the order
// in which the categories first appear in the input. Truncation is lossy:
// trailing categories are dropped, not rolled into an "other" bucket.
//
// Grouping is by display name, not category ID, so two categories sharing a
// name would merge. The fixed catalog keeps names unique per type today.
func CategoryBreakdown(txs []models.Transaction, limit int) []CategoryTotal {
	index := make(map[string]int)
	var totals []CategoryTotal
	for _, t := range txs {
		if t.Type != models.TransactionTypeExpense {
			continue
		}
		i, ok := index[t.CategoryName]
		if !ok {
			i = len(totals)
			index[t.CategoryName] = i
			totals = append(totals, CategoryTotal{Name: t.CategoryName})
		}
		totals[i].Amount += t.Amount
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Amount > totals[j].Amount
	})

	if limit >= 0 && len(totals) > limit {
		totals = totals[:limit]
	}
	return totals
}

// MonthlyTrend sums expense amounts per calendar month, sorted
// chronologically ascending and truncated to the most recent months buckets.
// Sorting uses the year and month values, never the label string. Months
// without expense transactions produce no bucket; gaps are real gaps.
func MonthlyTrend(txs []models.Transaction, months int) []MonthTotal {
	type key struct {
		year  int
		month time.Month
	}

	index := make(map[key]int)
	var buckets []MonthTotal
	for _, t := range txs {
		if t.Type != models.TransactionTypeExpense {
			continue
		}
		k := key{year: t.Date.Year(), month: t.Date.Month()}
		i, ok := index[k]
		if !ok {
			i = len(buckets)
			index[k] = i
			buckets = append(buckets, MonthTotal{
				Label: t.Date.Format("Jan 2006"),
				year:  k.year,
				month: k.month,
			})
		}
		buckets[i].Amount += t.Amount
	}

	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].year != buckets[j].year {
			return buckets[i].year < buckets[j].year
		}
		return buckets[i].month < buckets[j].month
	})

	if months >= 0 && len(buckets) > months {
		buckets = buckets[len(buckets)-months:]
	}
	return buckets
}
