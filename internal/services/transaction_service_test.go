package services

import (
	"context"
	"testing"
	"time"

	"spendwise/internal/feed"
	"spendwise/internal/models"
	"spendwise/internal/pagination"
	"spendwise/internal/testutil"
)

func validInput() TransactionInput {
	return TransactionInput{
		Type:       models.TransactionTypeExpense,
		Amount:     42.50,
		CategoryID: "food",
		Date:       time.Now(),
		Notes:      "Groceries",
	}
}

func TestCreateTransaction(t *testing.T) {
	t.Run("denormalizes_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db, feed.NewHub())
		user := testutil.CreateTestUser(t, db)

		tx, err := svc.CreateTransaction(user.ID, validInput())
		testutil.AssertNoError(t, err)

		if tx.ID == "" {
			t.Fatal("expected generated transaction ID")
		}
		if tx.CategoryName != "Food" || tx.CategoryIcon != "Utensils" {
			t.Errorf("expected denormalized category, got %+v", tx)
		}
	})

	t.Run("zero_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db, feed.NewHub())
		user := testutil.CreateTestUser(t, db)

		in := validInput()
		in.Amount = 0
		_, err := svc.CreateTransaction(user.ID, in)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("negative_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db, feed.NewHub())
		user := testutil.CreateTestUser(t, db)

		in := validInput()
		in.Amount = -10
		_, err := svc.CreateTransaction(user.ID, in)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("invalid_type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db, feed.NewHub())
		user := testutil.CreateTestUser(t, db)

		in := validInput()
		in.Type = "transfer"
		_, err := svc.CreateTransaction(user.ID, in)
		testutil.AssertAppError(t, err, "INVALID_TRANSACTION_TYPE")
	})

	t.Run("category_must_match_type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db, feed.NewHub())
		user := testutil.CreateTestUser(t, db)

		// "salary" is an income category, not an expense one.
		in := validInput()
		in.CategoryID = "salary"
		_, err := svc.CreateTransaction(user.ID, in)
		testutil.AssertAppError(t, err, "INVALID_CATEGORY")
	})

	t.Run("notifies_feed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		hub := feed.NewHub()
		svc := NewTransactionService(db, hub)
		user := testutil.CreateTestUser(t, db)

		loaded := make(chan int, 4)
		binding := feed.NewBinding(context.Background(), hub,
			feed.Scope{UserID: user.ID, Collection: feed.CollectionTransactions},
			func(ctx context.Context) ([]models.Transaction, error) {
				txs, err := svc.ListAllTransactions(ctx, user.ID)
				loaded <- len(txs)
				return txs, err
			}, feed.Options{})
		defer binding.Close()

		if n := <-loaded; n != 0 {
			t.Fatalf("expected empty initial load, got %d", n)
		}

		_, err := svc.CreateTransaction(user.ID, validInput())
		testutil.AssertNoError(t, err)

		select {
		case n := <-loaded:
			if n != 1 {
				t.Errorf("expected reload to see 1 transaction, got %d", n)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("expected mutation to trigger a reload")
		}
	})
}

func TestGetUserTransactions(t *testing.T) {
	t.Run("ordered_date_descending", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db, feed.NewHub())
		user := testutil.CreateTestUser(t, db)

		old := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
		recent := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
		testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeExpense, 10, "food", old)
		testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeExpense, 20, "food", recent)

		result, err := svc.GetUserTransactions(user.ID, pagination.PageRequest{}, TransactionFilter{})
		testutil.AssertNoError(t, err)

		if result.TotalItems != 2 {
			t.Fatalf("expected 2 transactions, got %d", result.TotalItems)
		}
		if !result.Data[0].Date.After(result.Data[1].Date) {
			t.Error("expected newest transaction first")
		}
	})

	t.Run("filters_by_type_and_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db, feed.NewHub())
		user := testutil.CreateTestUser(t, db)

		now := time.Now()
		testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeIncome, 500, "salary", now)
		testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeExpense, 30, "food", now)
		testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeExpense, 15, "transport", now)

		expense := models.TransactionTypeExpense
		food := "food"
		result, err := svc.GetUserTransactions(user.ID, pagination.PageRequest{}, TransactionFilter{Type: &expense, CategoryID: &food})
		testutil.AssertNoError(t, err)

		if result.TotalItems != 1 {
			t.Fatalf("expected 1 filtered transaction, got %d", result.TotalItems)
		}
		if result.Data[0].CategoryID != "food" {
			t.Errorf("unexpected category: %s", result.Data[0].CategoryID)
		}
	})

	t.Run("scoped_to_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db, feed.NewHub())
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)

		testutil.CreateTestTransaction(t, db, user1.ID, models.TransactionTypeExpense, 10, "food", time.Now())

		result, err := svc.GetUserTransactions(user2.ID, pagination.PageRequest{}, TransactionFilter{})
		testutil.AssertNoError(t, err)
		if result.TotalItems != 0 {
			t.Errorf("expected no transactions for other user, got %d", result.TotalItems)
		}
	})
}

func TestUpdateTransaction(t *testing.T) {
	t.Run("replaces_wholesale", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db, feed.NewHub())
		user := testutil.CreateTestUser(t, db)

		created, err := svc.CreateTransaction(user.ID, validInput())
		testutil.AssertNoError(t, err)

		updated, err := svc.UpdateTransaction(user.ID, created.ID, TransactionInput{
			Type:       models.TransactionTypeIncome,
			Amount:     1000,
			CategoryID: "salary",
			Date:       time.Now(),
		})
		testutil.AssertNoError(t, err)

		if updated.Type != models.TransactionTypeIncome || updated.CategoryName != "Salary" {
			t.Errorf("expected full replacement, got %+v", updated)
		}
		if updated.Notes != "" {
			t.Errorf("expected notes replaced with empty, got %q", updated.Notes)
		}
	})

	t.Run("wrong_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db, feed.NewHub())
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)

		created, err := svc.CreateTransaction(user1.ID, validInput())
		testutil.AssertNoError(t, err)

		_, err = svc.UpdateTransaction(user2.ID, created.ID, validInput())
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})
}

func TestDeleteTransaction(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db, feed.NewHub())
		user := testutil.CreateTestUser(t, db)

		created, err := svc.CreateTransaction(user.ID, validInput())
		testutil.AssertNoError(t, err)

		testutil.AssertNoError(t, svc.DeleteTransaction(user.ID, created.ID))

		_, err = svc.GetTransactionByID(user.ID, created.ID)
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db, feed.NewHub())
		user := testutil.CreateTestUser(t, db)

		err := svc.DeleteTransaction(user.ID, "0190a6e2-0000-7000-8000-000000000000")
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})
}
