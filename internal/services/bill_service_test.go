package services

import (
	"testing"
	"time"

	"spendwise/internal/pagination"
	"spendwise/internal/testutil"
)

func TestCreateBill(t *testing.T) {
	t.Run("starts_unpaid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBillService(db, NewNotificationService(db))
		user := testutil.CreateTestUser(t, db)

		bill, err := svc.CreateBill(user.ID, "Electricity", 80, time.Now().AddDate(0, 0, 10))
		testutil.AssertNoError(t, err)
		if bill.Paid {
			t.Error("expected new bill to start unpaid")
		}
	})

	t.Run("invalid_input", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBillService(db, NewNotificationService(db))
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateBill(user.ID, "", 80, time.Now())
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.CreateBill(user.ID, "Water", 0, time.Now())
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetUserBills(t *testing.T) {
	t.Run("ordered_by_due_date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBillService(db, NewNotificationService(db))
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateBill(user.ID, "Later", 10, time.Now().AddDate(0, 0, 20))
		testutil.AssertNoError(t, err)
		_, err = svc.CreateBill(user.ID, "Sooner", 10, time.Now().AddDate(0, 0, 2))
		testutil.AssertNoError(t, err)

		result, err := svc.GetUserBills(user.ID, pagination.PageRequest{}, nil)
		testutil.AssertNoError(t, err)
		if result.TotalItems != 2 || result.Data[0].Name != "Sooner" {
			t.Errorf("expected soonest bill first, got %+v", result.Data)
		}
	})

	t.Run("filters_by_paid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBillService(db, NewNotificationService(db))
		user := testutil.CreateTestUser(t, db)

		bill := testutil.CreateTestBill(t, db, user.ID)
		testutil.CreateTestBill(t, db, user.ID)

		_, err := svc.UpdateBill(user.ID, bill.ID, bill.Name, bill.Amount, bill.DueDate, true)
		testutil.AssertNoError(t, err)

		unpaid := false
		result, err := svc.GetUserBills(user.ID, pagination.PageRequest{}, &unpaid)
		testutil.AssertNoError(t, err)
		if result.TotalItems != 1 {
			t.Errorf("expected 1 unpaid bill, got %d", result.TotalItems)
		}
	})
}

func TestUpdateBill(t *testing.T) {
	t.Run("paid_transition_notifies", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		notifSvc := NewNotificationService(db)
		svc := NewBillService(db, notifSvc)
		user := testutil.CreateTestUser(t, db)

		bill := testutil.CreateTestBill(t, db, user.ID)

		updated, err := svc.UpdateBill(user.ID, bill.ID, bill.Name, bill.Amount, bill.DueDate, true)
		testutil.AssertNoError(t, err)
		if !updated.Paid {
			t.Fatal("expected bill marked paid")
		}

		result, err := notifSvc.GetUserNotifications(user.ID, pagination.PageRequest{}, true)
		testutil.AssertNoError(t, err)
		if result.TotalItems != 1 {
			t.Fatalf("expected 1 notification, got %d", result.TotalItems)
		}

		// Saving a bill that is already paid must not notify again.
		_, err = svc.UpdateBill(user.ID, bill.ID, bill.Name, bill.Amount, bill.DueDate, true)
		testutil.AssertNoError(t, err)

		result, err = notifSvc.GetUserNotifications(user.ID, pagination.PageRequest{}, true)
		testutil.AssertNoError(t, err)
		if result.TotalItems != 1 {
			t.Errorf("expected no duplicate notification, got %d", result.TotalItems)
		}
	})

	t.Run("wrong_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBillService(db, NewNotificationService(db))
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)

		bill := testutil.CreateTestBill(t, db, user1.ID)
		_, err := svc.UpdateBill(user2.ID, bill.ID, bill.Name, bill.Amount, bill.DueDate, true)
		testutil.AssertAppError(t, err, "BILL_NOT_FOUND")
	})
}

func TestDeleteBill(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewBillService(db, NewNotificationService(db))
	user := testutil.CreateTestUser(t, db)

	bill := testutil.CreateTestBill(t, db, user.ID)
	testutil.AssertNoError(t, svc.DeleteBill(user.ID, bill.ID))

	_, err := svc.GetBillByID(user.ID, bill.ID)
	testutil.AssertAppError(t, err, "BILL_NOT_FOUND")
}
