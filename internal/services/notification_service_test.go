package services

import (
	"testing"

	"spendwise/internal/pagination"
	"spendwise/internal/testutil"
)

func TestNotify(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewNotificationService(db)
	user := testutil.CreateTestUser(t, db)

	n, err := svc.Notify(user.ID, "Bill \"Rent\" marked as paid")
	testutil.AssertNoError(t, err)
	if n.Read {
		t.Error("expected new notification to be unread")
	}

	_, err = svc.Notify(user.ID, "")
	testutil.AssertAppError(t, err, "INVALID_INPUT")
}

func TestGetUserNotifications(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewNotificationService(db)
	user := testutil.CreateTestUser(t, db)

	first, err := svc.Notify(user.ID, "first")
	testutil.AssertNoError(t, err)
	_, err = svc.Notify(user.ID, "second")
	testutil.AssertNoError(t, err)

	_, err = svc.MarkRead(user.ID, first.ID)
	testutil.AssertNoError(t, err)

	all, err := svc.GetUserNotifications(user.ID, pagination.PageRequest{}, false)
	testutil.AssertNoError(t, err)
	if all.TotalItems != 2 {
		t.Errorf("expected 2 notifications, got %d", all.TotalItems)
	}

	unread, err := svc.GetUserNotifications(user.ID, pagination.PageRequest{}, true)
	testutil.AssertNoError(t, err)
	if unread.TotalItems != 1 || unread.Data[0].Message != "second" {
		t.Errorf("expected only the unread notification, got %+v", unread.Data)
	}
}

func TestMarkRead(t *testing.T) {
	t.Run("idempotent", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewNotificationService(db)
		user := testutil.CreateTestUser(t, db)

		n, err := svc.Notify(user.ID, "hello")
		testutil.AssertNoError(t, err)

		marked, err := svc.MarkRead(user.ID, n.ID)
		testutil.AssertNoError(t, err)
		if !marked.Read {
			t.Fatal("expected notification marked read")
		}

		again, err := svc.MarkRead(user.ID, n.ID)
		testutil.AssertNoError(t, err)
		if !again.Read {
			t.Error("expected repeated mark to stay read")
		}
	})

	t.Run("wrong_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewNotificationService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)

		n, err := svc.Notify(user1.ID, "private")
		testutil.AssertNoError(t, err)

		_, err = svc.MarkRead(user2.ID, n.ID)
		testutil.AssertAppError(t, err, "NOTIFICATION_NOT_FOUND")
	})
}
