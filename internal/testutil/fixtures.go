package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"spendwise/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		Name:     fmt.Sprintf("Test User %d", nextID()),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestTransaction creates a transaction with the category denormalized
// the same way the transaction service does it.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID string, txType models.TransactionType, amount float64, categoryID string, date time.Time) *models.Transaction {
	t.Helper()

	category, ok := models.CategoryByID(txType, categoryID)
	if !ok {
		t.Fatalf("unknown %s category %q", txType, categoryID)
	}

	tx := &models.Transaction{
		UserID:       userID,
		Type:         txType,
		Amount:       amount,
		CategoryID:   category.ID,
		CategoryName: category.Name,
		CategoryIcon: category.Icon,
		Date:         date,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestGoal creates a financial goal.
func CreateTestGoal(t *testing.T, db *gorm.DB, userID string) *models.FinancialGoal {
	t.Helper()

	goal := &models.FinancialGoal{
		UserID:        userID,
		Name:          fmt.Sprintf("Test Goal %d", nextID()),
		TargetAmount:  1000,
		CurrentAmount: 250,
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}

// CreateTestCard creates a card.
func CreateTestCard(t *testing.T, db *gorm.DB, userID string) *models.Card {
	t.Helper()

	card := &models.Card{
		UserID:      userID,
		Name:        fmt.Sprintf("Test Card %d", nextID()),
		LastFour:    "4242",
		Network:     "visa",
		ExpiryMonth: 12,
		ExpiryYear:  2030,
	}
	if err := db.Create(card).Error; err != nil {
		t.Fatalf("failed to create test card: %v", err)
	}
	return card
}

// CreateTestSubscription creates an active monthly subscription.
func CreateTestSubscription(t *testing.T, db *gorm.DB, userID string) *models.Subscription {
	t.Helper()

	sub := &models.Subscription{
		UserID:          userID,
		Name:            fmt.Sprintf("Test Subscription %d", nextID()),
		Amount:          9.99,
		BillingCycle:    models.BillingCycleMonthly,
		NextPaymentDate: time.Now().AddDate(0, 1, 0),
		Status:          models.SubscriptionStatusActive,
	}
	if err := db.Create(sub).Error; err != nil {
		t.Fatalf("failed to create test subscription: %v", err)
	}
	return sub
}

// CreateTestBill creates an unpaid bill due in a week.
func CreateTestBill(t *testing.T, db *gorm.DB, userID string) *models.Bill {
	t.Helper()

	bill := &models.Bill{
		UserID:  userID,
		Name:    fmt.Sprintf("Test Bill %d", nextID()),
		Amount:  50,
		DueDate: time.Now().AddDate(0, 0, 7),
	}
	if err := db.Create(bill).Error; err != nil {
		t.Fatalf("failed to create test bill: %v", err)
	}
	return bill
}

// CreateTestInvestment creates an investment holding.
func CreateTestInvestment(t *testing.T, db *gorm.DB, userID string) *models.Investment {
	t.Helper()

	inv := &models.Investment{
		UserID:         userID,
		Name:           fmt.Sprintf("Test Investment %d", nextID()),
		AmountInvested: 1000,
		CurrentValue:   1000,
		PurchaseDate:   time.Now().AddDate(0, -1, 0),
	}
	if err := db.Create(inv).Error; err != nil {
		t.Fatalf("failed to create test investment: %v", err)
	}
	return inv
}
