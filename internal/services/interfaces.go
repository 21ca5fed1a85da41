package services

import (
	"context"
	"time"

	"spendwise/internal/insight"
	"spendwise/internal/models"
	"spendwise/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, name string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	UpdateProfile(userID, name, mobile, countryCode string) (*models.User, error)
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate   *time.Time
	ToDate     *time.Time
	Type       *models.TransactionType
	CategoryID *string
}

// TransactionInput carries the full field set of a transaction write.
// Updates are full replacements, never partial patches.
type TransactionInput struct {
	Type       models.TransactionType
	Amount     float64
	CategoryID string
	Date       time.Time
	Notes      string
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(userID string, in TransactionInput) (*models.Transaction, error)
	GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	ListAllTransactions(ctx context.Context, userID string) ([]models.Transaction, error)
	GetTransactionByID(userID, transactionID string) (*models.Transaction, error)
	UpdateTransaction(userID, transactionID string, in TransactionInput) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID string) error
}

// GoalServicer defines the contract for financial goal business logic.
type GoalServicer interface {
	CreateGoal(userID, name string, targetAmount, currentAmount float64, targetDate *time.Time) (*models.FinancialGoal, error)
	GetUserGoals(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.FinancialGoal], error)
	GetGoalByID(userID, goalID string) (*models.FinancialGoal, error)
	UpdateGoal(userID, goalID, name string, targetAmount, currentAmount float64, targetDate *time.Time) (*models.FinancialGoal, error)
	DeleteGoal(userID, goalID string) error
}

// CardServicer defines the contract for card business logic.
type CardServicer interface {
	CreateCard(userID, name, lastFour, network string, expiryMonth, expiryYear int) (*models.Card, error)
	GetUserCards(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Card], error)
	GetCardByID(userID, cardID string) (*models.Card, error)
	UpdateCard(userID, cardID, name, lastFour, network string, expiryMonth, expiryYear int) (*models.Card, error)
	DeleteCard(userID, cardID string) error
}

// SubscriptionServicer defines the contract for subscription business logic.
type SubscriptionServicer interface {
	CreateSubscription(userID, name string, amount float64, cycle models.BillingCycle, nextPayment time.Time, category, notes string) (*models.Subscription, error)
	GetUserSubscriptions(userID string, page pagination.PageRequest, status *models.SubscriptionStatus) (*pagination.PageResponse[models.Subscription], error)
	GetSubscriptionByID(userID, subscriptionID string) (*models.Subscription, error)
	UpdateSubscription(userID, subscriptionID, name string, amount float64, cycle models.BillingCycle, nextPayment time.Time, category, notes string, status models.SubscriptionStatus) (*models.Subscription, error)
	DeleteSubscription(userID, subscriptionID string) error
}

// BillServicer defines the contract for bill business logic.
type BillServicer interface {
	CreateBill(userID, name string, amount float64, dueDate time.Time) (*models.Bill, error)
	GetUserBills(userID string, page pagination.PageRequest, paid *bool) (*pagination.PageResponse[models.Bill], error)
	GetBillByID(userID, billID string) (*models.Bill, error)
	UpdateBill(userID, billID, name string, amount float64, dueDate time.Time, paid bool) (*models.Bill, error)
	DeleteBill(userID, billID string) error
}

// InvestmentServicer defines the contract for investment business logic.
type InvestmentServicer interface {
	CreateInvestment(userID, name string, amountInvested float64, purchaseDate time.Time, notes string) (*models.Investment, error)
	GetUserInvestments(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Investment], error)
	GetInvestmentByID(userID, investmentID string) (*models.Investment, error)
	UpdateInvestmentValue(userID, investmentID string, currentValue float64) (*models.Investment, error)
	DeleteInvestment(userID, investmentID string) error
}

// NotificationServicer defines the contract for notification business logic.
type NotificationServicer interface {
	Notify(userID, message string) (*models.Notification, error)
	GetUserNotifications(userID string, page pagination.PageRequest, unreadOnly bool) (*pagination.PageResponse[models.Notification], error)
	MarkRead(userID, notificationID string) (*models.Notification, error)
}

// DashboardSummary combines headline totals with the most recent transactions.
type DashboardSummary struct {
	Summary            insight.Summary      `json:"summary"`
	RecentTransactions []models.Transaction `json:"recent_transactions"`
	CurrencySymbol     string               `json:"currency_symbol"`
}

// SpendingReport holds chart-ready aggregates.
type SpendingReport struct {
	CategoryBreakdown []insight.CategoryTotal `json:"category_breakdown"`
	MonthlyTrend      []insight.MonthTotal    `json:"monthly_trend"`
	CurrencySymbol    string                  `json:"currency_symbol"`
}

// DashboardServicer defines the contract for dashboard aggregation.
type DashboardServicer interface {
	GetSummary(ctx context.Context, userID string) (*DashboardSummary, error)
	GetSpending(ctx context.Context, userID string, months, categories int) (*SpendingReport, error)
}

// InsightServicer defines the contract for AI insight generation.
type InsightServicer interface {
	GenerateInsights(ctx context.Context, userID string) (*insight.Insights, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
