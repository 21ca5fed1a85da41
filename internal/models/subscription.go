package models

import "time"

// BillingCycle represents how often a subscription renews
type BillingCycle string

const (
	BillingCycleDaily   BillingCycle = "daily"
	BillingCycleWeekly  BillingCycle = "weekly"
	BillingCycleMonthly BillingCycle = "monthly"
	BillingCycleYearly  BillingCycle = "yearly"
)

// SubscriptionStatus represents the lifecycle state of a subscription
type SubscriptionStatus string

const (
	SubscriptionStatusActive         SubscriptionStatus = "active"
	SubscriptionStatusInactive       SubscriptionStatus = "inactive"
	SubscriptionStatusPendingPayment SubscriptionStatus = "pending_payment"
	SubscriptionStatusCancelled      SubscriptionStatus = "cancelled"
)

// Subscription represents a recurring payment the user tracks
type Subscription struct {
	Base
	UserID          string             `gorm:"type:uuid;not null;index" json:"user_id"`
	Name            string             `gorm:"not null" json:"name"`
	Amount          float64            `gorm:"not null" json:"amount"`
	BillingCycle    BillingCycle       `gorm:"not null" json:"billing_cycle"`
	NextPaymentDate time.Time          `gorm:"not null" json:"next_payment_date"`
	Category        string             `json:"category"`
	Notes           string             `json:"notes"`
	Status          SubscriptionStatus `gorm:"default:active" json:"status"`
}
