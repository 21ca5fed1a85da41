package models

import "time"

// Investment represents a tracked holding. CurrentValue starts equal to
// AmountInvested and is updated manually by the user.
type Investment struct {
	Base
	UserID         string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Name           string    `gorm:"not null" json:"name"`
	AmountInvested float64   `gorm:"not null" json:"amount_invested"`
	CurrentValue   float64   `json:"current_value"`
	PurchaseDate   time.Time `gorm:"not null" json:"purchase_date"`
	Notes          string    `json:"notes"`
}
