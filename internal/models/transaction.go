package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a financial transaction in the system.
// The category is stored denormalized (ID, display name, icon) so records
// remain self-contained snapshots of the catalog at write time.
type Transaction struct {
	Base
	UserID       string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Type         TransactionType `gorm:"not null" json:"type"`
	Amount       float64         `gorm:"not null" json:"amount"`
	CategoryID   string          `gorm:"not null" json:"category_id"`
	CategoryName string          `gorm:"not null" json:"category_name"`
	CategoryIcon string          `json:"category_icon"`
	Date         time.Time       `gorm:"not null" json:"date"`
	Notes        string          `json:"notes"`
}

// Category reassembles the denormalized category fields.
func (t *Transaction) Category() Category {
	return Category{ID: t.CategoryID, Name: t.CategoryName, Icon: t.CategoryIcon}
}
