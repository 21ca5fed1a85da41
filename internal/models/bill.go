package models

import "time"

// Bill represents a one-off payment with a due date
type Bill struct {
	Base
	UserID  string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Name    string    `gorm:"not null" json:"name"`
	Amount  float64   `gorm:"not null" json:"amount"`
	DueDate time.Time `gorm:"not null" json:"due_date"`
	Paid    bool      `gorm:"default:false" json:"paid"`
}
