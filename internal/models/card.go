package models

// Card represents a stored payment card. Only the last four digits are kept.
type Card struct {
	Base
	UserID      string `gorm:"type:uuid;not null;index" json:"user_id"`
	Name        string `gorm:"not null" json:"name"`
	LastFour    string `gorm:"size:4;not null" json:"last_four"`
	Network     string `gorm:"not null" json:"network"`
	ExpiryMonth int    `json:"expiry_month"`
	ExpiryYear  int    `json:"expiry_year"`
}
