package models

// Notification represents an in-app message for a user
type Notification struct {
	Base
	UserID  string `gorm:"type:uuid;not null;index" json:"user_id"`
	Message string `gorm:"not null" json:"message"`
	Read    bool   `gorm:"default:false" json:"read"`
}
