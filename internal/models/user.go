package models

// User represents the user model in the database
type User struct {
	Base
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `gorm:"not null" json:"-"`
	Name        string `json:"name"`
	Mobile      string `json:"mobile"`
	CountryCode string `gorm:"size:2" json:"country_code"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`

	Transactions  []Transaction   `gorm:"foreignKey:UserID" json:"transactions,omitempty"`
	Goals         []FinancialGoal `gorm:"foreignKey:UserID" json:"goals,omitempty"`
	Cards         []Card          `gorm:"foreignKey:UserID" json:"cards,omitempty"`
	Subscriptions []Subscription  `gorm:"foreignKey:UserID" json:"subscriptions,omitempty"`
	Bills         []Bill          `gorm:"foreignKey:UserID" json:"bills,omitempty"`
	Investments   []Investment    `gorm:"foreignKey:UserID" json:"investments,omitempty"`
	Notifications []Notification  `gorm:"foreignKey:UserID" json:"notifications,omitempty"`
}
