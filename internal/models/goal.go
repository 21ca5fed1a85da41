package models

import "time"

// FinancialGoal represents a savings target.
// CurrentAmount may legitimately exceed TargetAmount; progress clamping is a
// presentation concern, not a storage one.
type FinancialGoal struct {
	Base
	UserID        string     `gorm:"type:uuid;not null;index" json:"user_id"`
	Name          string     `gorm:"not null" json:"name"`
	TargetAmount  float64    `gorm:"not null" json:"target_amount"`
	CurrentAmount float64    `gorm:"default:0" json:"current_amount"`
	TargetDate    *time.Time `json:"target_date,omitempty"`
}

// Progress returns current/target, or 0 when the target is zero.
func (g *FinancialGoal) Progress() float64 {
	if g.TargetAmount == 0 {
		return 0
	}
	return g.CurrentAmount / g.TargetAmount
}
