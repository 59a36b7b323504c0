package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GoalStatus is derived from the goal's progress, never stored.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
)

// Goal represents a savings target with a current progress amount.
// CurrentAmount is kept equal to the sum of signed ledger entries for the
// goal; progress updates write the goal, the balance, and the ledger entry
// in a single database transaction.
type Goal struct {
	Base
	UserID        string          `gorm:"type:uuid;not null" json:"user_id"`
	Name          string          `gorm:"not null" json:"name"`
	Description   string          `json:"description"`
	TargetAmount  decimal.Decimal `gorm:"type:DECIMAL(20,8);not null" json:"target_amount"`
	CurrentAmount decimal.Decimal `gorm:"type:DECIMAL(20,8);not null" json:"current_amount"`
	CategoryID    *string         `gorm:"type:uuid" json:"category_id,omitempty"`
	Deadline      time.Time       `json:"deadline"`
	Color         string          `json:"color"`
	Status        GoalStatus      `gorm:"-" json:"status"`

	// Relationships
	Category     *Category         `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Transactions []GoalTransaction `gorm:"foreignKey:GoalID" json:"transactions,omitempty"`
}

// ComputeStatus returns completed when the current amount has reached the target.
func (g *Goal) ComputeStatus() GoalStatus {
	if g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount) {
		return GoalStatusCompleted
	}
	return GoalStatusActive
}

// AfterFind fills in the derived status field.
func (g *Goal) AfterFind(tx *gorm.DB) error {
	g.Status = g.ComputeStatus()
	return nil
}
