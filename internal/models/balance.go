package models

import "github.com/shopspring/decimal"

// Balance represents a named pool of funds owned by a user. The amount is
// signed: debt-like sources carry a negative amount.
type Balance struct {
	Base
	UserID     string          `gorm:"type:uuid;not null" json:"user_id"`
	SourceName string          `gorm:"not null" json:"source_name"`
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8);not null" json:"amount"`

	// Relationships
	Transactions []GoalTransaction `gorm:"foreignKey:BalanceID" json:"transactions,omitempty"`
}
