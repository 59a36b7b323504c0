package models

import "github.com/shopspring/decimal"

// TransactionType represents the direction of a ledger entry
type TransactionType string

const (
	// TransactionTypeDeposit moves funds from a balance into a goal.
	TransactionTypeDeposit TransactionType = "deposit"
	// TransactionTypeWithdrawal moves funds from a goal back to a balance.
	TransactionTypeWithdrawal TransactionType = "withdrawal"
)

// GoalTransaction is an immutable ledger entry recording funds moved between
// a goal and a balance. Amount is always the unsigned magnitude; the
// direction is carried by Type. Entries are append-only: there is no update
// or delete path for them.
type GoalTransaction struct {
	Base
	UserID    string          `gorm:"type:uuid;not null" json:"user_id"`
	GoalID    string          `gorm:"type:uuid;not null" json:"goal_id"`
	BalanceID string          `gorm:"type:uuid;not null" json:"balance_id"`
	Type      TransactionType `gorm:"not null" json:"type"`
	Amount    decimal.Decimal `gorm:"type:DECIMAL(20,8);not null" json:"amount"`
	Notes     string          `json:"notes"`

	// Relationships
	Goal    Goal    `gorm:"foreignKey:GoalID" json:"goal,omitempty"`
	Balance Balance `gorm:"foreignKey:BalanceID" json:"balance,omitempty"`
}
