// Package ledger implements the goal-ledger domain logic: classifying
// progress updates into deposits and withdrawals, validating them against
// available funds, constructing ledger entries, aggregating entry lists into
// summaries, and filtering entries across goals, categories, balances, and
// free text. Everything in this package is a pure function over values; the
// services layer owns persistence.
package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"nestegg/internal/models"
)

// Classification errors returned by Classify. The services layer translates
// these into API errors.
var (
	// ErrNoChange signals that the requested total equals the current
	// amount. A no-op update is rejected, never silently accepted.
	ErrNoChange = errors.New("requested total equals current amount")
	// ErrInvalidTarget signals a negative requested total.
	ErrInvalidTarget = errors.New("requested total must be zero or greater")
)

// InsufficientFundsError is returned when a deposit would overdraw the
// selected balance. It carries the exact available and required amounts.
type InsufficientFundsError struct {
	Available decimal.Decimal
	Required  decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: available %s, required %s",
		e.Available.String(), e.Required.String())
}

// Delta describes a requested change to a goal's progress amount.
type Delta struct {
	// Amount is the signed difference: requested − current.
	Amount decimal.Decimal
	// Magnitude is the absolute value of Amount, the ledger entry amount.
	Magnitude decimal.Decimal
	// Type is deposit when the goal grows, withdrawal when it shrinks.
	Type models.TransactionType
}

// Classify computes the signed delta between the goal's current amount and
// the requested new total and classifies its direction. A positive delta is
// a deposit (funds leave a balance and enter the goal), a negative delta a
// withdrawal (funds return to the balance). A zero delta or a negative
// requested total is rejected.
func Classify(current, requested decimal.Decimal) (Delta, error) {
	if requested.IsNegative() {
		return Delta{}, ErrInvalidTarget
	}

	amount := requested.Sub(current)
	if amount.IsZero() {
		return Delta{}, ErrNoChange
	}

	d := Delta{Amount: amount, Magnitude: amount.Abs()}
	if amount.IsPositive() {
		d.Type = models.TransactionTypeDeposit
	} else {
		d.Type = models.TransactionTypeWithdrawal
	}
	return d, nil
}

// CheckFunds verifies that a deposit can be covered by the given balance
// amount. Withdrawals only increase the balance and always pass.
func CheckFunds(available decimal.Decimal, d Delta) error {
	if d.Type != models.TransactionTypeDeposit {
		return nil
	}
	if available.LessThan(d.Magnitude) {
		return &InsufficientFundsError{Available: available, Required: d.Magnitude}
	}
	return nil
}

// ApplyToBalance returns the balance amount after the delta is committed:
// deposits drain the balance, withdrawals refill it.
func (d Delta) ApplyToBalance(amount decimal.Decimal) decimal.Decimal {
	if d.Type == models.TransactionTypeDeposit {
		return amount.Sub(d.Magnitude)
	}
	return amount.Add(d.Magnitude)
}

// NewEntry constructs the immutable ledger entry for a committed delta.
// When the caller supplies no notes, a human-readable description is
// generated from the direction and magnitude.
func NewEntry(goal models.Goal, balance models.Balance, d Delta, notes string) models.GoalTransaction {
	if notes == "" {
		if d.Type == models.TransactionTypeDeposit {
			notes = fmt.Sprintf("Added $%s", d.Magnitude.String())
		} else {
			notes = fmt.Sprintf("Removed $%s", d.Magnitude.String())
		}
	}

	return models.GoalTransaction{
		UserID:    goal.UserID,
		GoalID:    goal.ID,
		BalanceID: balance.ID,
		Type:      d.Type,
		Amount:    d.Magnitude,
		Notes:     notes,
	}
}
