package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"nestegg/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestBalance creates a balance source with the given amount.
func CreateTestBalance(t *testing.T, db *gorm.DB, userID string, amount decimal.Decimal) *models.Balance {
	t.Helper()

	balance := &models.Balance{
		UserID:     userID,
		SourceName: fmt.Sprintf("Test Source %d", nextID()),
		Amount:     amount,
	}
	if err := db.Create(balance).Error; err != nil {
		t.Fatalf("failed to create test balance: %v", err)
	}
	return balance
}

// CreateTestGoal creates a goal with the given target and zero progress.
func CreateTestGoal(t *testing.T, db *gorm.DB, userID string, target decimal.Decimal) *models.Goal {
	t.Helper()

	goal := &models.Goal{
		UserID:        userID,
		Name:          fmt.Sprintf("Test Goal %d", nextID()),
		TargetAmount:  target,
		CurrentAmount: decimal.Zero,
		Deadline:      time.Now().AddDate(1, 0, 0),
		Color:         "#3498DB",
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	goal.Status = goal.ComputeStatus()
	return goal
}

// CreateTestCategory creates a category with a unique name.
func CreateTestCategory(t *testing.T, db *gorm.DB, userID string) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID: userID,
		Name:   fmt.Sprintf("Test Category %d", nextID()),
		Color:  "#2ECC71",
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestEntry creates a ledger entry of the given type and magnitude.
func CreateTestEntry(t *testing.T, db *gorm.DB, userID, goalID, balanceID string, txType models.TransactionType, amount decimal.Decimal) *models.GoalTransaction {
	t.Helper()

	entry := &models.GoalTransaction{
		UserID:    userID,
		GoalID:    goalID,
		BalanceID: balanceID,
		Type:      txType,
		Amount:    amount,
		Notes:     fmt.Sprintf("Test entry %d", nextID()),
	}
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create test entry: %v", err)
	}
	return entry
}
