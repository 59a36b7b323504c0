package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"nestegg/internal/ledger"
	"nestegg/internal/models"
	"nestegg/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
}

// BalanceServicer defines the contract for balance-related business logic.
type BalanceServicer interface {
	CreateBalance(userID, sourceName string, amount decimal.Decimal) (*models.Balance, error)
	GetUserBalances(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Balance], error)
	GetBalanceByID(userID, balanceID string) (*models.Balance, error)
	UpdateBalance(userID, balanceID string, sourceName *string, amount *decimal.Decimal) (*models.Balance, error)
}

// GoalInput holds the fields for creating a goal. An empty CategoryID
// combined with a non-empty CategoryName asks for a new category to be
// created together with the goal.
type GoalInput struct {
	Name         string
	Description  string
	TargetAmount decimal.Decimal
	Deadline     time.Time
	Color        string
	CategoryID   string
	CategoryName string
}

// GoalEdit holds the optional fields for editing a goal. Nil fields are
// left unchanged.
type GoalEdit struct {
	Name         *string
	Description  *string
	TargetAmount *decimal.Decimal
	Deadline     *time.Time
	Color        *string
	CategoryID   *string
}

// ProgressResult is the consistent update triple produced by a progress
// update: the goal with its new current amount, the adjusted balance, and
// the ledger entry recording the movement. All three are written in one
// database transaction.
type ProgressResult struct {
	Goal    *models.Goal            `json:"goal"`
	Balance *models.Balance         `json:"balance"`
	Entry   *models.GoalTransaction `json:"entry"`
}

// GoalServicer defines the contract for goal-related business logic.
type GoalServicer interface {
	CreateGoal(userID string, in GoalInput) (*models.Goal, error)
	GetUserGoals(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Goal], error)
	GetGoalByID(userID, goalID string) (*models.Goal, error)
	EditGoal(userID, goalID string, edit GoalEdit) (*models.Goal, error)
	DeleteGoal(userID, goalID string) error
	UpdateProgress(userID, goalID string, requestedTotal decimal.Decimal, balanceID, notes string) (*ProgressResult, error)
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(userID, name, color string) (*models.Category, error)
	GetMergedCategories(userID string) ([]models.Category, error)
}

// TransactionView pairs a ledger entry with its resolved display label.
// Entries whose goal reference cannot be resolved carry the raw goal ID as
// their label instead of failing.
type TransactionView struct {
	models.GoalTransaction
	GoalLabel string `json:"goal_label"`
}

// LedgerServicer defines the contract for ledger queries: per-goal history,
// filtered listing across goals, and summary aggregation.
type LedgerServicer interface {
	GetGoalTransactions(userID, goalID string, page pagination.PageRequest) (*pagination.PageResponse[models.GoalTransaction], error)
	ListTransactions(userID string, filter ledger.Filter, page pagination.PageRequest) (*pagination.PageResponse[TransactionView], error)
	Summarize(userID string, filter ledger.Filter) (*ledger.Summary, error)
}

// Overview aggregates the collections the dashboard renders. The sources
// are fetched concurrently; a failed source leaves its field empty and adds
// an entry to Errors instead of failing the whole overview.
type Overview struct {
	Goals              []models.Goal            `json:"goals"`
	Balances           []models.Balance         `json:"balances"`
	RecentTransactions []models.GoalTransaction `json:"recent_transactions"`
	Summary            *ledger.Summary          `json:"summary,omitempty"`
	Errors             map[string]string        `json:"errors,omitempty"`
}

// OverviewServicer defines the contract for the dashboard overview.
type OverviewServicer interface {
	GetOverview(ctx context.Context, userID string) (*Overview, error)
}
