package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "nestegg/internal/errors"
	"nestegg/internal/ledger"
	"nestegg/internal/models"
	"nestegg/internal/pagination"
)

// goalService handles goal-related business logic.
type goalService struct {
	db *gorm.DB
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(db *gorm.DB) GoalServicer {
	return &goalService{db: db}
}

// CreateGoal creates a new goal. Progress always starts at zero so that the
// current amount stays equal to the sum of signed ledger entries. When the
// input carries no category ID but a category name, the category is created
// together with the goal in one database transaction; a failure rolls both
// back.
func (s *goalService) CreateGoal(userID string, in GoalInput) (*models.Goal, error) {
	if in.Name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "goal name is required")
	}
	if in.TargetAmount.IsNegative() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must be zero or greater")
	}

	goal := &models.Goal{
		UserID:        userID,
		Name:          in.Name,
		Description:   in.Description,
		TargetAmount:  in.TargetAmount,
		CurrentAmount: decimal.Zero,
		Deadline:      in.Deadline,
		Color:         in.Color,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		switch {
		case in.CategoryID != "":
			var category models.Category
			if err := tx.Where("id = ? AND user_id = ?", in.CategoryID, userID).First(&category).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.ErrCategoryNotFound
				}
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			goal.CategoryID = &category.ID

		case in.CategoryName != "":
			category, err := findOrCreateCategory(tx, userID, in.CategoryName, in.Color)
			if err != nil {
				return err
			}
			goal.CategoryID = &category.ID
		}

		if err := tx.Create(goal).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	goal.Status = goal.ComputeStatus()
	return goal, nil
}

// findOrCreateCategory reuses an existing (name, color) category for the
// user or creates a new one. The color comparison is case-insensitive, so
// the list has to be checked in memory rather than with an exact SQL match.
func findOrCreateCategory(tx *gorm.DB, userID, name, color string) (*models.Category, error) {
	var existing []models.Category
	if err := tx.Where("user_id = ? AND name = ?", userID, name).Find(&existing).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	candidate := models.Category{UserID: userID, Name: name, Color: color}
	for i := range existing {
		if ledger.SameCategory(existing[i], candidate) {
			return &existing[i], nil
		}
	}

	if err := tx.Create(&candidate).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &candidate, nil
}

// GetUserGoals retrieves a paginated list of goals for a user.
func (s *goalService) GetUserGoals(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Goal], error) {
	page.Defaults()

	base := s.db.Model(&models.Goal{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var goals []models.Goal
	if err := base.Preload("Category").Scopes(pagination.Paginate(page)).
		Order("created_at DESC").
		Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(goals, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetGoalByID retrieves a goal by ID for a specific user
func (s *goalService) GetGoalByID(userID, goalID string) (*models.Goal, error) {
	var goal models.Goal
	if err := s.db.Preload("Category").Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &goal, nil
}

// EditGoal updates a goal's descriptive fields. Nil fields are left
// unchanged. The current amount is never edited here; it only moves through
// progress updates so the ledger stays consistent.
func (s *goalService) EditGoal(userID, goalID string, edit GoalEdit) (*models.Goal, error) {
	goal, err := s.GetGoalByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if edit.Name != nil && *edit.Name != "" {
		updates["name"] = *edit.Name
	}
	if edit.Description != nil {
		updates["description"] = *edit.Description
	}
	if edit.TargetAmount != nil {
		if edit.TargetAmount.IsNegative() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must be zero or greater")
		}
		updates["target_amount"] = *edit.TargetAmount
	}
	if edit.Deadline != nil {
		updates["deadline"] = *edit.Deadline
	}
	if edit.Color != nil {
		updates["color"] = *edit.Color
	}
	if edit.CategoryID != nil {
		if *edit.CategoryID == "" {
			updates["category_id"] = nil
		} else {
			var count int64
			s.db.Model(&models.Category{}).Where("id = ? AND user_id = ?", *edit.CategoryID, userID).Count(&count)
			if count == 0 {
				return nil, apperrors.ErrCategoryNotFound
			}
			updates["category_id"] = *edit.CategoryID
		}
	}

	if len(updates) > 0 {
		// Update through a bare model: the loaded goal carries its preloaded
		// Category, and GORM's association save would write the old
		// category_id back over a NULL assignment.
		if err := s.db.Model(&models.Goal{Base: models.Base{ID: goal.ID}}).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := s.db.Preload("Category").Where("id = ?", goal.ID).First(goal).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	goal.Status = goal.ComputeStatus()
	return goal, nil
}

// DeleteGoal soft-deletes a goal. Its ledger entries are kept: the ledger
// is append-only history.
func (s *goalService) DeleteGoal(userID, goalID string) error {
	goal, err := s.GetGoalByID(userID, goalID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(goal).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// UpdateProgress moves a goal's current amount to the requested total. The
// delta is classified as a deposit or withdrawal against the selected
// balance, validated, and then the goal, the balance, and the new ledger
// entry are written in a single database transaction. Any failure leaves
// all three untouched.
func (s *goalService) UpdateProgress(userID, goalID string, requestedTotal decimal.Decimal, balanceID, notes string) (*ProgressResult, error) {
	if balanceID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "balance ID is required")
	}

	var result *ProgressResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var goal models.Goal
		if err := tx.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrGoalNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		var balance models.Balance
		if err := tx.Where("id = ? AND user_id = ?", balanceID, userID).First(&balance).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrBalanceNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		delta, err := ledger.Classify(goal.CurrentAmount, requestedTotal)
		if err != nil {
			switch {
			case errors.Is(err, ledger.ErrNoChange):
				return apperrors.ErrNoProgressChange
			case errors.Is(err, ledger.ErrInvalidTarget):
				return apperrors.WithMessage(apperrors.ErrInvalidInput, "requested total must be zero or greater")
			default:
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}

		if err := ledger.CheckFunds(balance.Amount, delta); err != nil {
			var funds *ledger.InsufficientFundsError
			if errors.As(err, &funds) {
				return apperrors.WithMessage(apperrors.ErrInsufficientFunds,
					fmt.Sprintf("Insufficient funds: available %s, required %s",
						funds.Available.String(), funds.Required.String()))
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		entry := ledger.NewEntry(goal, balance, delta, notes)
		if err := tx.Create(&entry).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		goal.CurrentAmount = requestedTotal
		if err := tx.Model(&goal).Update("current_amount", requestedTotal).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		balance.Amount = delta.ApplyToBalance(balance.Amount)
		if err := tx.Model(&balance).Update("amount", balance.Amount).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		goal.Status = goal.ComputeStatus()
		result = &ProgressResult{Goal: &goal, Balance: &balance, Entry: &entry}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
