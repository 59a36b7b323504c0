package services

import (
	"gorm.io/gorm"

	apperrors "nestegg/internal/errors"
	"nestegg/internal/ledger"
	"nestegg/internal/models"
)

// categoryService handles category-related business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// CreateCategory creates a new category for a user. A category with the
// same name (case-sensitive) and color (case-insensitive) is a duplicate
// and rejected; same name with a different color is a distinct entry.
func (s *categoryService) CreateCategory(userID, name, color string) (*models.Category, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}

	candidate := models.Category{UserID: userID, Name: name, Color: color}

	var existing []models.Category
	if err := s.db.Where("user_id = ? AND name = ?", userID, name).Find(&existing).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for i := range existing {
		if ledger.SameCategory(existing[i], candidate) {
			return nil, apperrors.ErrDuplicateCategory
		}
	}
	for _, builtin := range ledger.BuiltinCategories() {
		if ledger.SameCategory(builtin, candidate) {
			return nil, apperrors.ErrDuplicateCategory
		}
	}

	if err := s.db.Create(&candidate).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &candidate, nil
}

// GetMergedCategories returns the built-in set merged with the user's
// stored categories, duplicates removed. Categories referenced by the
// user's goals are part of the stored set, so the merged list covers
// everything a goal can display.
func (s *categoryService) GetMergedCategories(userID string) ([]models.Category, error) {
	var stored []models.Category
	if err := s.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&stored).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return ledger.MergeCategories(ledger.BuiltinCategories(), stored), nil
}
