package services

import (
	"gorm.io/gorm"

	apperrors "nestegg/internal/errors"
	"nestegg/internal/ledger"
	"nestegg/internal/models"
	"nestegg/internal/pagination"
)

// ledgerService handles ledger queries: per-goal transaction history,
// filtered listing across all goals, and summary aggregation.
type ledgerService struct {
	db          *gorm.DB
	goalService GoalServicer
}

// NewLedgerService creates a new LedgerServicer.
func NewLedgerService(db *gorm.DB, goalService GoalServicer) LedgerServicer {
	return &ledgerService{db: db, goalService: goalService}
}

// GetGoalTransactions retrieves a paginated list of ledger entries for a
// specific goal, newest first.
func (s *ledgerService) GetGoalTransactions(userID, goalID string, page pagination.PageRequest) (*pagination.PageResponse[models.GoalTransaction], error) {
	// First verify the goal belongs to the user
	if _, err := s.goalService.GetGoalByID(userID, goalID); err != nil {
		return nil, err
	}

	page.Defaults()

	base := s.db.Model(&models.GoalTransaction{}).Where("user_id = ? AND goal_id = ?", userID, goalID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var entries []models.GoalTransaction
	if err := base.Scopes(pagination.Paginate(page)).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(entries, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// ListTransactions returns the user's ledger entries narrowed by the filter.
// Category and search dimensions resolve through the entry's goal, so the
// filtering runs in memory over the fetched entry and goal lists rather
// than in SQL; pagination applies after filtering.
func (s *ledgerService) ListTransactions(userID string, filter ledger.Filter, page pagination.PageRequest) (*pagination.PageResponse[TransactionView], error) {
	page.Defaults()

	entries, goals, err := s.fetch(userID)
	if err != nil {
		return nil, err
	}

	filtered := ledger.Apply(entries, goals, filter)

	idx := ledger.GoalIndex(goals)
	views := make([]TransactionView, 0, len(filtered))
	for _, e := range filtered {
		views = append(views, TransactionView{
			GoalTransaction: e,
			GoalLabel:       ledger.DisplayLabel(e, idx),
		})
	}

	paged := pagination.Slice(views, page)
	result := pagination.NewPageResponse(paged, page.Page, page.PageSize, int64(len(views)))
	return &result, nil
}

// Summarize aggregates the user's ledger entries matching the filter into
// deposit/withdrawal totals and net flow.
func (s *ledgerService) Summarize(userID string, filter ledger.Filter) (*ledger.Summary, error) {
	entries, goals, err := s.fetch(userID)
	if err != nil {
		return nil, err
	}

	summary := ledger.Summarize(ledger.Apply(entries, goals, filter))
	return &summary, nil
}

// fetch loads the user's full entry and goal lists, newest entries first.
func (s *ledgerService) fetch(userID string) ([]models.GoalTransaction, []models.Goal, error) {
	var entries []models.GoalTransaction
	if err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&entries).Error; err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var goals []models.Goal
	if err := s.db.Where("user_id = ?", userID).Find(&goals).Error; err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return entries, goals, nil
}
