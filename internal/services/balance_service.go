package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "nestegg/internal/errors"
	"nestegg/internal/models"
	"nestegg/internal/pagination"
)

// balanceService handles balance-related business logic.
type balanceService struct {
	db *gorm.DB
}

// NewBalanceService creates a new BalanceServicer.
func NewBalanceService(db *gorm.DB) BalanceServicer {
	return &balanceService{db: db}
}

// CreateBalance creates a new balance source for a user. The amount may be
// negative for debt-like sources.
func (s *balanceService) CreateBalance(userID, sourceName string, amount decimal.Decimal) (*models.Balance, error) {
	if sourceName == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "source name is required")
	}

	balance := &models.Balance{
		UserID:     userID,
		SourceName: sourceName,
		Amount:     amount,
	}

	if err := s.db.Create(balance).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return balance, nil
}

// GetUserBalances retrieves a paginated list of balances for a user.
func (s *balanceService) GetUserBalances(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Balance], error) {
	page.Defaults()

	base := s.db.Model(&models.Balance{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var balances []models.Balance
	if err := base.Scopes(pagination.Paginate(page)).Find(&balances).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(balances, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetBalanceByID retrieves a balance by ID for a specific user
func (s *balanceService) GetBalanceByID(userID, balanceID string) (*models.Balance, error) {
	var balance models.Balance
	if err := s.db.Where("id = ? AND user_id = ?", balanceID, userID).First(&balance).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBalanceNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &balance, nil
}

// UpdateBalance updates the source name and/or amount of a balance. Nil
// fields are left unchanged. Direct amount edits bypass the goal ledger and
// exist for correcting a source against the real account it mirrors.
func (s *balanceService) UpdateBalance(userID, balanceID string, sourceName *string, amount *decimal.Decimal) (*models.Balance, error) {
	balance, err := s.GetBalanceByID(userID, balanceID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if sourceName != nil && *sourceName != "" {
		updates["source_name"] = *sourceName
	}
	if amount != nil {
		updates["amount"] = *amount
	}

	if len(updates) > 0 {
		if err := s.db.Model(balance).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := s.db.Where("id = ?", balance.ID).First(balance).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return balance, nil
}
