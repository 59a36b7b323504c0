package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "nestegg/internal/errors"
	"nestegg/internal/services"
)

// BalanceHandler handles balance-related requests.
type BalanceHandler struct {
	balanceService services.BalanceServicer
}

// NewBalanceHandler creates a new BalanceHandler.
func NewBalanceHandler(balanceService services.BalanceServicer) *BalanceHandler {
	return &BalanceHandler{balanceService: balanceService}
}

// CreateBalanceRequest represents the request payload for creating a balance.
type CreateBalanceRequest struct {
	SourceName string          `json:"source_name" binding:"required,min=1,max=100"`
	Amount     decimal.Decimal `json:"amount"`
}

// UpdateBalanceRequest represents the request payload for updating a balance.
type UpdateBalanceRequest struct {
	SourceName *string          `json:"source_name" binding:"omitempty,min=1,max=100"`
	Amount     *decimal.Decimal `json:"amount"`
}

// CreateBalance handles the creation of a new balance source.
// @Summary     Create a balance
// @Description Create a new balance source; the amount may be negative for debt-like sources
// @Tags        balances
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateBalanceRequest true "Balance details"
// @Success     201 {object} models.Balance "Balance created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /balances [post]
func (h *BalanceHandler) CreateBalance(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	balance, err := h.balanceService.CreateBalance(userID, req.SourceName, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"balance": balance})
}

// GetBalances handles listing balances for the authenticated user.
// @Summary     Get balances
// @Description Get a paginated list of balances for the authenticated user
// @Tags        balances
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Balance] "Paginated balances"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /balances [get]
func (h *BalanceHandler) GetBalances(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	page, err := bindPage(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.balanceService.GetUserBalances(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetBalance handles retrieving a specific balance.
// @Summary     Get balance by ID
// @Description Get a specific balance by ID
// @Tags        balances
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Balance ID"
// @Success     200 {object} models.Balance "Balance details"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Balance not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /balances/{id} [get]
func (h *BalanceHandler) GetBalance(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	balance, err := h.balanceService.GetBalanceByID(userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"balance": balance})
}

// UpdateBalance handles updating an existing balance.
// @Summary     Update balance
// @Description Update a balance's source name or amount
// @Tags        balances
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string               true "Balance ID"
// @Param       request body UpdateBalanceRequest true "Updated balance details"
// @Success     200 {object} models.Balance "Updated balance"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Balance not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /balances/{id} [put]
func (h *BalanceHandler) UpdateBalance(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	balance, err := h.balanceService.UpdateBalance(userID, c.Param("id"), req.SourceName, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"balance": balance})
}
