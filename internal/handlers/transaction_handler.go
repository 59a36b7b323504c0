package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "nestegg/internal/errors"
	"nestegg/internal/ledger"
	"nestegg/internal/services"
)

// TransactionHandler handles ledger listing and summary requests.
type TransactionHandler struct {
	ledgerService services.LedgerServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(ledgerService services.LedgerServicer) *TransactionHandler {
	return &TransactionHandler{ledgerService: ledgerService}
}

// FilterQuery holds the ledger filter query parameters. Empty values and the
// literal "all" both mean no constraint on that dimension.
type FilterQuery struct {
	GoalID     string `form:"goal_id"`
	CategoryID string `form:"category_id"`
	BalanceID  string `form:"balance_id"`
	Type       string `form:"type" binding:"omitempty,transaction_type|eq=all"`
	Search     string `form:"search"`
}

// bindFilter parses and validates the ledger filter query parameters.
func bindFilter(c *gin.Context) (ledger.Filter, error) {
	var q FilterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return ledger.Filter{}, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	return ledger.Filter{
		GoalID:     q.GoalID,
		CategoryID: q.CategoryID,
		BalanceID:  q.BalanceID,
		Type:       q.Type,
		Search:     q.Search,
	}, nil
}

// ListTransactions handles listing the user's ledger entries across goals.
// @Summary     List transactions
// @Description Get a paginated, filtered list of ledger entries across all goals
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       goal_id     query string false "Filter by goal ID ('all' for no filter)"
// @Param       category_id query string false "Filter by category ID ('all' for no filter)"
// @Param       balance_id  query string false "Filter by balance ID ('all' for no filter)"
// @Param       type        query string false "Filter by entry type: deposit or withdrawal ('all' for no filter)"
// @Param       search      query string false "Case-insensitive search over notes and goal name"
// @Param       page        query int    false "Page number (default 1)"
// @Param       page_size   query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[services.TransactionView] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
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

	filter, err := bindFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.ledgerService.ListTransactions(userID, filter, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetSummary handles aggregating the user's ledger entries.
// @Summary     Get transaction summary
// @Description Aggregate deposits, withdrawals and net flow over the filtered ledger
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       goal_id     query string false "Filter by goal ID ('all' for no filter)"
// @Param       category_id query string false "Filter by category ID ('all' for no filter)"
// @Param       balance_id  query string false "Filter by balance ID ('all' for no filter)"
// @Param       type        query string false "Filter by entry type: deposit or withdrawal ('all' for no filter)"
// @Param       search      query string false "Case-insensitive search over notes and goal name"
// @Success     200 {object} ledger.Summary "Ledger summary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/summary [get]
func (h *TransactionHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filter, err := bindFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.ledgerService.Summarize(userID, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// GetGoalTransactions handles listing the entries of a single goal.
// @Summary     Get goal transactions
// @Description Get the paginated ledger history of a single goal, newest first
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id        path  string true  "Goal ID"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.GoalTransaction] "Paginated goal transactions"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/{id}/transactions [get]
func (h *TransactionHandler) GetGoalTransactions(c *gin.Context) {
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

	result, err := h.ledgerService.GetGoalTransactions(userID, c.Param("id"), page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
