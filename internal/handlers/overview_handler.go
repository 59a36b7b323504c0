package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nestegg/internal/services"
)

// OverviewHandler handles the dashboard overview request.
type OverviewHandler struct {
	overviewService services.OverviewServicer
}

// NewOverviewHandler creates a new OverviewHandler.
func NewOverviewHandler(overviewService services.OverviewServicer) *OverviewHandler {
	return &OverviewHandler{overviewService: overviewService}
}

// GetOverview handles assembling the dashboard overview.
// @Summary     Get overview
// @Description Get goals, balances, recent transactions and the ledger summary in one response
// @Tags        overview
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.Overview "Dashboard overview"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /overview [get]
func (h *OverviewHandler) GetOverview(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	overview, err := h.overviewService.GetOverview(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}
