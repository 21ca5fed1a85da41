package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spendwise/internal/services"
)

// InsightHandler handles AI insight generation requests.
type InsightHandler struct {
	insightService services.InsightServicer
}

// NewInsightHandler creates a new InsightHandler.
func NewInsightHandler(insightService services.InsightServicer) *InsightHandler {
	return &InsightHandler{insightService: insightService}
}

// GenerateInsights handles an on-demand insight generation request
// @Summary     Generate financial insights
// @Description Generate AI insights from the user's full transaction history. Every call is a fresh generation; nothing is cached. On failure the client may simply retry.
// @Tags        insights
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} insight.Insights "Generated insights"
// @Failure     400 {object} ErrorResponse "No transaction data"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     503 {object} ErrorResponse "Insight generation unavailable"
// @Router      /insights [post]
func (h *InsightHandler) GenerateInsights(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	insights, err := h.insightService.GenerateInsights(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, insights)
}
