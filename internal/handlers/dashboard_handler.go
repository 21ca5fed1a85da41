package handlers

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/feed"
	"spendwise/internal/models"
	"spendwise/internal/services"
)

// DashboardHandler serves dashboard aggregates, both as plain snapshots and
// as a live SSE stream backed by a feed binding.
type DashboardHandler struct {
	dashboardService   services.DashboardServicer
	transactionService services.TransactionServicer
	hub                *feed.Hub
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService services.DashboardServicer, transactionService services.TransactionServicer, hub *feed.Hub) *DashboardHandler {
	return &DashboardHandler{
		dashboardService:   dashboardService,
		transactionService: transactionService,
		hub:                hub,
	}
}

// GetSummary handles the dashboard summary request
// @Summary     Get dashboard summary
// @Description Get headline totals, the five most recent transactions and the user's currency symbol
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.DashboardSummary "Dashboard summary"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.dashboardService.GetSummary(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func parseChartParams(c *gin.Context) (months, categories int, err error) {
	if v := c.Query("months"); v != "" {
		months, err = strconv.Atoi(v)
		if err != nil || months < 1 {
			return 0, 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid months, must be a positive integer")
		}
	}
	if v := c.Query("categories"); v != "" {
		categories, err = strconv.Atoi(v)
		if err != nil || categories < 1 {
			return 0, 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid categories, must be a positive integer")
		}
	}
	return months, categories, nil
}

// GetSpending handles the spending charts request
// @Summary     Get spending charts
// @Description Get the expense category breakdown and monthly spending trend
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       months     query int false "Number of most recent months in the trend (default 6)"
// @Param       categories query int false "Number of top categories in the breakdown (default 6)"
// @Success     200 {object} services.SpendingReport "Spending report"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/spending [get]
func (h *DashboardHandler) GetSpending(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	months, categories, err := parseChartParams(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	report, err := h.dashboardService.GetSpending(c.Request.Context(), userID, months, categories)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// StreamDashboard streams live dashboard snapshots over SSE
// @Summary     Stream dashboard updates
// @Description Server-sent event stream of dashboard snapshots. A snapshot is pushed after the initial load and on every transaction change. A load failure ends the stream with an error snapshot; reconnect to retry.
// @Tags        dashboard
// @Produce     text/event-stream
// @Security    BearerAuth
// @Param       months     query int false "Number of most recent months in the trend (default 6)"
// @Param       categories query int false "Number of top categories in the breakdown (default 6)"
// @Success     200 {string} string "SSE stream of snapshot events"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /dashboard/stream [get]
func (h *DashboardHandler) StreamDashboard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	months, categories, err := parseChartParams(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	loader := func(ctx context.Context) ([]models.Transaction, error) {
		return h.transactionService.ListAllTransactions(ctx, userID)
	}
	scope := feed.Scope{UserID: userID, Collection: feed.CollectionTransactions}
	binding := feed.NewBinding(c.Request.Context(), h.hub, scope, loader,
		feed.Options{CategoryLimit: categories, TrendMonths: months})
	defer binding.Close()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.SSEvent("snapshot", gin.H{"status": feed.StatusLoading})
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		snap, ok := <-binding.Updates()
		if !ok {
			return false
		}
		c.SSEvent("snapshot", snapshotPayload(snap))
		return snap.Status != feed.StatusError
	})
}

func snapshotPayload(s feed.Snapshot) gin.H {
	payload := gin.H{
		"status":       s.Status,
		"transactions": s.Transactions,
		"summary":      s.Summary,
		"breakdown":    s.Breakdown,
		"trend":        s.Trend,
	}
	if s.Err != nil {
		payload["error"] = s.Err.Error()
	}
	return payload
}
