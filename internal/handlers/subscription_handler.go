package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
	"spendwise/internal/pagination"
	"spendwise/internal/services"
)

// SubscriptionHandler handles recurring subscription requests.
type SubscriptionHandler struct {
	subscriptionService services.SubscriptionServicer
	auditService        services.AuditServicer
}

// NewSubscriptionHandler creates a new SubscriptionHandler.
func NewSubscriptionHandler(subscriptionService services.SubscriptionServicer, auditService services.AuditServicer) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService, auditService: auditService}
}

// CreateSubscriptionRequest represents the payload for creating a subscription.
// New subscriptions always start active.
type CreateSubscriptionRequest struct {
	Name            string              `json:"name" binding:"required,max=100"`
	Amount          float64             `json:"amount" binding:"required,gt=0"`
	BillingCycle    models.BillingCycle `json:"billing_cycle" binding:"required,billing_cycle"`
	NextPaymentDate string              `json:"next_payment_date" binding:"required"`
	Category        string              `json:"category" binding:"max=100"`
	Notes           string              `json:"notes" binding:"max=500"`
}

// UpdateSubscriptionRequest represents the payload for replacing a subscription.
type UpdateSubscriptionRequest struct {
	Name            string                    `json:"name" binding:"required,max=100"`
	Amount          float64                   `json:"amount" binding:"required,gt=0"`
	BillingCycle    models.BillingCycle       `json:"billing_cycle" binding:"required,billing_cycle"`
	NextPaymentDate string                    `json:"next_payment_date" binding:"required"`
	Category        string                    `json:"category" binding:"max=100"`
	Notes           string                    `json:"notes" binding:"max=500"`
	Status          models.SubscriptionStatus `json:"status" binding:"required,subscription_status"`
}

// CreateSubscription handles adding a new subscription
// @Summary     Create a subscription
// @Description Track a new recurring subscription
// @Tags        subscriptions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateSubscriptionRequest true "Subscription details"
// @Success     201 {object} models.Subscription "Subscription created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /subscriptions [post]
func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	nextPayment, err := parseFlexibleTime(req.NextPaymentDate)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	sub, err := h.subscriptionService.CreateSubscription(userID, req.Name, req.Amount, req.BillingCycle, nextPayment, req.Category, req.Notes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_SUBSCRIPTION", "subscription", sub.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "billing_cycle": req.BillingCycle})

	c.JSON(http.StatusCreated, gin.H{"subscription": sub})
}

// GetUserSubscriptions handles listing the user's subscriptions
// @Summary     Get user subscriptions
// @Description Get a paginated list of the authenticated user's subscriptions, ordered by next payment date
// @Tags        subscriptions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Param       status    query string false "Filter by status (active, inactive, pending_payment, cancelled)"
// @Success     200 {object} pagination.PageResponse[models.Subscription] "Paginated subscriptions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /subscriptions [get]
func (h *SubscriptionHandler) GetUserSubscriptions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var status *models.SubscriptionStatus
	if v := c.Query("status"); v != "" {
		s := models.SubscriptionStatus(v)
		switch s {
		case models.SubscriptionStatusActive, models.SubscriptionStatusInactive,
			models.SubscriptionStatusPendingPayment, models.SubscriptionStatusCancelled:
			status = &s
		default:
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid status"))
			return
		}
	}

	result, err := h.subscriptionService.GetUserSubscriptions(userID, page, status)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateSubscription handles replacing an existing subscription
// @Summary     Update subscription
// @Description Replace an existing subscription's fields wholesale, including its status
// @Tags        subscriptions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                    true "Subscription ID"
// @Param       request body UpdateSubscriptionRequest true "Full subscription fields"
// @Success     200 {object} models.Subscription "Updated subscription"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Subscription not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /subscriptions/{id} [put]
func (h *SubscriptionHandler) UpdateSubscription(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	subID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var nextPayment time.Time
	nextPayment, err = parseFlexibleTime(req.NextPaymentDate)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	sub, err := h.subscriptionService.UpdateSubscription(userID, subID, req.Name, req.Amount, req.BillingCycle, nextPayment, req.Category, req.Notes, req.Status)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_SUBSCRIPTION", "subscription", subID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"subscription": sub})
}

// DeleteSubscription handles the deletion of a subscription
// @Summary     Delete subscription
// @Description Delete a subscription by ID
// @Tags        subscriptions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Subscription ID"
// @Success     200 {object} MessageResponse "Subscription deleted"
// @Failure     400 {object} ErrorResponse "Invalid subscription ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Subscription not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /subscriptions/{id} [delete]
func (h *SubscriptionHandler) DeleteSubscription(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	subID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.subscriptionService.DeleteSubscription(userID, subID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_SUBSCRIPTION", "subscription", subID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Subscription deleted successfully"})
}
