package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
	"spendwise/internal/pagination"
)

// subscriptionService handles subscription business logic.
type subscriptionService struct {
	db *gorm.DB
}

// NewSubscriptionService creates a new SubscriptionServicer.
func NewSubscriptionService(db *gorm.DB) SubscriptionServicer {
	return &subscriptionService{db: db}
}

// CreateSubscription creates a new subscription in the active state.
func (s *subscriptionService) CreateSubscription(userID, name string, amount float64, cycle models.BillingCycle, nextPayment time.Time, category, notes string) (*models.Subscription, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}

	sub := &models.Subscription{
		UserID:          userID,
		Name:            name,
		Amount:          amount,
		BillingCycle:    cycle,
		NextPaymentDate: nextPayment,
		Category:        category,
		Notes:           notes,
		Status:          models.SubscriptionStatusActive,
	}

	if err := s.db.Create(sub).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return sub, nil
}

// GetUserSubscriptions retrieves a paginated list of the user's
// subscriptions, optionally filtered by status.
func (s *subscriptionService) GetUserSubscriptions(userID string, page pagination.PageRequest, status *models.SubscriptionStatus) (*pagination.PageResponse[models.Subscription], error) {
	page.Defaults()

	base := s.db.Model(&models.Subscription{}).Where("user_id = ?", userID)
	if status != nil {
		base = base.Where("status = ?", *status)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var subs []models.Subscription
	if err := base.Scopes(pagination.Paginate(page)).
		Order("next_payment_date ASC").
		Find(&subs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(subs, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetSubscriptionByID retrieves a subscription by ID for a specific user
func (s *subscriptionService) GetSubscriptionByID(userID, subscriptionID string) (*models.Subscription, error) {
	var sub models.Subscription
	if err := s.db.Where("id = ? AND user_id = ?", subscriptionID, userID).First(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSubscriptionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &sub, nil
}

// UpdateSubscription replaces a subscription's fields wholesale.
func (s *subscriptionService) UpdateSubscription(userID, subscriptionID, name string, amount float64, cycle models.BillingCycle, nextPayment time.Time, category, notes string, status models.SubscriptionStatus) (*models.Subscription, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}

	sub, err := s.GetSubscriptionByID(userID, subscriptionID)
	if err != nil {
		return nil, err
	}

	sub.Name = name
	sub.Amount = amount
	sub.BillingCycle = cycle
	sub.NextPaymentDate = nextPayment
	sub.Category = category
	sub.Notes = notes
	sub.Status = status

	if err := s.db.Save(sub).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return sub, nil
}

// DeleteSubscription deletes a subscription
func (s *subscriptionService) DeleteSubscription(userID, subscriptionID string) error {
	sub, err := s.GetSubscriptionByID(userID, subscriptionID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(sub).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
