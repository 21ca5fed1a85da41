package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
	"spendwise/internal/pagination"
)

// investmentService handles investment business logic.
type investmentService struct {
	db *gorm.DB
}

// NewInvestmentService creates a new InvestmentServicer.
func NewInvestmentService(db *gorm.DB) InvestmentServicer {
	return &investmentService{db: db}
}

// CreateInvestment records a new holding. The current value starts equal to
// the amount invested.
func (s *investmentService) CreateInvestment(userID, name string, amountInvested float64, purchaseDate time.Time, notes string) (*models.Investment, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}
	if amountInvested <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount invested must be greater than zero")
	}

	inv := &models.Investment{
		UserID:         userID,
		Name:           name,
		AmountInvested: amountInvested,
		CurrentValue:   amountInvested,
		PurchaseDate:   purchaseDate,
		Notes:          notes,
	}

	if err := s.db.Create(inv).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return inv, nil
}

// GetUserInvestments retrieves a paginated list of the user's investments.
func (s *investmentService) GetUserInvestments(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Investment], error) {
	page.Defaults()

	base := s.db.Model(&models.Investment{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var investments []models.Investment
	if err := base.Scopes(pagination.Paginate(page)).
		Order("purchase_date DESC").
		Find(&investments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(investments, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetInvestmentByID retrieves an investment by ID for a specific user
func (s *investmentService) GetInvestmentByID(userID, investmentID string) (*models.Investment, error) {
	var inv models.Investment
	if err := s.db.Where("id = ? AND user_id = ?", investmentID, userID).First(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvestmentNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &inv, nil
}

// UpdateInvestmentValue updates the current value of a holding.
func (s *investmentService) UpdateInvestmentValue(userID, investmentID string, currentValue float64) (*models.Investment, error) {
	if currentValue < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "current value cannot be negative")
	}

	inv, err := s.GetInvestmentByID(userID, investmentID)
	if err != nil {
		return nil, err
	}

	inv.CurrentValue = currentValue
	if err := s.db.Save(inv).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return inv, nil
}

// DeleteInvestment deletes an investment
func (s *investmentService) DeleteInvestment(userID, investmentID string) error {
	inv, err := s.GetInvestmentByID(userID, investmentID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(inv).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
