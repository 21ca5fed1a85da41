package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
	"spendwise/internal/pagination"
)

// cardService handles card business logic.
type cardService struct {
	db *gorm.DB
}

// NewCardService creates a new CardServicer.
func NewCardService(db *gorm.DB) CardServicer {
	return &cardService{db: db}
}

func validateCardFields(name, lastFour string, expiryMonth int) error {
	if name == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}
	if len(lastFour) != 4 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "last four digits are required")
	}
	if expiryMonth < 1 || expiryMonth > 12 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "expiry month must be between 1 and 12")
	}
	return nil
}

// CreateCard stores a new card. Only the last four digits are accepted;
// full card numbers are never persisted.
func (s *cardService) CreateCard(userID, name, lastFour, network string, expiryMonth, expiryYear int) (*models.Card, error) {
	if err := validateCardFields(name, lastFour, expiryMonth); err != nil {
		return nil, err
	}

	card := &models.Card{
		UserID:      userID,
		Name:        name,
		LastFour:    lastFour,
		Network:     network,
		ExpiryMonth: expiryMonth,
		ExpiryYear:  expiryYear,
	}

	if err := s.db.Create(card).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return card, nil
}

// GetUserCards retrieves a paginated list of the user's cards.
func (s *cardService) GetUserCards(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Card], error) {
	page.Defaults()

	base := s.db.Model(&models.Card{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var cards []models.Card
	if err := base.Scopes(pagination.Paginate(page)).
		Order("created_at DESC").
		Find(&cards).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(cards, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetCardByID retrieves a card by ID for a specific user
func (s *cardService) GetCardByID(userID, cardID string) (*models.Card, error) {
	var card models.Card
	if err := s.db.Where("id = ? AND user_id = ?", cardID, userID).First(&card).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCardNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &card, nil
}

// UpdateCard replaces a card's fields wholesale.
func (s *cardService) UpdateCard(userID, cardID, name, lastFour, network string, expiryMonth, expiryYear int) (*models.Card, error) {
	if err := validateCardFields(name, lastFour, expiryMonth); err != nil {
		return nil, err
	}

	card, err := s.GetCardByID(userID, cardID)
	if err != nil {
		return nil, err
	}

	card.Name = name
	card.LastFour = lastFour
	card.Network = network
	card.ExpiryMonth = expiryMonth
	card.ExpiryYear = expiryYear

	if err := s.db.Save(card).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return card, nil
}

// DeleteCard deletes a card
func (s *cardService) DeleteCard(userID, cardID string) error {
	card, err := s.GetCardByID(userID, cardID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(card).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
