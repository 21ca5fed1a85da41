package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/feed"
	"spendwise/internal/models"
	"spendwise/internal/pagination"
)

// transactionService handles transaction-related business logic. Every
// mutation announces the change on the feed hub so live views reload.
type transactionService struct {
	db  *gorm.DB
	hub *feed.Hub
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, hub *feed.Hub) TransactionServicer {
	return &transactionService{db: db, hub: hub}
}

// validateInput checks the write-boundary invariants: positive amount, a
// known type, and a category belonging to that type's fixed set. The
// aggregation layer relies on these holding and does not re-validate.
func validateInput(in TransactionInput) (models.Category, error) {
	if in.Amount <= 0 {
		return models.Category{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if in.Type != models.TransactionTypeIncome && in.Type != models.TransactionTypeExpense {
		return models.Category{}, apperrors.ErrInvalidTransactionType
	}
	category, ok := models.CategoryByID(in.Type, in.CategoryID)
	if !ok {
		return models.Category{}, apperrors.ErrInvalidCategory
	}
	if in.Date.IsZero() {
		return models.Category{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "date is required")
	}
	return category, nil
}

// CreateTransaction creates a new transaction for a user
func (s *transactionService) CreateTransaction(userID string, in TransactionInput) (*models.Transaction, error) {
	category, err := validateInput(in)
	if err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		UserID:       userID,
		Type:         in.Type,
		Amount:       in.Amount,
		CategoryID:   category.ID,
		CategoryName: category.Name,
		CategoryIcon: category.Icon,
		Date:         in.Date,
		Notes:        in.Notes,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.hub.Notify(feed.Scope{UserID: userID, Collection: feed.CollectionTransactions})
	return transaction, nil
}

// GetUserTransactions retrieves a paginated, filtered list of transactions
// ordered by date descending.
func (s *transactionService) GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)
	base = applyTransactionFilters(base, filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// ListAllTransactions returns the user's entire transaction collection,
// date descending. This is the full-result-set load behind dashboard
// aggregation and live view bindings.
func (s *transactionService) ListAllTransactions(ctx context.Context, userID string) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

func applyTransactionFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.FromDate != nil {
		q = q.Where("date >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("date <= ?", *f.ToDate)
	}
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	return q
}

// GetTransactionByID retrieves a transaction by ID for a specific user
func (s *transactionService) GetTransactionByID(userID, transactionID string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Where("id = ? AND user_id = ?", transactionID, userID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// UpdateTransaction replaces a transaction's fields wholesale. There is no
// partial patch: callers resubmit the complete record, matching the edit
// form's behavior.
func (s *transactionService) UpdateTransaction(userID, transactionID string, in TransactionInput) (*models.Transaction, error) {
	category, err := validateInput(in)
	if err != nil {
		return nil, err
	}

	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return nil, err
	}

	transaction.Type = in.Type
	transaction.Amount = in.Amount
	transaction.CategoryID = category.ID
	transaction.CategoryName = category.Name
	transaction.CategoryIcon = category.Icon
	transaction.Date = in.Date
	transaction.Notes = in.Notes

	if err := s.db.Save(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.hub.Notify(feed.Scope{UserID: userID, Collection: feed.CollectionTransactions})
	return transaction, nil
}

// DeleteTransaction deletes a transaction
func (s *transactionService) DeleteTransaction(userID, transactionID string) error {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.hub.Notify(feed.Scope{UserID: userID, Collection: feed.CollectionTransactions})
	return nil
}
