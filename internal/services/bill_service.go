package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
	"spendwise/internal/pagination"
)

// billService handles bill business logic.
type billService struct {
	db            *gorm.DB
	notifications NotificationServicer
}

// NewBillService creates a new BillServicer. Marking a bill paid emits an
// in-app notification through the notification service.
func NewBillService(db *gorm.DB, notifications NotificationServicer) BillServicer {
	return &billService{db: db, notifications: notifications}
}

// CreateBill creates a new unpaid bill.
func (s *billService) CreateBill(userID, name string, amount float64, dueDate time.Time) (*models.Bill, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}

	bill := &models.Bill{
		UserID:  userID,
		Name:    name,
		Amount:  amount,
		DueDate: dueDate,
	}

	if err := s.db.Create(bill).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return bill, nil
}

// GetUserBills retrieves a paginated list of the user's bills ordered by due
// date, optionally filtered by paid state.
func (s *billService) GetUserBills(userID string, page pagination.PageRequest, paid *bool) (*pagination.PageResponse[models.Bill], error) {
	page.Defaults()

	base := s.db.Model(&models.Bill{}).Where("user_id = ?", userID)
	if paid != nil {
		base = base.Where("paid = ?", *paid)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var bills []models.Bill
	if err := base.Scopes(pagination.Paginate(page)).
		Order("due_date ASC").
		Find(&bills).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(bills, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetBillByID retrieves a bill by ID for a specific user
func (s *billService) GetBillByID(userID, billID string) (*models.Bill, error) {
	var bill models.Bill
	if err := s.db.Where("id = ? AND user_id = ?", billID, userID).First(&bill).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBillNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &bill, nil
}

// UpdateBill replaces a bill's fields wholesale. Transitioning to paid
// notifies the user.
func (s *billService) UpdateBill(userID, billID, name string, amount float64, dueDate time.Time, paid bool) (*models.Bill, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}

	bill, err := s.GetBillByID(userID, billID)
	if err != nil {
		return nil, err
	}

	wasPaid := bill.Paid

	bill.Name = name
	bill.Amount = amount
	bill.DueDate = dueDate
	bill.Paid = paid

	if err := s.db.Save(bill).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if paid && !wasPaid {
		// Best effort; a failed notification never fails the update.
		_, _ = s.notifications.Notify(userID, "Bill \""+bill.Name+"\" marked as paid")
	}
	return bill, nil
}

// DeleteBill deletes a bill
func (s *billService) DeleteBill(userID, billID string) error {
	bill, err := s.GetBillByID(userID, billID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(bill).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
