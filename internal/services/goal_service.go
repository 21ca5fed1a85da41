package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/feed"
	"spendwise/internal/models"
	"spendwise/internal/pagination"
)

// goalService handles financial goal business logic.
type goalService struct {
	db  *gorm.DB
	hub *feed.Hub
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(db *gorm.DB, hub *feed.Hub) GoalServicer {
	return &goalService{db: db, hub: hub}
}

// CreateGoal creates a new financial goal. The current amount is not clamped
// to the target; exceeding a goal is a valid state.
func (s *goalService) CreateGoal(userID, name string, targetAmount, currentAmount float64, targetDate *time.Time) (*models.FinancialGoal, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}
	if targetAmount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must be greater than zero")
	}
	if currentAmount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "current amount cannot be negative")
	}

	goal := &models.FinancialGoal{
		UserID:        userID,
		Name:          name,
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
		TargetDate:    targetDate,
	}

	if err := s.db.Create(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.hub.Notify(feed.Scope{UserID: userID, Collection: feed.CollectionGoals})
	return goal, nil
}

// GetUserGoals retrieves a paginated list of the user's goals.
func (s *goalService) GetUserGoals(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.FinancialGoal], error) {
	page.Defaults()

	base := s.db.Model(&models.FinancialGoal{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var goals []models.FinancialGoal
	if err := base.Scopes(pagination.Paginate(page)).
		Order("created_at DESC").
		Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(goals, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetGoalByID retrieves a goal by ID for a specific user
func (s *goalService) GetGoalByID(userID, goalID string) (*models.FinancialGoal, error) {
	var goal models.FinancialGoal
	if err := s.db.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &goal, nil
}

// UpdateGoal replaces a goal's fields wholesale.
func (s *goalService) UpdateGoal(userID, goalID, name string, targetAmount, currentAmount float64, targetDate *time.Time) (*models.FinancialGoal, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}
	if targetAmount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must be greater than zero")
	}
	if currentAmount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "current amount cannot be negative")
	}

	goal, err := s.GetGoalByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	goal.Name = name
	goal.TargetAmount = targetAmount
	goal.CurrentAmount = currentAmount
	goal.TargetDate = targetDate

	if err := s.db.Save(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.hub.Notify(feed.Scope{UserID: userID, Collection: feed.CollectionGoals})
	return goal, nil
}

// DeleteGoal deletes a goal
func (s *goalService) DeleteGoal(userID, goalID string) error {
	goal, err := s.GetGoalByID(userID, goalID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(goal).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.hub.Notify(feed.Scope{UserID: userID, Collection: feed.CollectionGoals})
	return nil
}
