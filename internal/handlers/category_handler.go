package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
)

// CategoryHandler serves the fixed category catalog.
type CategoryHandler struct{}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// GetCategories returns the category catalog
// @Summary     Get categories
// @Description Get the fixed category catalog, optionally filtered by transaction type
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       type query string false "Transaction type (income, expense); omit for both sets"
// @Success     200 {object} map[string][]models.Category "Categories grouped by type"
// @Failure     400 {object} ErrorResponse "Invalid type"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	if v := c.Query("type"); v != "" {
		txType := models.TransactionType(v)
		switch txType {
		case models.TransactionTypeIncome, models.TransactionTypeExpense:
			c.JSON(http.StatusOK, gin.H{"categories": models.CategoriesForType(txType)})
		default:
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid type, must be income or expense"))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"income":  models.IncomeCategories,
		"expense": models.ExpenseCategories,
	})
}
