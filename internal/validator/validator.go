// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"spendwise/internal/currency"
	"spendwise/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("billing_cycle", validateBillingCycle)
		_ = v.RegisterValidation("subscription_status", validateSubscriptionStatus)
		_ = v.RegisterValidation("country_code", validateCountryCode)
		_ = v.RegisterValidation("card_network", validateCardNetwork)
	}
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch models.TransactionType(fl.Field().String()) {
	case models.TransactionTypeIncome, models.TransactionTypeExpense:
		return true
	}
	return false
}

func validateBillingCycle(fl validator.FieldLevel) bool {
	switch models.BillingCycle(fl.Field().String()) {
	case models.BillingCycleDaily, models.BillingCycleWeekly,
		models.BillingCycleMonthly, models.BillingCycleYearly:
		return true
	}
	return false
}

func validateSubscriptionStatus(fl validator.FieldLevel) bool {
	switch models.SubscriptionStatus(fl.Field().String()) {
	case models.SubscriptionStatusActive, models.SubscriptionStatusInactive,
		models.SubscriptionStatusPendingPayment, models.SubscriptionStatusCancelled:
		return true
	}
	return false
}

func validateCountryCode(fl validator.FieldLevel) bool {
	return currency.IsValidCode(fl.Field().String())
}

func validateCardNetwork(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "visa", "mastercard", "amex", "rupay", "discover", "other":
		return true
	}
	return false
}
