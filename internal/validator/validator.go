// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("payment_mode", validatePaymentMode)
		_ = v.RegisterValidation("income_source", validateIncomeSource)
		_ = v.RegisterValidation("expense_category", validateExpenseCategory)
		_ = v.RegisterValidation("attendance_status", validateAttendanceStatus)
		_ = v.RegisterValidation("payment_type", validatePaymentType)
		_ = v.RegisterValidation("app_language", validateAppLanguage)
	}
}

func validatePaymentMode(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "Cash", "Bank", "UPI", "Check":
		return true
	}
	return false
}

func validateIncomeSource(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "Investment", "Loan", "Donation", "Other":
		return true
	}
	return false
}

func validateExpenseCategory(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "Material", "Labour", "Food", "Transport", "Utility", "Contractor", "Other":
		return true
	}
	return false
}

func validateAttendanceStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "Present", "Absent", "Half-Day":
		return true
	}
	return false
}

func validatePaymentType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "Advance", "Full Payment":
		return true
	}
	return false
}

func validateAppLanguage(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "en", "hi":
		return true
	}
	return false
}
