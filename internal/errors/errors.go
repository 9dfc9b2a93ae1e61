// Package errors provides structured error types for the sitekhata API.
// Service-layer errors use AppError so handlers can render consistent
// responses without leaking internal details.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Record errors.
var (
	ErrIncomeNotFound     = &AppError{Code: "INCOME_NOT_FOUND", Message: "Income record not found", StatusCode: http.StatusNotFound}
	ErrExpenseNotFound    = &AppError{Code: "EXPENSE_NOT_FOUND", Message: "Expense record not found", StatusCode: http.StatusNotFound}
	ErrVendorNotFound     = &AppError{Code: "VENDOR_NOT_FOUND", Message: "Vendor not found", StatusCode: http.StatusNotFound}
	ErrLabourNotFound     = &AppError{Code: "LABOUR_NOT_FOUND", Message: "Labour profile not found", StatusCode: http.StatusNotFound}
	ErrAttendanceNotFound = &AppError{Code: "ATTENDANCE_NOT_FOUND", Message: "Attendance entry not found", StatusCode: http.StatusNotFound}
	ErrPaymentNotFound    = &AppError{Code: "PAYMENT_NOT_FOUND", Message: "Labour payment not found", StatusCode: http.StatusNotFound}
)

// Backup errors.
var (
	ErrInvalidSnapshot = &AppError{Code: "INVALID_SNAPSHOT", Message: "Backup file is not a valid snapshot", StatusCode: http.StatusBadRequest}
)

// Sync errors.
var (
	ErrSyncNotConfigured = &AppError{Code: "SYNC_NOT_CONFIGURED", Message: "No sheet URL is configured in settings", StatusCode: http.StatusBadRequest}
	ErrSyncFailed        = &AppError{Code: "SYNC_FAILED", Message: "Pushing the snapshot to the sheet endpoint failed", StatusCode: http.StatusBadGateway}
)
