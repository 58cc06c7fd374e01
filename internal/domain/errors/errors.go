// Package errors defines the application error taxonomy shared between the
// use cases and the HTTP delivery layer.
package errors

import (
	"net/http"

	"abgad/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of the error with detailed error information attached
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// ValidationError is an AppError carrying per-field validation messages.
// It always renders as HTTP 422.
type ValidationError struct {
	BaseError
	fields map[string]string
}

// NewValidationError creates a validation error with per-field messages.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{
		BaseError: *NewBaseError(
			http.StatusUnprocessableEntity,
			"VALIDATION_ERROR",
			"The given data was invalid.",
			"",
		),
		fields: fields,
	}
}

// NewFieldValidationError creates a validation error for a single field.
func NewFieldValidationError(field, message string) *ValidationError {
	return NewValidationError(map[string]string{field: message})
}

// Fields returns the per-field validation messages.
func (e *ValidationError) Fields() map[string]string {
	return e.fields
}

// Predefined error types
var (
	// Store-related errors
	ErrStoreNotFound = NewBaseError(
		http.StatusNotFound,
		"STORE_NOT_FOUND",
		"Store not found",
		"",
	)

	ErrStoreNotVisible = NewBaseError(
		http.StatusNotFound,
		"STORE_NOT_VISIBLE",
		"Store not found",
		"this store is not publicly visible",
	)

	ErrStoreCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"STORE_CREATION_FAILED",
		"Failed to register store",
		"",
	)

	ErrDuplicateTradingName = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_TRADING_NAME",
		"A store with this trading name already exists",
		"",
	)

	// Photo-related errors
	ErrPhotoCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"PHOTO_CREATION_FAILED",
		"Failed to attach photo",
		"",
	)
)

// NewDatabaseQueryError creates a database read error wrapping the cause.
func NewDatabaseQueryError(err error, details string) *BaseError {
	base := NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_QUERY_ERROR",
		"Database query failed",
		details,
	)
	if err != nil {
		base.details = details + ": " + err.Error()
	}

	return base
}

// NewDatabaseExecuteError creates a database write error wrapping the cause.
func NewDatabaseExecuteError(err error, details string) *BaseError {
	base := NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_EXECUTE_ERROR",
		"Database operation failed",
		details,
	)
	if err != nil {
		base.details = details + ": " + err.Error()
	}

	return base
}
