package errors

import (
	"net/http"

	"tracenfind/internal/errors"
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

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Notification-related errors
	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"Notification not found",
		"",
	)

	ErrNotificationWriteFailed = NewBaseError(
		http.StatusInternalServerError,
		"NOTIFICATION_WRITE_FAILED",
		"Failed to record notification",
		"",
	)

	// Device-related errors
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Device not found",
		"",
	)

	ErrInvalidSnapshot = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SNAPSHOT",
		"Device snapshot is malformed",
		"",
	)

	ErrInvalidSecurityAction = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SECURITY_ACTION",
		"Unsupported security action",
		"",
	)

	// Geofence-related errors
	ErrZoneNotFound = NewBaseError(
		http.StatusNotFound,
		"ZONE_NOT_FOUND",
		"Geofence not found",
		"",
	)

	ErrInvalidZone = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ZONE",
		"Geofence definition is invalid",
		"",
	)

	// Push token errors
	ErrPushTokenNotFound = NewBaseError(
		http.StatusNotFound,
		"PUSH_TOKEN_NOT_FOUND",
		"Push token not found",
		"",
	)

	// Store errors
	ErrStoreUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"STORE_UNAVAILABLE",
		"Data store is temporarily unavailable",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// StoreUnavailableError is a failed watch, query or write against the
// document store. It is never fatal: the next snapshot retries naturally.
type StoreUnavailableError struct {
	err     error
	details string
}

// NewStoreUnavailableError creates a transient store error
func NewStoreUnavailableError(err error, details string) AppError {
	return &StoreUnavailableError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StoreUnavailableError) Error() string {
	return errors.Wrap(e.err, e.details).Error()
}

// Unwrap exposes the store error.
func (e *StoreUnavailableError) Unwrap() error {
	return e.err
}

// Is lets errors.Is match against ErrStoreUnavailable.
func (e *StoreUnavailableError) Is(target error) bool {
	return target == ErrStoreUnavailable
}

// HTTPCode returns the HTTP status code
func (e *StoreUnavailableError) HTTPCode() int {
	return ErrStoreUnavailable.HTTPCode()
}

// ErrorCode returns the business error code
func (e *StoreUnavailableError) ErrorCode() string {
	return ErrStoreUnavailable.ErrorCode()
}

// Message returns the user-friendly error message
func (e *StoreUnavailableError) Message() string {
	return ErrStoreUnavailable.Message()
}

// Details returns detailed error information
func (e *StoreUnavailableError) Details() string {
	return e.details
}
