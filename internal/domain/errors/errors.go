package errors

import (
	"net/http"

	"dropzone/internal/errors"
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

// Is matches any BaseError with the same error code, so values built by WithDetails
// still satisfy errors.Is against the predefined error.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)

	return ok && other.errorCode == e.errorCode
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

// Predefined errors, grouped by the resource they describe.
var (
	ErrNoDropPointsFound  = NewBaseError(http.StatusNotFound, "NO_DROP_POINTS_FOUND", "No active drop points within the search radius", "")
	ErrAssignmentNotFound = NewBaseError(http.StatusNotFound, "ASSIGNMENT_NOT_FOUND", "No assignment exists for this listing", "")
	ErrAssignmentConflict = NewBaseError(http.StatusConflict, "ASSIGNMENT_CONFLICT", "This listing already has an assignment", "")
	ErrUpdateFailed       = NewBaseError(http.StatusInternalServerError, "UPDATE_FAILED", "Assignment could not be read back after update", "")

	ErrDropPointNotFound = NewBaseError(http.StatusNotFound, "DROP_POINT_NOT_FOUND", "Drop point not found", "")

	ErrInvalidPickupPass        = NewBaseError(http.StatusUnauthorized, "INVALID_PICKUP_PASS", "Pickup pass is invalid or expired", "")
	ErrPickupPassWrongDropPoint = NewBaseError(http.StatusForbidden, "PICKUP_PASS_WRONG_DROP_POINT", "Pickup pass was issued for a different drop point", "")
	ErrPickupWindowClosed       = NewBaseError(http.StatusGone, "PICKUP_WINDOW_CLOSED", "The pickup window for this assignment has closed", "")

	ErrValidationFailed = NewBaseError(http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed", "")
	ErrInternalError    = NewBaseError(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error, please try again later", "")
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

// Unwrap exposes the underlying database error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
