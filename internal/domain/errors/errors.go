package errors

import (
	"net/http"

	"storefront/internal/errors"
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
	// Cart-related errors
	ErrInvalidProductID = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PRODUCT_ID",
		"A product id is required",
		"",
	)

	ErrRemoteCartFailed = NewBaseError(
		http.StatusBadGateway,
		"REMOTE_CART_FAILED",
		"We could not update your cart. Please try again.",
		"",
	)

	// Wishlist-related errors
	ErrRemoteWishlistFailed = NewBaseError(
		http.StatusBadGateway,
		"REMOTE_WISHLIST_FAILED",
		"We could not update your wishlist. Please try again.",
		"",
	)

	// Delivery location errors
	ErrPlaceNotFound = NewBaseError(
		http.StatusNotFound,
		"PLACE_NOT_FOUND",
		"We could not find that address",
		"",
	)

	ErrFlowNotOpen = NewBaseError(
		http.StatusConflict,
		"DELIVERY_FLOW_NOT_OPEN",
		"The delivery location dialog is not open",
		"",
	)

	// Session errors
	ErrCredentialRequired = NewBaseError(
		http.StatusUnauthorized,
		"CREDENTIAL_REQUIRED",
		"Please sign in first",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrTooManyRequests = NewBaseError(
		http.StatusTooManyRequests,
		"TOO_MANY_REQUESTS",
		"Too many requests, slow down",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// UpstreamError represents a failed call to an external service, implementing the AppError interface
type UpstreamError struct {
	base *BaseError
	err  error
}

// NewUpstreamError wraps err so the caller sees base's code and message.
func NewUpstreamError(base *BaseError, err error) AppError {
	return &UpstreamError{base: base, err: err}
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	return errors.Wrap(e.err, e.base.message).Error()
}

// Unwrap exposes the underlying failure
func (e *UpstreamError) Unwrap() error {
	return e.err
}

// Is matches the base error, so errors.Is(err, ErrRemoteCartFailed) holds
func (e *UpstreamError) Is(target error) bool {
	return target == e.base
}

// HTTPCode returns the HTTP status code
func (e *UpstreamError) HTTPCode() int {
	return e.base.httpCode
}

// ErrorCode returns the business error code
func (e *UpstreamError) ErrorCode() string {
	return e.base.errorCode
}

// Message returns the user-friendly error message
func (e *UpstreamError) Message() string {
	return e.base.message
}

// Details returns detailed error information
func (e *UpstreamError) Details() string {
	return e.err.Error()
}

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

// Unwrap exposes the driver error
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
