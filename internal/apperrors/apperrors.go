// Package apperrors provides structured application errors with stable
// codes and an HTTP status mapping.
package apperrors

import "fmt"

// Standard error codes for HTTP responses
const (
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeInternal      = "INTERNAL_ERROR"
	ErrCodeUnauthorized  = "UNAUTHORIZED"
	ErrCodeForbidden     = "FORBIDDEN"
	ErrCodeBadRequest    = "BAD_REQUEST"
	ErrCodeConflict      = "CONFLICT"
)

// ErrorCodeToHTTPStatus maps error codes to HTTP status codes.
var ErrorCodeToHTTPStatus = map[string]int{
	ErrCodeNotFound:      404,
	ErrCodeAlreadyExists: 409,
	ErrCodeValidation:    400,
	ErrCodeInternal:      500,
	ErrCodeUnauthorized:  401,
	ErrCodeForbidden:     403,
	ErrCodeBadRequest:    400,
	ErrCodeConflict:      409,
}

// GetHTTPStatus returns the HTTP status code for the given error code.
// Unknown codes map to 500.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeToHTTPStatus[code]; ok {
		return status
	}
	return 500
}

// AppError is a structured application error with a code, message, and
// optional details. It implements the error interface.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Cause   error  `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithCause attaches a cause and returns the same error for chaining
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// New creates a new AppError with the given code, message, and details
func New(code, message, details string) *AppError {
	return &AppError{Code: code, Message: message, Details: details}
}

// NotFound creates a new not found error
func NotFound(message, details string) *AppError {
	return New(ErrCodeNotFound, message, details)
}

// AlreadyExists creates a new already exists error
func AlreadyExists(message, details string) *AppError {
	return New(ErrCodeAlreadyExists, message, details)
}

// Validation creates a new validation error
func Validation(message, details string) *AppError {
	return New(ErrCodeValidation, message, details)
}

// Internal creates a new internal error
func Internal(message, details string) *AppError {
	return New(ErrCodeInternal, message, details)
}

// Unauthorized creates a new unauthorized error
func Unauthorized(message, details string) *AppError {
	return New(ErrCodeUnauthorized, message, details)
}

// BadRequest creates a new bad request error
func BadRequest(message, details string) *AppError {
	return New(ErrCodeBadRequest, message, details)
}

// Conflict creates a new conflict error
func Conflict(message, details string) *AppError {
	return New(ErrCodeConflict, message, details)
}

// AsAppError attempts to convert an error to an AppError.
// Returns nil if the error is not an AppError.
func AsAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return nil
}
