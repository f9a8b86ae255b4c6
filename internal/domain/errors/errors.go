// Package errors defines the application error taxonomy and its mapping to
// HTTP status codes. Every use case operation either returns a success value
// or fails with exactly one of these kinds.
package errors

import (
	"net/http"

	"taskboard/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing error message
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error message.
func (e *BaseError) Message() string {
	return e.message
}

// Predefined error kinds. The HTTP layer maps each to a fixed status code and
// a JSON {message} body.
var (
	// Validation: missing or malformed required field.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"invalid input",
	)

	ErrTitleRequired = NewBaseError(
		http.StatusBadRequest,
		"TITLE_REQUIRED",
		"please add a title",
	)

	// Conflict: duplicate unique key.
	ErrEmailAlreadyRegistered = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_REGISTERED",
		"user already exists",
	)

	// Unauthorized: bad login credentials. Deliberately identical message for
	// unknown email and wrong password.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid email or password",
	)

	// Unauthorized: missing, invalid or expired session. One undifferentiated
	// message regardless of cause.
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"not authorized to access this route",
	)

	// Forbidden: authenticated but not the resource owner.
	ErrNotTaskOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_TASK_OWNER",
		"user not authorized",
	)

	ErrTaskNotFound = NewBaseError(
		http.StatusNotFound,
		"TASK_NOT_FOUND",
		"task not found",
	)

	// External verification failure: OAuth ID token invalid or lacking an email.
	ErrGoogleTokenInvalid = NewBaseError(
		http.StatusBadRequest,
		"GOOGLE_TOKEN_INVALID",
		"invalid google token",
	)

	// Internal: unexpected store/infra failure. The underlying detail is
	// logged server-side and never sent to the client.
	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface.
// The wrapped error is preserved for logs; clients only ever see the generic message.
type DatabaseExecuteError struct {
	err error
}

// NewDatabaseExecuteError creates a database-related error.
func NewDatabaseExecuteError(err error) AppError {
	return &DatabaseExecuteError{err: err}
}

// Error implements the error interface.
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code.
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code.
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-facing error message.
func (e *DatabaseExecuteError) Message() string {
	return "internal server error"
}

// Unwrap exposes the underlying database error to errors.Is/As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}
