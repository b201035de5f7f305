package errors

import (
	"net/http"

	"sews/internal/errors"
)

// Kind is the coarse failure category callers branch on.
type Kind string

const (
	KindInvalidInput          Kind = "INVALID_INPUT"
	KindDuplicateIdentity     Kind = "DUPLICATE_IDENTITY"
	KindInvalidCredentials    Kind = "INVALID_CREDENTIALS"
	KindAccountInactive       Kind = "ACCOUNT_INACTIVE"
	KindServiceUnavailable    Kind = "SERVICE_UNAVAILABLE"
	KindInternal              Kind = "INTERNAL"
	KindTokenExpired          Kind = "TOKEN_EXPIRED"
	KindTokenMalformed        Kind = "TOKEN_MALFORMED"
	KindTokenSignatureInvalid Kind = "TOKEN_SIGNATURE_INVALID"
	KindUnauthenticated       Kind = "UNAUTHENTICATED"
	KindForbidden             Kind = "FORBIDDEN"
	KindNotFound              Kind = "NOT_FOUND"
	KindRateLimited           Kind = "RATE_LIMITED"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Failure category
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same business code, so copies made by
// WithDetails still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Kind returns the failure category
func (e *BaseError) Kind() Kind {
	return e.kind
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
		kind:      e.kind,
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Input errors
	ErrValidationFailed = NewBaseError(
		KindInvalidInput,
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid input",
		"",
	)

	ErrCredentialsRequired = NewBaseError(
		KindInvalidInput,
		http.StatusBadRequest,
		"CREDENTIALS_REQUIRED",
		"Identifier and password are required",
		"",
	)

	ErrInvalidIdentifier = NewBaseError(
		KindInvalidInput,
		http.StatusBadRequest,
		"INVALID_IDENTIFIER",
		"Invalid identifier format",
		"",
	)

	// Registration errors
	ErrUsernameExists = NewBaseError(
		KindDuplicateIdentity,
		http.StatusConflict,
		"USERNAME_EXISTS",
		"Username already exists",
		"",
	)

	ErrEmailExists = NewBaseError(
		KindDuplicateIdentity,
		http.StatusConflict,
		"EMAIL_EXISTS",
		"Email already exists",
		"",
	)

	ErrNationalIDExists = NewBaseError(
		KindDuplicateIdentity,
		http.StatusConflict,
		"NATIONAL_ID_EXISTS",
		"National ID number already exists",
		"",
	)

	ErrIdentityExists = NewBaseError(
		KindDuplicateIdentity,
		http.StatusConflict,
		"IDENTITY_EXISTS",
		"Account already exists",
		"",
	)

	// Authentication errors
	ErrInvalidCredentials = NewBaseError(
		KindInvalidCredentials,
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid credentials",
		"",
	)

	ErrAccountInactive = NewBaseError(
		KindAccountInactive,
		http.StatusForbidden,
		"ACCOUNT_INACTIVE",
		"Account is inactive",
		"",
	)

	ErrTooManyAttempts = NewBaseError(
		KindRateLimited,
		http.StatusTooManyRequests,
		"TOO_MANY_ATTEMPTS",
		"Too many login attempts, please try again later",
		"",
	)

	ErrUnauthenticated = NewBaseError(
		KindUnauthenticated,
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Authentication required",
		"",
	)

	// Token errors
	ErrTokenExpired = NewBaseError(
		KindTokenExpired,
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"Token has expired",
		"",
	)

	ErrTokenMalformed = NewBaseError(
		KindTokenMalformed,
		http.StatusUnauthorized,
		"TOKEN_MALFORMED",
		"Token is malformed",
		"",
	)

	ErrTokenSignatureInvalid = NewBaseError(
		KindTokenSignatureInvalid,
		http.StatusUnauthorized,
		"TOKEN_SIGNATURE_INVALID",
		"Token signature is invalid",
		"",
	)

	ErrTokenIssueFailed = NewBaseError(
		KindServiceUnavailable,
		http.StatusServiceUnavailable,
		"TOKEN_ISSUE_FAILED",
		"Authentication service temporarily unavailable",
		"",
	)

	// Lookup errors
	ErrCustomerNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"CUSTOMER_NOT_FOUND",
		"Customer not found",
		"",
	)

	ErrTailorNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"TAILOR_NOT_FOUND",
		"Tailor not found",
		"",
	)

	ErrClothingStyleNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"CLOTHING_STYLE_NOT_FOUND",
		"Clothing style not found",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"An unexpected error occurred",
		"",
	)

	ErrForbidden = NewBaseError(
		KindForbidden,
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// NewValidationError reports rejected input with a human readable description.
func NewValidationError(details string) error {
	return ErrValidationFailed.WithDetails(details)
}

// KindOf classifies err. Anything that is not an AppError counts as Internal.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}

	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindInternal
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

// Kind returns the failure category
func (e *DatabaseExecuteError) Kind() Kind {
	return KindInternal
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
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
