package errors

import (
	"net/http"

	"style/internal/errors"
)

// Kind classifies an error for callers independently of transport.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidInput
	KindConflict
	KindUnauthenticated
	KindForbidden
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "InvalidInput"
	case KindConflict:
		return "Conflict"
	case KindUnauthenticated:
		return "Unauthenticated"
	case KindForbidden:
		return "Forbidden"
	case KindNotFound:
		return "NotFound"
	default:
		return "Internal"
	}
}

// HTTPCode maps the kind to its response status.
func (k Kind) HTTPCode() int {
	switch k {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) Kind() Kind {
	return e.kind
}

func (e *BaseError) HTTPCode() int {
	return e.kind.HTTPCode()
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying details. The predefined error stays untouched,
// so errors.Is against it still matches through Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError sharing the same business code.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Input errors
	ErrValidationFailed = NewBaseError(
		KindInvalidInput,
		"VALIDATION_FAILED",
		"Invalid input data",
		"",
	)

	ErrMissingImages = NewBaseError(
		KindInvalidInput,
		"MISSING_IMAGES",
		"Both upper and lower images are required",
		"",
	)

	ErrNoImagesProvided = NewBaseError(
		KindInvalidInput,
		"NO_IMAGES_PROVIDED",
		"At least one image must be provided",
		"",
	)

	ErrUnsupportedImageType = NewBaseError(
		KindInvalidInput,
		"UNSUPPORTED_IMAGE_TYPE",
		"Only jpeg, png, gif and webp images are allowed",
		"",
	)

	ErrImageTooLarge = NewBaseError(
		KindInvalidInput,
		"IMAGE_TOO_LARGE",
		"Image exceeds the maximum allowed size",
		"",
	)

	// Identity errors
	ErrEmailAlreadyExists = NewBaseError(
		KindConflict,
		"EMAIL_ALREADY_EXISTS",
		"Email is already registered",
		"",
	)

	ErrUsernameAlreadyExists = NewBaseError(
		KindConflict,
		"USERNAME_ALREADY_EXISTS",
		"Username is already taken",
		"",
	)

	ErrUserNotFound = NewBaseError(
		KindNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	// Authentication errors
	ErrInvalidCredentials = NewBaseError(
		KindUnauthenticated,
		"INVALID_CREDENTIALS",
		"Invalid credentials",
		"",
	)

	ErrUnauthenticated = NewBaseError(
		KindUnauthenticated,
		"UNAUTHENTICATED",
		"Authentication required",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		KindInternal,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	// Combination errors
	ErrCombinationNotFound = NewBaseError(
		KindNotFound,
		"COMBINATION_NOT_FOUND",
		"Combination not found",
		"",
	)

	ErrCombinationForbidden = NewBaseError(
		KindForbidden,
		"COMBINATION_FORBIDDEN",
		"You do not have access to this combination",
		"",
	)

	// Preference errors
	ErrPreferencesNotFound = NewBaseError(
		KindNotFound,
		"PREFERENCES_NOT_FOUND",
		"Preferences not found",
		"",
	)

	// Storage errors
	ErrStorageFailed = NewBaseError(
		KindInternal,
		"STORAGE_FAILED",
		"Image storage failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		KindInternal,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		KindNotFound,
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

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) Kind() Kind {
	return KindInternal
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// KindOf classifies err. Anything that is not an AppError is Internal.
func KindOf(err error) Kind {
	if err == nil {
		return KindInternal
	}

	if appErr, ok := errors.AsType[AppError](err); ok {
		return appErr.Kind()
	}

	return KindInternal
}
