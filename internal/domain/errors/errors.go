package errors

import (
	"net/http"

	"recipefinder/internal/errors"
)

// Kind classifies an error independently of its HTTP rendering.
type Kind int

const (
	// KindInternal is any failure that is not classified further.
	KindInternal Kind = iota
	// KindNotFound means a point lookup found no row.
	KindNotFound
	// KindConstraintViolation means a uniqueness invariant was violated on write.
	KindConstraintViolation
	// KindQueryFailure means the store failed to execute a statement.
	KindQueryFailure
	// KindInvalidInput means the caller supplied unusable arguments.
	KindInvalidInput
	// KindUnauthenticated means the caller is not identified.
	KindUnauthenticated
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindConstraintViolation:
		return "ConstraintViolation"
	case KindQueryFailure:
		return "QueryFailure"
	case KindInvalidInput:
		return "InvalidInput"
	case KindUnauthenticated:
		return "Unauthenticated"
	default:
		return "Internal"
	}
}

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Error taxonomy
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

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Kind returns the error classification
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

// Is matches two BaseErrors sharing the same business code, so copies made by
// WithDetails still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
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
	// Recipe-related errors
	ErrRecipeNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"RECIPE_NOT_FOUND",
		"Recipe not found",
		"",
	)

	ErrRecipeNameTaken = NewBaseError(
		KindConstraintViolation,
		http.StatusConflict,
		"RECIPE_NAME_TAKEN",
		"A recipe with this name already exists",
		"",
	)

	ErrInvalidFilter = NewBaseError(
		KindInvalidInput,
		http.StatusBadRequest,
		"INVALID_FILTER",
		"Invalid recipe filter",
		"",
	)

	// Ingredient-related errors
	ErrIngredientNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"INGREDIENT_NOT_FOUND",
		"Ingredient not found",
		"",
	)

	ErrIngredientNameTaken = NewBaseError(
		KindConstraintViolation,
		http.StatusConflict,
		"INGREDIENT_NAME_TAKEN",
		"An ingredient with this name already exists",
		"",
	)

	ErrIngredientAlreadyUsed = NewBaseError(
		KindConstraintViolation,
		http.StatusConflict,
		"INGREDIENT_ALREADY_USED",
		"The recipe already uses this ingredient",
		"",
	)

	// Favorite-related errors
	ErrFavoriteNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"FAVORITE_NOT_FOUND",
		"Favorite not found",
		"",
	)

	ErrFavoriteExists = NewBaseError(
		KindConstraintViolation,
		http.StatusConflict,
		"FAVORITE_EXISTS",
		"The recipe is already a favorite",
		"",
	)

	// Comment-related errors
	ErrCommentNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"COMMENT_NOT_FOUND",
		"Comment not found",
		"",
	)

	// User-related errors
	ErrUserNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		KindConstraintViolation,
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"This user is already registered",
		"",
	)

	// Image-related errors
	ErrImageNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"IMAGE_NOT_FOUND",
		"Image not found",
		"",
	)

	ErrImageTooLarge = NewBaseError(
		KindInvalidInput,
		http.StatusRequestEntityTooLarge,
		"IMAGE_TOO_LARGE",
		"Image exceeds the maximum allowed size",
		"",
	)

	ErrImageStorageFailed = NewBaseError(
		KindInternal,
		http.StatusBadGateway,
		"IMAGE_STORAGE_FAILED",
		"Image storage is unavailable",
		"",
	)

	// Identity-related errors
	ErrUnauthenticated = NewBaseError(
		KindUnauthenticated,
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Sign in to perform this action",
		"",
	)

	ErrInvalidToken = NewBaseError(
		KindUnauthenticated,
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid or expired token",
		"",
	)

	// Generic constraint error for writes that do not map to a specific invariant
	ErrConstraintViolation = NewBaseError(
		KindConstraintViolation,
		http.StatusConflict,
		"CONSTRAINT_VIOLATION",
		"The change conflicts with existing data",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		KindInvalidInput,
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		KindQueryFailure,
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal error",
		"",
	)
)

// QueryFailureError represents a store failure while executing a statement, implementing the AppError interface
type QueryFailureError struct {
	err     error
	details string
}

// NewQueryFailure creates a query failure error
func NewQueryFailure(err error, details string) AppError {
	return &QueryFailureError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *QueryFailureError) Error() string {
	return errors.Wrap(e.err, "query failed: "+e.details).Error()
}

// Unwrap exposes the store error
func (e *QueryFailureError) Unwrap() error {
	return e.err
}

// Kind returns KindQueryFailure
func (e *QueryFailureError) Kind() Kind {
	return KindQueryFailure
}

// HTTPCode returns the HTTP status code
func (e *QueryFailureError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *QueryFailureError) ErrorCode() string {
	return "QUERY_FAILED"
}

// Message returns the user-friendly error message
func (e *QueryFailureError) Message() string {
	return "Database query failed"
}

// Details returns detailed error information
func (e *QueryFailureError) Details() string {
	return e.details
}

// KindOf returns the kind of the first AppError in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindInternal
}

// IsNotFound reports whether err is a NotFound error.
func IsNotFound(err error) bool {
	return err != nil && KindOf(err) == KindNotFound
}

// IsConstraintViolation reports whether err is a ConstraintViolation error.
func IsConstraintViolation(err error) bool {
	return err != nil && KindOf(err) == KindConstraintViolation
}

// IsQueryFailure reports whether err is a QueryFailure error.
func IsQueryFailure(err error) bool {
	return err != nil && KindOf(err) == KindQueryFailure
}
