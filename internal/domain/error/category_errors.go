// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Category sentinel errors.
var (
	ErrCategoryNotFound              = errors.New("category not found")
	ErrCategoryNameExists            = errors.New("category name already exists")
	ErrCategoryNameTooLong           = errors.New("category name too long")
	ErrCategoryInUse                 = errors.New("category is in use by existing expenses")
	ErrNegativeBudget                = errors.New("budget cannot be negative")
	ErrInvalidCategoryType           = errors.New("invalid category type")
	ErrNotAuthorizedToAccessCategory = errors.New("not authorized to access category")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCategoryNameTooLong   CategoryErrorCode = "CAT-010001"
	ErrCodeInvalidCategoryType   CategoryErrorCode = "CAT-010002"
	ErrCodeNegativeBudget        CategoryErrorCode = "CAT-010003"
	ErrCodeMissingCategoryFields CategoryErrorCode = "CAT-010004"

	// Access errors (02XXXX)
	ErrCodeCategoryNotFound      CategoryErrorCode = "CAT-020001"
	ErrCodeNotAuthorizedCategory CategoryErrorCode = "CAT-020002"

	// Conflict errors (03XXXX)
	ErrCodeCategoryNameExists CategoryErrorCode = "CAT-030001"
	ErrCodeCategoryInUse      CategoryErrorCode = "CAT-030002"
)

// CategoryError carries a stable code alongside the message, mirroring
// AuthError.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *CategoryError) Unwrap() error { return e.Err }

func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{Code: code, Message: message, Err: err}
}
