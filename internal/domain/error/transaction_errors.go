// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Transaction sentinel errors.
var (
	ErrTransactionNotFound              = errors.New("transaction not found")
	ErrNotAuthorizedToAccessTransaction = errors.New("not authorized to access transaction")
	ErrInvalidTransactionType           = errors.New("invalid transaction type")
	ErrInvalidTransactionDate           = errors.New("invalid transaction date")
	ErrNegativeTransactionAmount        = errors.New("transaction amount cannot be negative")
	ErrEmptyTransactionTitle            = errors.New("transaction title is required")
	ErrTitleTooLong                     = errors.New("title too long")
	ErrDescriptionTooLong               = errors.New("description too long")
	ErrInvalidSortKey                   = errors.New("invalid sort key")
	ErrInvalidDateRange                 = errors.New("invalid date range")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionDate   TransactionErrorCode = "TXN-010002"
	ErrCodeNegativeAmount           TransactionErrorCode = "TXN-010003"
	ErrCodeEmptyTitle               TransactionErrorCode = "TXN-010004"
	ErrCodeTitleTooLong             TransactionErrorCode = "TXN-010005"
	ErrCodeDescriptionTooLong       TransactionErrorCode = "TXN-010006"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010007"
	ErrCodeInvalidSortKey           TransactionErrorCode = "TXN-010008"
	ErrCodeInvalidDateRange         TransactionErrorCode = "TXN-010009"

	// Access errors (02XXXX)
	ErrCodeTransactionNotFound      TransactionErrorCode = "TXN-020001"
	ErrCodeNotAuthorizedTransaction TransactionErrorCode = "TXN-020002"
)

// TransactionError carries a stable code alongside the message, mirroring
// AuthError.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *TransactionError) Unwrap() error { return e.Err }

func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{Code: code, Message: message, Err: err}
}
