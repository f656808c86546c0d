// Package error defines domain-specific errors for the Pocket Ledger application.
package error

import "errors"

// Account domain errors.
var (
	// ErrAccountNotFound is returned when the account does not exist.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountNameRequired is returned when the account name is empty.
	ErrAccountNameRequired = errors.New("account name is required")

	// ErrInvalidAccountKey is returned when the account key is not cash, bank or wallet.
	ErrInvalidAccountKey = errors.New("account key must be: cash, bank or wallet")
)

// AccountErrorCode defines error codes for account errors.
// Format: ACC-XXYYYY where XX is category and YYYY is specific error.
type AccountErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeAccountNameRequired AccountErrorCode = "ACC-010001"
	ErrCodeInvalidAccountKey   AccountErrorCode = "ACC-010002"

	// Not-found errors (02XXXX)
	ErrCodeAccountNotFound AccountErrorCode = "ACC-020001"

	// Internal errors (99XXXX)
	ErrCodeAccountInternalError AccountErrorCode = "ACC-990001"
)

// AccountError represents an account error with code and message.
type AccountError struct {
	Code    AccountErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AccountError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AccountError) Unwrap() error {
	return e.Err
}

// NewAccountError creates a new AccountError with the given code and message.
func NewAccountError(code AccountErrorCode, message string, err error) *AccountError {
	return &AccountError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
