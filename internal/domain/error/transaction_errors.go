// Package error defines domain-specific errors for the Pocket Ledger application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrInvalidTransactionType is returned when the type is not income, expense or transfer.
	ErrInvalidTransactionType = errors.New("transaction type must be: income, expense or transfer")

	// ErrNonPositiveAmount is returned when the amount is zero or negative.
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")

	// ErrMissingAccount is returned when an income/expense transaction has no account.
	ErrMissingAccount = errors.New("account_id is required for income and expense transactions")

	// ErrMissingTransferAccounts is returned when a transfer lacks either endpoint.
	ErrMissingTransferAccounts = errors.New("from_account_id and to_account_id are required for transfers")

	// ErrTransferFieldsOnEntry is returned when an income/expense transaction carries transfer endpoints.
	ErrTransferFieldsOnEntry = errors.New("from_account_id and to_account_id are only valid for transfers")

	// ErrCategoryFieldsOnTransfer is returned when a transfer carries a category or sub-category.
	ErrCategoryFieldsOnTransfer = errors.New("category fields are not valid for transfers")

	// ErrCategoryTypeMismatch is returned when the referenced category's type differs from the transaction's.
	ErrCategoryTypeMismatch = errors.New("category type must match transaction type")

	// ErrTransactionNotFound is returned when the transaction does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrCategoryNotFoundForTransaction is returned when the referenced category does not exist.
	ErrCategoryNotFoundForTransaction = errors.New("category not found")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: LDG-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType   TransactionErrorCode = "LDG-010001"
	ErrCodeNonPositiveAmount        TransactionErrorCode = "LDG-010002"
	ErrCodeMissingAccount           TransactionErrorCode = "LDG-010003"
	ErrCodeMissingTransferAccounts  TransactionErrorCode = "LDG-010004"
	ErrCodeTransferFieldsOnEntry    TransactionErrorCode = "LDG-010005"
	ErrCodeCategoryFieldsOnTransfer TransactionErrorCode = "LDG-010006"
	ErrCodeCategoryTypeMismatch     TransactionErrorCode = "LDG-010007"

	// Not-found errors (02XXXX)
	ErrCodeTransactionNotFound TransactionErrorCode = "LDG-020001"
	ErrCodeTxnCategoryNotFound TransactionErrorCode = "LDG-020002"

	// Internal errors (99XXXX)
	ErrCodeTransactionInternalError TransactionErrorCode = "LDG-990001"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
