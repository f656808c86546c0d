// Package error defines domain-specific errors for the Pocket Ledger application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrNegativeBudget is returned when a budget amount is negative.
	ErrNegativeBudget = errors.New("budget amount must not be negative")

	// ErrBudgetCategoryNotFound is returned when the budget's category does not exist.
	ErrBudgetCategoryNotFound = errors.New("category not found")

	// ErrCategoryBudgetNotFound is returned when no budget exists for the category.
	ErrCategoryBudgetNotFound = errors.New("no budget set for this category")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BDG-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeNegativeBudget BudgetErrorCode = "BDG-010001"

	// Not-found errors (02XXXX)
	ErrCodeBudgetCategoryNotFound BudgetErrorCode = "BDG-020001"
	ErrCodeCategoryBudgetNotFound BudgetErrorCode = "BDG-020002"

	// Internal errors (99XXXX)
	ErrCodeBudgetInternalError BudgetErrorCode = "BDG-990001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
