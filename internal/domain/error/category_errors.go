// Package error defines domain-specific errors for the Pocket Ledger application.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when the category does not exist.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameRequired is returned when the category name is empty.
	ErrCategoryNameRequired = errors.New("category name is required")

	// ErrInvalidCategoryType is returned when the type is not income or expense.
	ErrInvalidCategoryType = errors.New("category type must be: income or expense")

	// ErrDuplicateCategory is returned when a category with the same name and type already exists.
	ErrDuplicateCategory = errors.New("category with this name and type already exists")

	// ErrSubCategoryRequired is returned when the sub-category label is empty.
	ErrSubCategoryRequired = errors.New("sub-category label is required")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCategoryNameRequired CategoryErrorCode = "CAT-010001"
	ErrCodeInvalidCategoryType  CategoryErrorCode = "CAT-010002"
	ErrCodeDuplicateCategory    CategoryErrorCode = "CAT-010003"
	ErrCodeSubCategoryRequired  CategoryErrorCode = "CAT-010004"

	// Not-found errors (02XXXX)
	ErrCodeCategoryNotFound CategoryErrorCode = "CAT-020001"

	// Internal errors (99XXXX)
	ErrCodeCategoryInternalError CategoryErrorCode = "CAT-990001"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
