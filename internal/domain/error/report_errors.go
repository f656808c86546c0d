// Package error defines domain-specific errors for the Pocket Ledger application.
package error

import "errors"

// Report domain errors.
var (
	// ErrInvalidRange is returned when the quick-range value is not recognized.
	ErrInvalidRange = errors.New("range must be: today, week, month, all or custom")

	// ErrInvalidDateFormat is returned when date format is invalid.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrInvalidMonthFormat is returned when a year-month value is invalid.
	ErrInvalidMonthFormat = errors.New("invalid month format, expected YYYY-MM")

	// ErrInvalidComparisonPreset is returned when the preset is not recognized.
	ErrInvalidComparisonPreset = errors.New("preset must be: weekly, monthly or custom")

	// ErrInvalidDrillDownKind is returned when the selector kind is not recognized.
	ErrInvalidDrillDownKind = errors.New("drill-down kind must be: category or date")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidRange            ReportErrorCode = "RPT-010001"
	ErrCodeInvalidDateFormat       ReportErrorCode = "RPT-010002"
	ErrCodeInvalidMonthFormat      ReportErrorCode = "RPT-010003"
	ErrCodeInvalidComparisonPreset ReportErrorCode = "RPT-010004"
	ErrCodeInvalidDrillDownKind    ReportErrorCode = "RPT-010005"

	// Internal errors (99XXXX)
	ErrCodeReportInternalError ReportErrorCode = "RPT-990001"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
