// Package error defines domain-specific errors for the Cashbook application.
package error

import "errors"

// Ledger and dashboard domain errors.
var (
	// ErrMissingStartDate is returned when start_date is not provided.
	ErrMissingStartDate = errors.New("start_date is required")

	// ErrMissingEndDate is returned when end_date is not provided.
	ErrMissingEndDate = errors.New("end_date is required")

	// ErrInvalidDateRange is returned when end_date is before start_date.
	ErrInvalidDateRange = errors.New("end_date must not be before start_date")

	// ErrInvalidDateFormat is returned when a date is not parseable.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrInvalidPeriod is returned when the dashboard period is not valid.
	ErrInvalidPeriod = errors.New("period must be: daily, weekly, or monthly")
)

// LedgerErrorCode defines error codes for ledger and dashboard errors.
// Format: LGR-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingStartDate LedgerErrorCode = "LGR-010001"
	ErrCodeMissingEndDate   LedgerErrorCode = "LGR-010002"
	ErrCodeInvalidDateRange LedgerErrorCode = "LGR-010003"
	ErrCodeInvalidDate      LedgerErrorCode = "LGR-010004"
	ErrCodeInvalidPeriod    LedgerErrorCode = "LGR-010005"

	// Internal errors (99XXXX)
	ErrCodeLedgerInternalError LedgerErrorCode = "LGR-990001"
)

// LedgerError represents a ledger error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
