// Package error defines domain-specific errors for the Cashbook application.
package error

import "errors"

// Debt domain errors.
var (
	// ErrDebtNotFound is returned when a debt record is not found in the system.
	ErrDebtNotFound = errors.New("debt not found")

	// ErrNotAuthorizedToModifyDebt is returned when user is not authorized to modify a debt record.
	ErrNotAuthorizedToModifyDebt = errors.New("not authorized to modify debt")

	// ErrInvalidDebtType is returned when the debt type is invalid.
	ErrInvalidDebtType = errors.New("invalid debt type")

	// ErrInvalidDebtAmount is returned when an amount is not a non-negative number.
	ErrInvalidDebtAmount = errors.New("invalid debt amount")

	// ErrMissingPersonName is returned when the person name is missing.
	ErrMissingPersonName = errors.New("person name is required")

	// ErrInvalidDueDate is returned when the due date is not parseable.
	ErrInvalidDueDate = errors.New("invalid due date")
)

// DebtErrorCode defines error codes for debt errors.
// Format: DEBT-XXYYYY where XX is category and YYYY is specific error.
type DebtErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidDebtType   DebtErrorCode = "DEBT-010001"
	ErrCodeInvalidDebtAmount DebtErrorCode = "DEBT-010002"
	ErrCodeMissingPersonName DebtErrorCode = "DEBT-010003"
	ErrCodeInvalidDueDate    DebtErrorCode = "DEBT-010004"
	ErrCodeDebtNotFound      DebtErrorCode = "DEBT-010005"
	ErrCodeNotAuthorizedDebt DebtErrorCode = "DEBT-010006"
	ErrCodeMissingDebtFields DebtErrorCode = "DEBT-010007"
)

// DebtError represents a debt error with code and message.
type DebtError struct {
	Code    DebtErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DebtError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DebtError) Unwrap() error {
	return e.Err
}

// NewDebtError creates a new DebtError with the given code and message.
func NewDebtError(code DebtErrorCode, message string, err error) *DebtError {
	return &DebtError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
