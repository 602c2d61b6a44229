package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Account errors
	ErrDuplicateAccount   = errors.New("account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountNotFound    = errors.New("account not found")

	// Invoice errors
	ErrInvoiceNotFound = errors.New("invoice not found")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Persistence errors
	ErrStateOperationFailed = errors.New("state operation failed")
)

// ValidationError carries per-field messages collected by draft
// validation. It marks ErrValidationFailed so callers can match it
// with errors.Is without losing the field detail.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return ErrValidationFailed.Error()
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}
