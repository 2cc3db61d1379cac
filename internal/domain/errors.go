package domain

import (
	"errors"
	"fmt"
)

// Caller-visible error kinds. The HTTP layer maps these to status codes
// with errors.Is; none of them are retried by the core.
var (
	ErrValidation             = errors.New("validation failed")
	ErrDuplicateRequest       = errors.New("a pending request already exists for this pair")
	ErrNotFound               = errors.New("not found")
	ErrUnauthorizedTransition = errors.New("actor is not authorized for this transition")
	ErrInvalidStateTransition = errors.New("transition not allowed from current status")
)

// NewValidationError wraps ErrValidation with a field-specific message.
func NewValidationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
