package domain

import "fmt"

// ValidationError reports an input field outside its valid domain. The HTTP
// layer maps it to a client error; anything else is a server error.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
