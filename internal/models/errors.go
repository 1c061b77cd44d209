package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation is matched by every *ValidationError via errors.Is
var ErrValidation = errors.New("validation failed")

// ValidationError reports a required field that is missing or malformed.
// It is returned before any state mutation or backend call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Is lets callers use errors.Is(err, ErrValidation)
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// RequireNonEmpty returns a ValidationError when value is blank
func RequireNonEmpty(field, value string) error {
	if strings.TrimSpace(value) != "" {
		return nil
	}
	return &ValidationError{Field: field, Message: "cannot be empty"}
}
