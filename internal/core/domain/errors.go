package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownEntity indicates an unrecognised entity name.
	ErrUnknownEntity = errors.New("unknown entity")
)

// FieldError describes a single violated constraint on one field.
// Field is the path of the offending field (e.g. "weights.talent");
// Message is a human-readable reason including the rejected value.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error returns the field path and reason.
func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors aggregates every constraint violated during one
// construction attempt. Constructors never short-circuit on the first
// field failure, so callers can surface all problems in a single pass.
type ValidationErrors []FieldError

// Error joins all field errors into one message.
func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Error()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Is reports ErrInvalidInput so callers can match with errors.Is
// without inspecting individual fields.
func (e ValidationErrors) Is(target error) bool {
	return target == ErrInvalidInput
}

// Add appends a field error with a formatted message.
func (e *ValidationErrors) Add(field, format string, args ...any) {
	*e = append(*e, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// HasField reports whether any error concerns the given field path.
func (e ValidationErrors) HasField(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// orNil returns the collection as an error, or nil when empty.
func (e ValidationErrors) orNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
