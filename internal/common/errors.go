// Package common defines shared constants and sentinel errors used across
// MoodKeeper components. Callers should use errors.Is to match these values.
package common

import (
	"errors"
	"sort"
	"strings"
)

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Credential store errors.
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrNoSuchAccount          = errors.New("no account for that email")
	ErrWrongPassword          = errors.New("wrong password")

	// Form input errors. Concrete failures are reported as *ValidationError.
	ErrValidation = errors.New("validation error")

	// Session errors: no session, or a session pointing to a missing user.
	ErrUnauthenticated = errors.New("unauthenticated")

	// Presentation wiring fault. Always fatal.
	ErrMissingElement = errors.New("missing element")
)

// ValidationError lists rejected form fields with a human readable message
// for each of them. It matches ErrValidation with errors.Is.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError returns a ValidationError for a single field.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, e.Fields[name])
	}
	return strings.Join(parts, " ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
