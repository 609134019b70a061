package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails field rules (missing value,
// wrong type, text longer than 255 characters).
// Handlers map this to HTTP 400.
var ErrValidation = errors.New("validation error")

// ErrReference is returned when a log entry points at a trip that does not
// exist. Handlers map this to HTTP 400 on /log-entries/.
var ErrReference = errors.New("invalid reference")

// ValidationError carries per-field messages keyed by the JSON field name.
// It unwraps to ErrValidation, or to ErrReference when built by NewReferenceError,
// so callers can keep using errors.Is against the sentinels.
type ValidationError struct {
	Fields map[string][]string
	kind   error
}

// NewValidationError returns an empty ValidationError ready for Add.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string][]string{}, kind: ErrValidation}
}

// NewReferenceError reports that field refers to a trip id that does not exist.
func NewReferenceError(field string, id int64) *ValidationError {
	e := &ValidationError{Fields: map[string][]string{}, kind: ErrReference}
	e.Add(field, fmt.Sprintf("Invalid pk %q - object does not exist.", fmt.Sprint(id)))
	return e
}

// Add appends msg to the messages for field.
func (e *ValidationError) Add(field, msg string) {
	e.Fields[field] = append(e.Fields[field], msg)
}

// HasErrors reports whether any field message has been recorded.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// Error renders the fields in sorted order, e.g.
// "validation error: current_location: This field is required.".
func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+strings.Join(e.Fields[name], " "))
	}
	return e.Unwrap().Error() + ": " + strings.Join(parts, "; ")
}

// Unwrap returns the sentinel this error classifies as.
func (e *ValidationError) Unwrap() error {
	if e.kind == nil {
		return ErrValidation
	}
	return e.kind
}
