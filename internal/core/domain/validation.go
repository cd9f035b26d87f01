package domain

import (
	"sort"
	"strings"
)

// ValidationError is a structured rejection of a request payload, keyed by
// field name. A single error can carry every violated field so the caller
// sees all failures at once, not just the first.
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError returns an empty ValidationError ready for Add calls.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// Add records a violation message for field and returns the receiver so
// calls can be chained. A nil receiver allocates a fresh error.
func (v *ValidationError) Add(field, message string) *ValidationError {
	if v == nil {
		v = NewValidationError()
	}
	v.Fields[field] = append(v.Fields[field], message)
	return v
}

// Empty reports whether no violations have been recorded.
func (v *ValidationError) Empty() bool {
	return v == nil || len(v.Fields) == 0
}

// OrNil returns the receiver if it holds violations, otherwise a nil error.
// Keeps call sites free of the typed-nil-in-interface trap.
func (v *ValidationError) OrNil() error {
	if v.Empty() {
		return nil
	}
	return v
}

func (v *ValidationError) Error() string {
	if v.Empty() {
		return "validation failed"
	}
	fields := make([]string, 0, len(v.Fields))
	for f := range v.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}
