package model

import "fmt"

// ValidationError represents a precondition or missing-argument failure.
// Construction and AddItem reject bad input with one of these; no object
// is ever left in a partially-valid state.
type ValidationError struct {
	Field   string
	Value   interface{}
	Rule    string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation failed on %s: %s (value=%v, rule=%s)", e.Field, e.Message, e.Value, e.Rule)
	}
	return fmt.Sprintf("validation failed on %s: %s (rule=%s)", e.Field, e.Message, e.Rule)
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value interface{}, rule, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Rule:    rule,
		Message: message,
	}
}

// CoercionError represents a text-to-decimal coercion failure. The field it
// names keeps its previous value; a failed assignment never stores garbage.
type CoercionError struct {
	Field string
	Input string
	Cause error
}

func (e *CoercionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cannot coerce %s from %q: %v", e.Field, e.Input, e.Cause)
	}
	return fmt.Sprintf("cannot coerce %s from %q", e.Field, e.Input)
}

func (e *CoercionError) Unwrap() error {
	return e.Cause
}

// NewCoercionError creates a new coercion error
func NewCoercionError(field, input string, cause error) *CoercionError {
	return &CoercionError{
		Field: field,
		Input: input,
		Cause: cause,
	}
}
