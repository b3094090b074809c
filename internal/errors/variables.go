// Package errors provides the error types used across breakdown.
// This file contains the variable validation error family. Validation
// failures are always aggregated: the builder collects every violation in
// one pass so a single invocation surfaces all problems at once.
package errors

import (
	"fmt"
	"strings"
)

// ValidationKind identifies the specific variable validation failure.
type ValidationKind string

const (
	// InvalidName means a custom variable name does not match the allowed pattern.
	InvalidName ValidationKind = "invalid_name"
	// EmptyValue means a variable value is the empty string.
	EmptyValue ValidationKind = "empty_value"
	// DuplicateVariable means the same variable name was supplied more than once.
	DuplicateVariable ValidationKind = "duplicate_variable"
	// ReservedNameCollision means a custom variable collides with a reserved name.
	ReservedNameCollision ValidationKind = "reserved_name_collision"
)

// VariableError describes one variable validation failure.
type VariableError struct {
	// Kind is the specific validation failure.
	Kind ValidationKind
	// Name is the offending variable name (without the uv- prefix).
	Name string
	// Reason is the human-readable explanation.
	Reason string
	// Allowed lists the allowed value set, where applicable.
	Allowed []string
}

// Error implements the error interface.
func (e *VariableError) Error() string {
	msg := fmt.Sprintf("variable %q: %s", e.Name, e.Reason)
	if len(e.Allowed) > 0 {
		msg += fmt.Sprintf(" (allowed: %s)", strings.Join(e.Allowed, ", "))
	}
	return msg
}

// Is reports whether the target is the validation sentinel.
func (e *VariableError) Is(target error) bool {
	return target == ErrValidation
}

// ValidationErrors is an aggregated collection of variable validation errors.
// It is never returned with zero entries.
type ValidationErrors []*VariableError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	msg := fmt.Sprintf("%d variable validation errors:", len(e))
	for _, err := range e {
		msg += "\n  - " + err.Error()
	}
	return msg
}

// Is reports whether the target is the validation sentinel.
func (e ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}

// Lines renders one diagnostic line per aggregated error, for stderr output.
func (e ValidationErrors) Lines() []string {
	lines := make([]string, 0, len(e))
	for _, err := range e {
		lines = append(lines, err.Error())
	}
	return lines
}

// NewVariableError creates a single validation error.
func NewVariableError(kind ValidationKind, name, reason string) *VariableError {
	return &VariableError{
		Kind:   kind,
		Name:   name,
		Reason: reason,
	}
}
