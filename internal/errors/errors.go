// Package errors provides the error types used across breakdown.
// Errors are returned as values through the resolution pipeline and carry
// enough context (paths probed, offending variable names) to render a
// precise diagnostic at the CLI boundary.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Common sentinel errors for use with errors.Is().
var (
	// ErrConfig indicates a configuration error.
	ErrConfig = errors.New("configuration error")
	// ErrMissingInput indicates neither stdin nor --from provided usable input.
	ErrMissingInput = errors.New("missing input")
	// ErrPromptNotFound indicates every prompt path candidate was probed and none exist.
	ErrPromptNotFound = errors.New("prompt template not found")
	// ErrValidation indicates one or more variable validation failures.
	ErrValidation = errors.New("validation error")
	// ErrTemplateEngine indicates the templating engine failed.
	ErrTemplateEngine = errors.New("template engine error")
	// ErrPathConflict indicates a destination that is ambiguously a file and a directory.
	ErrPathConflict = errors.New("path conflict")
	// ErrNotFound indicates a resource was not found.
	ErrNotFound = errors.New("not found")
)

// BreakdownError is the base error type for breakdown errors.
// It wraps an underlying error and provides additional context.
type BreakdownError struct {
	// Kind is the category of error (e.g., ErrConfig, ErrPromptNotFound).
	Kind error
	// Message is the human-readable error message.
	Message string
	// Suggestion provides actionable advice for resolving the error.
	Suggestion string
	// Cause is the underlying error that caused this error.
	Cause error
	// Details provides additional context (e.g., file path, variable name).
	Details map[string]string
}

// Error implements the error interface.
func (e *BreakdownError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *BreakdownError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return e.Kind
}

// Is reports whether any error in err's chain matches the target.
func (e *BreakdownError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// Format returns a formatted error message with details and suggestions.
func (e *BreakdownError) Format() string {
	var sb strings.Builder

	sb.WriteString("Error: ")
	sb.WriteString(e.Error())
	sb.WriteString("\n")

	if len(e.Details) > 0 {
		sb.WriteString("\nDetails:\n")
		for k, v := range e.Details {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", k, v))
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\nSuggestion: ")
		sb.WriteString(e.Suggestion)
		sb.WriteString("\n")
	}

	return sb.String()
}

// WithDetails adds details to the error.
func (e *BreakdownError) WithDetails(key, value string) *BreakdownError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying cause of the error.
func (e *BreakdownError) WithCause(cause error) *BreakdownError {
	e.Cause = cause
	return e
}

// New creates a new BreakdownError with the given kind and message.
func New(kind error, message string) *BreakdownError {
	return &BreakdownError{
		Kind:    kind,
		Message: message,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(err error, kind error, message string) *BreakdownError {
	return &BreakdownError{
		Kind:    kind,
		Message: message,
		Cause:   err,
	}
}

// WithSuggestion creates a new error with a suggestion.
func WithSuggestion(kind error, message, suggestion string) *BreakdownError {
	return &BreakdownError{
		Kind:       kind,
		Message:    message,
		Suggestion: suggestion,
	}
}
