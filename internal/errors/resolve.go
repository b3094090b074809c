// Package errors provides the error types used across breakdown.
// This file contains path resolution and input errors.
package errors

import (
	"fmt"
	"strings"
)

// PromptNotFound creates an error for an exhausted prompt path fallback chain.
// The candidates slice lists every path that was probed, in probe order.
func PromptNotFound(candidates []string) *BreakdownError {
	e := &BreakdownError{
		Kind:    ErrPromptNotFound,
		Message: "no prompt template found",
		Details: map[string]string{
			"candidates": strings.Join(candidates, ", "),
		},
		Suggestion: `The prompt paths were computed correctly but no file exists at any of them.
Create the template at the first candidate path, or run:
  breakdown init`,
	}
	return e
}

// Candidates extracts the probed candidate list from a PromptNotFound error.
// Returns nil if the error carries no candidate list.
func Candidates(e *BreakdownError) []string {
	if e == nil || e.Details == nil {
		return nil
	}
	v, ok := e.Details["candidates"]
	if !ok || v == "" {
		return nil
	}
	return strings.Split(v, ", ")
}

// MissingInput creates an error for a run with neither stdin content nor --from.
func MissingInput() *BreakdownError {
	return &BreakdownError{
		Kind:    ErrMissingInput,
		Message: "no input source: provide --from <file> or pipe content on stdin",
		Suggestion: `Supply input one of two ways:
  breakdown to task --from ./issue.md
  cat issue.md | breakdown to task`,
	}
}

// PathConflict creates an error for a destination that names both a file and
// an existing directory.
func PathConflict(path string) *BreakdownError {
	return &BreakdownError{
		Kind:    ErrPathConflict,
		Message: fmt.Sprintf("destination %q conflicts with an existing directory of the same name", path),
		Details: map[string]string{
			"path": path,
		},
		Suggestion: "Rename the destination file or remove the conflicting directory.",
	}
}

// TemplateFailure wraps a templating engine error with the prompt path for context.
func TemplateFailure(promptPath string, cause error) *BreakdownError {
	return &BreakdownError{
		Kind:    ErrTemplateEngine,
		Message: fmt.Sprintf("template generation failed for %s", promptPath),
		Cause:   cause,
		Details: map[string]string{
			"prompt_path": promptPath,
		},
	}
}

// ConfigNotFound creates an error for a missing configuration file.
func ConfigNotFound(configPath string) *BreakdownError {
	return &BreakdownError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("configuration file not found: %s", configPath),
		Details: map[string]string{
			"path": configPath,
		},
		Suggestion: `Initialize breakdown in your project:
  breakdown init`,
	}
}
