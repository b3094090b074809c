package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestVariableError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *VariableError
		want string
	}{
		{
			"plain",
			NewVariableError(EmptyValue, "project_name", "value must not be empty"),
			`variable "project_name": value must not be empty`,
		},
		{
			"with allowed set",
			&VariableError{
				Kind:    ReservedNameCollision,
				Name:    "input_text",
				Reason:  "collides with a reserved name",
				Allowed: []string{"any name except reserved"},
			},
			`variable "input_text": collides with a reserved name (allowed: any name except reserved)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var errs ValidationErrors
		if errs.Error() != "" {
			t.Errorf("Error() on empty = %q, want empty", errs.Error())
		}
	})

	t.Run("single", func(t *testing.T) {
		errs := ValidationErrors{
			NewVariableError(InvalidName, "1bad", "name must match ^[a-zA-Z_][a-zA-Z0-9_]*$"),
		}
		if !strings.Contains(errs.Error(), "1bad") {
			t.Error("Error() should contain the offending name")
		}
		if strings.Contains(errs.Error(), "validation errors:") {
			t.Error("single error should not use the aggregate header")
		}
	})

	t.Run("multiple", func(t *testing.T) {
		errs := ValidationErrors{
			NewVariableError(DuplicateVariable, "name", "supplied more than once"),
			NewVariableError(EmptyValue, "author", "value must not be empty"),
		}
		msg := errs.Error()
		if !strings.Contains(msg, "2 variable validation errors:") {
			t.Errorf("Error() = %q, missing aggregate header", msg)
		}
		if !strings.Contains(msg, "name") || !strings.Contains(msg, "author") {
			t.Error("Error() should list every violation")
		}
	})
}

func TestValidationErrors_Is(t *testing.T) {
	errs := ValidationErrors{NewVariableError(EmptyValue, "x", "empty")}
	if !errors.Is(errs, ErrValidation) {
		t.Error("ValidationErrors should match ErrValidation")
	}

	single := NewVariableError(EmptyValue, "x", "empty")
	if !errors.Is(single, ErrValidation) {
		t.Error("VariableError should match ErrValidation")
	}
}

func TestValidationErrors_Lines(t *testing.T) {
	errs := ValidationErrors{
		NewVariableError(DuplicateVariable, "name", "supplied more than once"),
		NewVariableError(EmptyValue, "author", "value must not be empty"),
	}
	lines := errs.Lines()
	if len(lines) != 2 {
		t.Fatalf("Lines() returned %d lines, want 2", len(lines))
	}
	for i, line := range lines {
		if line != errs[i].Error() {
			t.Errorf("Lines()[%d] = %q, want %q", i, line, errs[i].Error())
		}
	}
}
