package variables

import (
	"regexp"
	"sort"

	"github.com/wexinc/breakdown/internal/errors"
)

// namePattern is the allowed shape for custom variable names after the
// uv- prefix is stripped.
var namePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Builder is a validating variable map builder. It accumulates every
// violation instead of stopping at the first, so one invocation surfaces
// all problems at once. Build returns either the finished map or the full
// aggregated error list, never both.
type Builder struct {
	vars *VariableMap
	errs errors.ValidationErrors
	seen map[string]bool
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		vars: newVariableMap(),
		seen: map[string]bool{},
	}
}

// setReserved records a reserved variable, honoring the presence model:
// empty values are omitted entirely rather than stored as empty strings.
func (b *Builder) setReserved(name, value string) *Builder {
	if value == "" {
		return b
	}
	b.vars.set(name, value)
	b.seen[name] = true
	return b
}

// SetInputFile sets input_text_file from the resolved input path.
// An empty path leaves the variable absent.
func (b *Builder) SetInputFile(path string) *Builder {
	return b.setReserved(InputTextFile, path)
}

// SetInputText sets input_text from the stdin content.
// Empty content leaves the variable absent.
func (b *Builder) SetInputText(text string) *Builder {
	return b.setReserved(InputText, text)
}

// SetDestination sets destination_path from the resolved output path.
func (b *Builder) SetDestination(path string) *Builder {
	return b.setReserved(DestinationPath, path)
}

// SetSchemaFile sets schema_file from the candidate schema path.
func (b *Builder) SetSchemaFile(path string) *Builder {
	return b.setReserved(SchemaFile, path)
}

// AddCustom adds a user variable. The name must match the allowed pattern,
// must not collide with reserved or previously added names, and the value
// must be non-empty. Violations are accumulated, not returned.
func (b *Builder) AddCustom(name, value string) *Builder {
	return b.addCustom(name, value, false)
}

// AddOptional adds a user variable that may be empty. An empty value is
// omitted entirely (presence model) instead of being rejected.
func (b *Builder) AddOptional(name, value string) *Builder {
	return b.addCustom(name, value, true)
}

func (b *Builder) addCustom(name, value string, optional bool) *Builder {
	valid := true

	if !namePattern.MatchString(name) {
		b.errs = append(b.errs, errors.NewVariableError(
			errors.InvalidName, name,
			"name must match ^[a-zA-Z_][a-zA-Z0-9_]*$"))
		valid = false
	}
	if IsReserved(name) {
		b.errs = append(b.errs, &errors.VariableError{
			Kind:    errors.ReservedNameCollision,
			Name:    name,
			Reason:  "collides with a reserved variable name",
			Allowed: []string{"any name except " + InputTextFile + ", " + InputText + ", " + DestinationPath + ", " + SchemaFile},
		})
		valid = false
	} else if b.seen[name] {
		b.errs = append(b.errs, errors.NewVariableError(
			errors.DuplicateVariable, name, "supplied more than once"))
		valid = false
	}
	if value == "" {
		if optional {
			// Absent, not empty: nothing to record and nothing to reject.
			if valid {
				b.seen[name] = true
			}
			return b
		}
		b.errs = append(b.errs, errors.NewVariableError(
			errors.EmptyValue, name, "value must not be empty"))
		valid = false
	}

	if valid {
		b.vars.set(name, value)
		b.seen[name] = true
	}
	return b
}

// AddCustomAll adds every entry of a custom variable map in sorted name
// order, so validation output is deterministic.
func (b *Builder) AddCustomAll(custom map[string]string) *Builder {
	names := make([]string, 0, len(custom))
	for name := range custom {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b.AddCustom(name, custom[name])
	}
	return b
}

// Build finishes the builder. On any accumulated violation it returns the
// full aggregated list; otherwise it returns the immutable ordered map.
func (b *Builder) Build() (*VariableMap, error) {
	if len(b.errs) > 0 {
		return nil, b.errs
	}
	return b.vars, nil
}
