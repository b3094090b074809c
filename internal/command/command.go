// Package command provides the validated two-parameter command value objects
// that drive prompt resolution. The CLI layer parses argv into a
// TwoParamCommand; everything downstream treats it as immutable input.
package command

import (
	"fmt"
	"strings"

	"github.com/wexinc/breakdown/internal/errors"
)

// CustomVarPrefix is the flag prefix for user-supplied template variables.
const CustomVarPrefix = "--uv-"

// OptionsBag holds the resolved CLI options for a two-parameter command.
// All fields are optional; CustomVariables keys are stored without the
// uv- prefix and are guaranteed unique (duplicates are a parse error,
// last-write-wins is disallowed).
type OptionsBag struct {
	// FromFile is the --from/-f input file path.
	FromFile string
	// DestinationFile is the --destination/-o output path or directory.
	DestinationFile string
	// InputLayerAlias is the --input/-i explicit from-layer alias.
	InputLayerAlias string
	// Adaptation is the --adaptation/-a prompt variant suffix.
	Adaptation string
	// CustomVariables are the --uv-* variables, keyed without the prefix.
	CustomVariables map[string]string
}

// TwoParamCommand is the validated (directive, layer, options) tuple.
// Directive and layer are non-empty tokens already validated against the
// configured patterns by the CLI layer; resolution treats them as opaque.
type TwoParamCommand struct {
	// Directive is the processing direction (to, summary, defect, ...).
	Directive string
	// Layer is the target layer (project, issue, task, ...).
	Layer string
	// Options are the resolved CLI options.
	Options OptionsBag
}

// New creates a TwoParamCommand, rejecting empty directive or layer tokens.
func New(directive, layer string, options OptionsBag) (*TwoParamCommand, error) {
	directive = strings.TrimSpace(directive)
	layer = strings.TrimSpace(layer)
	if directive == "" {
		return nil, fmt.Errorf("directive must not be empty")
	}
	if layer == "" {
		return nil, fmt.Errorf("layer must not be empty")
	}
	if options.CustomVariables == nil {
		options.CustomVariables = map[string]string{}
	}
	return &TwoParamCommand{
		Directive: directive,
		Layer:     layer,
		Options:   options,
	}, nil
}

// ExtractCustomArgs splits --uv-* tokens out of an argv slice.
// Both "--uv-name=value" and "--uv-name value" forms are accepted.
// The remaining args are returned untouched, in order, for the flag parser.
// Duplicate variable names are an aggregated validation error.
func ExtractCustomArgs(args []string) ([]string, map[string]string, error) {
	remaining := make([]string, 0, len(args))
	custom := map[string]string{}
	var errs errors.ValidationErrors

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, CustomVarPrefix) {
			remaining = append(remaining, arg)
			continue
		}

		body := strings.TrimPrefix(arg, CustomVarPrefix)
		var name, value string
		if eq := strings.Index(body, "="); eq >= 0 {
			name = body[:eq]
			value = body[eq+1:]
		} else {
			name = body
			if i+1 < len(args) {
				i++
				value = args[i]
			}
		}

		if name == "" {
			errs = append(errs, errors.NewVariableError(
				errors.InvalidName, name, "custom variable name must not be empty"))
			continue
		}
		if _, exists := custom[name]; exists {
			errs = append(errs, errors.NewVariableError(
				errors.DuplicateVariable, name, "supplied more than once"))
			continue
		}
		custom[name] = value
	}

	if len(errs) > 0 {
		return remaining, nil, errs
	}
	return remaining, custom, nil
}
