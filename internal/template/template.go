// Package template generates prompt text from a template file and a variable
// map. Placeholders are written as {name}; a placeholder whose name has no
// value in the map is left unchanged.
package template

import (
	"os"
	"regexp"

	"github.com/wexinc/breakdown/internal/errors"
)

// Engine generates text from a prompt template path and a variable map.
// The orchestrator treats it as a black box: either generated text comes
// back, or a failure that is wrapped with the prompt path for context.
type Engine interface {
	Generate(promptPath string, vars map[string]string) (string, error)
}

// placeholderPattern matches {name} placeholders.
var placeholderPattern = regexp.MustCompile(`\{([a-zA-Z_][a-zA-Z0-9_]*)\}`)

// Substitute replaces every {name} placeholder in content with its value
// from vars. Unknown placeholders are left unchanged.
func Substitute(content string, vars map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(content, func(match string) string {
		name := match[1 : len(match)-1]
		if val, ok := vars[name]; ok {
			return val
		}
		return match
	})
}

// FileEngine is the default Engine. It reads the template from disk and
// substitutes placeholders in memory.
type FileEngine struct{}

// NewFileEngine creates the default file-backed engine.
func NewFileEngine() *FileEngine {
	return &FileEngine{}
}

// Generate reads the template at promptPath and substitutes vars into it.
// Read failures are returned as TemplateEngine errors carrying the path.
func (e *FileEngine) Generate(promptPath string, vars map[string]string) (string, error) {
	content, err := os.ReadFile(promptPath)
	if err != nil {
		return "", errors.TemplateFailure(promptPath, err)
	}
	return Substitute(string(content), vars), nil
}
