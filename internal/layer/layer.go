// Package layer infers the "from-layer" token used to select a prompt
// template variant. Inference is a total function: an explicit --input alias
// wins, then keywords in the --from file name, then the command's own layer.
package layer

import (
	"path/filepath"
	"strings"

	"github.com/wexinc/breakdown/internal/command"
)

// Canonical layer tokens.
const (
	Project = "project"
	Issue   = "issue"
	Task    = "task"
)

// aliasGroup maps a canonical layer to the aliases and filename keywords
// that resolve to it. Groups are matched in declaration order.
type aliasGroup struct {
	canonical string
	aliases   []string
}

// aliasTable is the closed alias lookup table. Order matters: filename
// scanning returns the first group with a matching keyword.
var aliasTable = []aliasGroup{
	{Project, []string{"project", "pj", "prj"}},
	{Issue, []string{"issue", "story"}},
	{Task, []string{"task", "todo", "chore", "style", "fix", "error", "bug"}},
}

// Canonical normalizes an alias to its canonical layer token.
// Unknown aliases pass through lowercased, keeping the alias vocabulary
// open to user-defined layers.
func Canonical(alias string) string {
	lowered := strings.ToLower(strings.TrimSpace(alias))
	for _, group := range aliasTable {
		for _, a := range group.aliases {
			if lowered == a {
				return group.canonical
			}
		}
	}
	return lowered
}

// fromFileName scans a file's base name for layer keywords and returns the
// canonical layer of the first matching group, or "" when nothing matches.
// Only the base name is scanned, so directory names never affect inference.
func fromFileName(path string) string {
	base := strings.ToLower(filepath.Base(path))
	for _, group := range aliasTable {
		for _, keyword := range group.aliases {
			if strings.Contains(base, keyword) {
				return group.canonical
			}
		}
	}
	return ""
}

// Infer returns the from-layer token for a command. The priority chain is
// strict: explicit --input alias, then --from filename keywords, then the
// command's own layer as the self-referential default.
func Infer(options command.OptionsBag, layer string) string {
	if options.InputLayerAlias != "" {
		return Canonical(options.InputLayerAlias)
	}
	if options.FromFile != "" {
		if inferred := fromFileName(options.FromFile); inferred != "" {
			return inferred
		}
	}
	return layer
}
