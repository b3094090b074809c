package resolve

import (
	"fmt"
	"path/filepath"

	"github.com/wexinc/breakdown/internal/errors"
)

// PromptSelection is the outcome of prompt path resolution.
type PromptSelection struct {
	// Path is the selected template file.
	Path string
	// FallbackUsed is true when a less specific candidate was selected.
	FallbackUsed bool
	// Probed lists every candidate probed, in priority order, up to and
	// including the selected one.
	Probed []string
}

// promptCandidates builds the fallback chain for a prompt template, most
// specific first:
//
//  1. f_{fromLayer}_{adaptation}.md (only when an adaptation is given)
//  2. f_{fromLayer}.md
//  3. f_{layer}.md (generic fallback using the command's own layer)
//
// Duplicate candidates (fromLayer == layer) are collapsed.
func (r *Resolver) promptCandidates(directive, layer, fromLayer, adaptation string) []string {
	dir := filepath.Join(r.PromptBaseDir, directive, layer)

	var names []string
	if adaptation != "" {
		names = append(names, fmt.Sprintf("f_%s_%s.md", fromLayer, adaptation))
	}
	names = append(names, fmt.Sprintf("f_%s.md", fromLayer))
	if layer != fromLayer {
		names = append(names, fmt.Sprintf("f_%s.md", layer))
	}

	candidates := make([]string, 0, len(names))
	for _, name := range names {
		candidates = append(candidates, filepath.Join(dir, name))
	}
	return candidates
}

// ResolvePromptPath selects the prompt template for a command, probing the
// fallback chain in fixed priority order. When every candidate is absent it
// returns a PromptNotFound error carrying the full probed list.
func (r *Resolver) ResolvePromptPath(directive, layer, fromLayer, adaptation string) (PromptSelection, error) {
	candidates := r.promptCandidates(directive, layer, fromLayer, adaptation)

	for i, candidate := range candidates {
		if r.prober.FileExists(candidate) {
			return PromptSelection{
				Path:         candidate,
				FallbackUsed: i > 0,
				Probed:       candidates[:i+1],
			}, nil
		}
	}

	return PromptSelection{Probed: candidates}, errors.PromptNotFound(candidates)
}
