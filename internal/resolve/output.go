package resolve

import (
	"path/filepath"
	"strings"

	"github.com/wexinc/breakdown/internal/errors"
)

// ResolveOutputPath resolves the --destination value to a concrete output
// file path. It is total over missing destinations: when no usable file name
// can be derived, one is auto-generated as {YYYYMMDD}_{8hex}.md with the
// suffix re-rolled until the name is unused.
//
// Rules, in order:
//   - empty destination: auto-generate under {workingDir}/{layer}.
//   - destination names an existing directory: auto-generate inside it.
//   - destination has separators and an extension-bearing final segment:
//     used verbatim (cleaned). If a same-named directory exists this is a
//     PathConflict error, the one ambiguous case.
//   - destination has separators but no extension in the final segment:
//     treated as a directory; auto-generate inside it.
//   - bare filename: joined under {workingDir}/{layer}.
func (r *Resolver) ResolveOutputPath(destination, layer string) (string, error) {
	if destination == "" {
		return r.autoGenerate(filepath.Join(r.WorkingDir, layer)), nil
	}

	cleaned := filepath.Clean(destination)

	if !hasSeparator(destination) {
		return filepath.Join(r.WorkingDir, layer, cleaned), nil
	}

	final := filepath.Base(cleaned)
	hasExtension := strings.Contains(final, ".")

	if r.prober.DirExists(cleaned) {
		if hasExtension {
			// Looks like a file but an existing directory claims the name.
			return "", errors.PathConflict(cleaned)
		}
		return r.autoGenerate(cleaned), nil
	}

	if hasExtension {
		return cleaned, nil
	}

	// Separator-bearing path without extension denotes a directory to be.
	return r.autoGenerate(cleaned), nil
}
