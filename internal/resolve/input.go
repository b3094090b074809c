package resolve

import (
	"path/filepath"
	"strings"
)

// hasSeparator reports whether path contains an explicit path separator.
// Both slash forms count so that callers on any platform get the
// "user takes responsibility" behavior for qualified paths.
func hasSeparator(path string) bool {
	return strings.ContainsAny(path, `/\`)
}

// ResolveInputPath resolves the --from file path. The boolean result is
// false when no input file was given (stdin must then carry the input).
//
// Rules, in order:
//   - empty fromFile: absent.
//   - fromFile with a path separator: returned cleaned but otherwise
//     unchanged; the user takes full responsibility for the path.
//   - bare filename: joined under {workingDir}/{fromLayer}.
func (r *Resolver) ResolveInputPath(fromFile, fromLayer string) (string, bool) {
	if fromFile == "" {
		return "", false
	}
	if hasSeparator(fromFile) {
		return filepath.Clean(fromFile), true
	}
	return filepath.Join(r.WorkingDir, fromLayer, fromFile), true
}
