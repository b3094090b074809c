// Package resolve decides, from a (directive, layer, options) tuple and the
// configured base directories, which prompt template to use, which schema
// file accompanies it, and how input/output paths are normalized or
// auto-generated. Resolution is deterministic for a fixed filesystem state:
// candidates are probed in a fixed priority order and nothing is retried.
package resolve

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Prober answers existence questions during resolution. The production
// implementation hits the filesystem; tests inject fixed answers.
type Prober interface {
	// FileExists reports whether path names an existing regular file.
	FileExists(path string) bool
	// DirExists reports whether path names an existing directory.
	DirExists(path string) bool
}

// osProber probes the real filesystem.
type osProber struct{}

func (osProber) FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (osProber) DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ResolvedPaths is the complete output of path resolution.
// All paths are cleaned; OutputFilePath is never empty.
type ResolvedPaths struct {
	// PromptFilePath is the selected prompt template file.
	PromptFilePath string
	// PromptFallbackUsed is true when a fallback candidate was selected
	// instead of the most specific one.
	PromptFallbackUsed bool
	// SchemaFilePath is the candidate schema file (existence not required).
	SchemaFilePath string
	// InputFilePath is the resolved input file, empty when input comes
	// from stdin only.
	InputFilePath string
	// OutputFilePath is the resolved or auto-generated destination.
	OutputFilePath string
}

// Resolver resolves prompt, schema, input and output paths.
type Resolver struct {
	// PromptBaseDir is the root of the prompt template tree.
	PromptBaseDir string
	// SchemaBaseDir is the root of the schema tree.
	SchemaBaseDir string
	// WorkingDir is the workspace root used for input/output layer directories.
	WorkingDir string

	prober Prober
	now    func() time.Time
	suffix func() string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithProber overrides the filesystem prober. Used by tests.
func WithProber(p Prober) Option {
	return func(r *Resolver) { r.prober = p }
}

// WithClock overrides the clock used for auto-generated filenames.
func WithClock(now func() time.Time) Option {
	return func(r *Resolver) { r.now = now }
}

// WithSuffix overrides the random suffix source used for auto-generated
// filenames.
func WithSuffix(suffix func() string) Option {
	return func(r *Resolver) { r.suffix = suffix }
}

// NewResolver creates a resolver over the given base directories.
func NewResolver(promptBaseDir, schemaBaseDir, workingDir string, opts ...Option) *Resolver {
	r := &Resolver{
		PromptBaseDir: promptBaseDir,
		SchemaBaseDir: schemaBaseDir,
		WorkingDir:    workingDir,
		prober:        osProber{},
		now:           time.Now,
		suffix:        hexSuffix,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// hexSuffix returns 8 lowercase hex characters from a random UUID.
func hexSuffix() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}

// generatedName builds a {YYYYMMDD}_{8hex}.md filename.
func (r *Resolver) generatedName() string {
	return r.now().Format("20060102") + "_" + r.suffix() + ".md"
}

// autoGenerate returns a path for a fresh output file inside dir,
// re-rolling the random suffix until the name does not exist yet.
func (r *Resolver) autoGenerate(dir string) string {
	for {
		candidate := filepath.Join(dir, r.generatedName())
		if !r.prober.FileExists(candidate) && !r.prober.DirExists(candidate) {
			return candidate
		}
	}
}
