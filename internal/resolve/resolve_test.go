package resolve

import (
	"path/filepath"
	"testing"
	"time"
)

// fakeProber answers existence probes from fixed sets.
type fakeProber struct {
	files map[string]bool
	dirs  map[string]bool
}

func (p *fakeProber) FileExists(path string) bool { return p.files[path] }
func (p *fakeProber) DirExists(path string) bool  { return p.dirs[path] }

func newFakeProber(files, dirs []string) *fakeProber {
	p := &fakeProber{files: map[string]bool{}, dirs: map[string]bool{}}
	for _, f := range files {
		p.files[filepath.Clean(f)] = true
	}
	for _, d := range dirs {
		p.dirs[filepath.Clean(d)] = true
	}
	return p
}

// fixedClock returns a resolver clock pinned to 2026-08-29.
func fixedClock() time.Time {
	return time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
}

// suffixSequence returns a suffix source that yields the given values in order.
func suffixSequence(values ...string) func() string {
	i := 0
	return func() string {
		v := values[i%len(values)]
		i++
		return v
	}
}

func newTestResolver(p Prober, opts ...Option) *Resolver {
	base := []Option{
		WithProber(p),
		WithClock(fixedClock),
		WithSuffix(suffixSequence("aabbccdd")),
	}
	return NewResolver("prompts", "schema", "work", append(base, opts...)...)
}

func TestResolvePromptPath_FallbackChain(t *testing.T) {
	dir := filepath.Join("prompts", "to", "task")

	tests := []struct {
		name         string
		files        []string
		fromLayer    string
		adaptation   string
		wantPath     string
		wantFallback bool
	}{
		{
			"adaptation variant exists",
			[]string{filepath.Join(dir, "f_issue_strict.md")},
			"issue", "strict",
			filepath.Join(dir, "f_issue_strict.md"),
			false,
		},
		{
			"falls back to from-layer file",
			[]string{filepath.Join(dir, "f_issue.md")},
			"issue", "strict",
			filepath.Join(dir, "f_issue.md"),
			true,
		},
		{
			"falls back to generic layer file",
			[]string{filepath.Join(dir, "f_task.md")},
			"issue", "strict",
			filepath.Join(dir, "f_task.md"),
			true,
		},
		{
			"no adaptation skips variant",
			[]string{filepath.Join(dir, "f_issue.md")},
			"issue", "",
			filepath.Join(dir, "f_issue.md"),
			false,
		},
		{
			"never skips ahead in the chain",
			[]string{
				filepath.Join(dir, "f_issue.md"),
				filepath.Join(dir, "f_task.md"),
			},
			"issue", "",
			filepath.Join(dir, "f_issue.md"),
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestResolver(newFakeProber(tt.files, nil))
			sel, err := r.ResolvePromptPath("to", "task", tt.fromLayer, tt.adaptation)
			if err != nil {
				t.Fatalf("ResolvePromptPath() error = %v", err)
			}
			if sel.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", sel.Path, tt.wantPath)
			}
			if sel.FallbackUsed != tt.wantFallback {
				t.Errorf("FallbackUsed = %v, want %v", sel.FallbackUsed, tt.wantFallback)
			}
		})
	}
}

func TestResolvePromptPath_NotFound(t *testing.T) {
	r := newTestResolver(newFakeProber(nil, nil))

	sel, err := r.ResolvePromptPath("to", "task", "issue", "strict")
	if err == nil {
		t.Fatal("ResolvePromptPath() = nil error, want PromptNotFound")
	}

	dir := filepath.Join("prompts", "to", "task")
	wantProbed := []string{
		filepath.Join(dir, "f_issue_strict.md"),
		filepath.Join(dir, "f_issue.md"),
		filepath.Join(dir, "f_task.md"),
	}
	if len(sel.Probed) != len(wantProbed) {
		t.Fatalf("Probed = %v, want %v", sel.Probed, wantProbed)
	}
	for i := range wantProbed {
		if sel.Probed[i] != wantProbed[i] {
			t.Errorf("Probed[%d] = %q, want %q", i, sel.Probed[i], wantProbed[i])
		}
	}
}

func TestResolvePromptPath_CollapsesDuplicateCandidates(t *testing.T) {
	r := newTestResolver(newFakeProber(nil, nil))

	// fromLayer == layer: the generic fallback equals the from-layer
	// candidate and must not be probed twice.
	sel, err := r.ResolvePromptPath("summary", "project", "project", "")
	if err == nil {
		t.Fatal("expected PromptNotFound")
	}
	if len(sel.Probed) != 1 {
		t.Errorf("Probed = %v, want a single collapsed candidate", sel.Probed)
	}
}

func TestResolvePromptPath_Deterministic(t *testing.T) {
	dir := filepath.Join("prompts", "to", "task")
	p := newFakeProber([]string{filepath.Join(dir, "f_issue.md")}, nil)
	r := newTestResolver(p)

	first, err1 := r.ResolvePromptPath("to", "task", "issue", "")
	second, err2 := r.ResolvePromptPath("to", "task", "issue", "")
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if first.Path != second.Path {
		t.Errorf("repeated resolution differs: %q vs %q", first.Path, second.Path)
	}
}

func TestResolveSchemaPath(t *testing.T) {
	r := newTestResolver(newFakeProber(nil, nil))

	got := r.ResolveSchemaPath("to", "task")
	want := filepath.Join("schema", "to", "task", SchemaFileName)
	if got != want {
		t.Errorf("ResolveSchemaPath() = %q, want %q", got, want)
	}
}

func TestResolveInputPath(t *testing.T) {
	r := newTestResolver(newFakeProber(nil, nil))

	tests := []struct {
		name     string
		fromFile string
		layer    string
		want     string
		wantOK   bool
	}{
		{"absent", "", "issue", "", false},
		{
			"qualified path used verbatim",
			"docs/issues/123.md", "issue",
			filepath.Clean("docs/issues/123.md"), true,
		},
		{
			"bare filename joined under layer dir",
			"123_issue_report.md", "issue",
			filepath.Join("work", "issue", "123_issue_report.md"), true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.ResolveInputPath(tt.fromFile, tt.layer)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("ResolveInputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveOutputPath(t *testing.T) {
	generated := "20260829_aabbccdd.md"

	tests := []struct {
		name        string
		destination string
		dirs        []string
		want        string
	}{
		{
			"absent auto-generates under layer dir",
			"", nil,
			filepath.Join("work", "task", generated),
		},
		{
			"bare filename joined under layer dir",
			"result.md", nil,
			filepath.Join("work", "task", "result.md"),
		},
		{
			"existing directory auto-generates inside",
			"out/", []string{"out"},
			filepath.Join("out", generated),
		},
		{
			"qualified file path used verbatim",
			"out/result.md", nil,
			filepath.Join("out", "result.md"),
		},
		{
			"extensionless qualified path treated as directory",
			"out/reports", nil,
			filepath.Join("out", "reports", generated),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestResolver(newFakeProber(nil, tt.dirs))
			got, err := r.ResolveOutputPath(tt.destination, "task")
			if err != nil {
				t.Fatalf("ResolveOutputPath() error = %v", err)
			}
			if got == "" {
				t.Fatal("ResolveOutputPath() returned empty path")
			}
			if got != tt.want {
				t.Errorf("ResolveOutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveOutputPath_Conflict(t *testing.T) {
	// An extension-bearing destination claimed by an existing directory is
	// the one ambiguous case.
	r := newTestResolver(newFakeProber(nil, []string{filepath.Join("out", "report.md")}))

	_, err := r.ResolveOutputPath("out/report.md", "task")
	if err == nil {
		t.Fatal("ResolveOutputPath() = nil error, want PathConflict")
	}
}

func TestResolveOutputPath_CollisionReroll(t *testing.T) {
	taken := filepath.Join("work", "task", "20260829_11111111.md")
	p := newFakeProber([]string{taken}, nil)
	r := NewResolver("prompts", "schema", "work",
		WithProber(p),
		WithClock(fixedClock),
		WithSuffix(suffixSequence("11111111", "22222222")),
	)

	got, err := r.ResolveOutputPath("", "task")
	if err != nil {
		t.Fatalf("ResolveOutputPath() error = %v", err)
	}
	want := filepath.Join("work", "task", "20260829_22222222.md")
	if got != want {
		t.Errorf("ResolveOutputPath() = %q, want re-rolled %q", got, want)
	}
}

func TestResolveOutputPath_UniquePerCall(t *testing.T) {
	// Two auto-generated names in the same directory must differ when the
	// first is taken by the time the second is generated.
	dir := t.TempDir()
	r := NewResolver("prompts", "schema", dir)

	first, err := r.ResolveOutputPath("", "task")
	if err != nil {
		t.Fatalf("first ResolveOutputPath() error = %v", err)
	}
	second, err := r.ResolveOutputPath("", "task")
	if err != nil {
		t.Fatalf("second ResolveOutputPath() error = %v", err)
	}
	// Random suffixes make collisions vanishingly unlikely; equality here
	// means the suffix source is broken.
	if first == second {
		t.Errorf("two auto-generated paths are identical: %q", first)
	}
}
