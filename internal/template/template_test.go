package template

import (
	goerrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/wexinc/breakdown/internal/errors"
)

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name    string
		content string
		vars    map[string]string
		want    string
	}{
		{
			"single variable",
			"Input: {input_text}",
			map[string]string{"input_text": "hello"},
			"Input: hello",
		},
		{
			"multiple variables",
			"{a} and {b}",
			map[string]string{"a": "1", "b": "2"},
			"1 and 2",
		},
		{
			"unknown placeholder left unchanged",
			"keep {unknown} as is",
			map[string]string{"known": "x"},
			"keep {unknown} as is",
		},
		{
			"repeated placeholder",
			"{x}{x}{x}",
			map[string]string{"x": "ab"},
			"ababab",
		},
		{
			"no placeholders",
			"plain text",
			map[string]string{"x": "y"},
			"plain text",
		},
		{
			"empty braces untouched",
			"{} and {1bad}",
			map[string]string{},
			"{} and {1bad}",
		},
		{
			"value containing braces is not re-expanded",
			"{a}",
			map[string]string{"a": "{b}", "b": "nope"},
			"{b}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Substitute(tt.content, tt.vars)
			if got != tt.want {
				t.Errorf("Substitute() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFileEngine_Generate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f_issue.md")
	content := "# Task\n\nFrom: {input_text_file}\nTo: {destination_path}\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	engine := NewFileEngine()
	got, err := engine.Generate(path, map[string]string{
		"input_text_file":  "work/issue/123.md",
		"destination_path": "work/task/out.md",
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	want := "# Task\n\nFrom: work/issue/123.md\nTo: work/task/out.md\n"
	if got != want {
		t.Errorf("Generate() = %q, want %q", got, want)
	}
}

func TestFileEngine_Generate_MissingTemplate(t *testing.T) {
	engine := NewFileEngine()

	_, err := engine.Generate(filepath.Join(t.TempDir(), "absent.md"), nil)
	if err == nil {
		t.Fatal("Generate() = nil error, want TemplateEngine failure")
	}
	if !goerrors.Is(err, errors.ErrTemplateEngine) {
		t.Errorf("error = %v, want ErrTemplateEngine", err)
	}
}
