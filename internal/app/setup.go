// Package app provides workspace bootstrap for breakdown.
// This package handles the `breakdown init` flow: creating the workspace
// directory tree, writing the default configuration, and seeding starter
// prompt templates and schemas.
package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wexinc/breakdown/internal/config"
	"github.com/wexinc/breakdown/internal/resolve"
	"github.com/wexinc/breakdown/internal/version"
)

// SetupProgressFunc is called with progress updates during setup.
type SetupProgressFunc func(status string)

// Setup orchestrates workspace initialization.
type Setup struct {
	// ProjectDir is the directory the workspace is created under.
	ProjectDir string
	// Force overwrites existing config and templates.
	Force bool
	// BuildVersion is recorded in the workspace version stamp.
	BuildVersion string
	// OnProgress is called with status updates.
	OnProgress SetupProgressFunc
}

// SetupResult describes what init created.
type SetupResult struct {
	// WorkingDir is the created workspace root.
	WorkingDir string
	// ConfigPath is the written app-level config file.
	ConfigPath string
	// TemplatesWritten counts the starter templates and schemas created.
	TemplatesWritten int
}

// NewSetup creates a setup orchestrator for projectDir.
func NewSetup(projectDir string) *Setup {
	return &Setup{
		ProjectDir: projectDir,
		OnProgress: func(status string) {},
	}
}

// NeedsSetup returns true if the project has no breakdown workspace yet.
func NeedsSetup(projectDir string) bool {
	_, err := os.Stat(filepath.Join(projectDir, config.DefaultWorkingDir))
	return os.IsNotExist(err)
}

// workingDir returns the workspace root under ProjectDir.
func (s *Setup) workingDir() string {
	return filepath.Join(s.ProjectDir, config.DefaultWorkingDir)
}

// Run executes the full init flow. It is idempotent: existing files are
// left alone unless Force is set; missing pieces are always filled in.
func (s *Setup) Run() (*SetupResult, error) {
	if err := s.CreateWorkspace(); err != nil {
		return nil, err
	}

	configPath, err := s.WriteConfig()
	if err != nil {
		return nil, err
	}

	written, err := s.WriteStarterTemplates()
	if err != nil {
		return nil, err
	}

	buildVersion := s.BuildVersion
	if buildVersion == "" {
		buildVersion = "dev"
	}
	if err := version.Stamp(s.workingDir(), buildVersion); err != nil {
		return nil, fmt.Errorf("failed to write version stamp: %w", err)
	}

	return &SetupResult{
		WorkingDir:       s.workingDir(),
		ConfigPath:       configPath,
		TemplatesWritten: written,
	}, nil
}

// CreateWorkspace creates the workspace directory tree.
func (s *Setup) CreateWorkspace() error {
	root := s.workingDir()
	if err := os.MkdirAll(root, 0755); err != nil {
		return fmt.Errorf("failed to create workspace directory: %w", err)
	}

	subdirs := []string{
		config.ConfigDirName,
		"prompts",
		"schema",
		"logs",
		"project",
		"issue",
		"task",
	}
	for _, subdir := range subdirs {
		path := filepath.Join(root, subdir)
		if err := os.MkdirAll(path, 0755); err != nil {
			return fmt.Errorf("failed to create %s directory: %w", subdir, err)
		}
	}

	s.report("Created " + root)
	return nil
}

// WriteConfig writes the default app-level config file, keeping an existing
// one unless Force is set. The returned path points at the config file.
func (s *Setup) WriteConfig() (string, error) {
	root := s.workingDir()
	path := filepath.Join(root, config.ConfigDirName, config.AppConfigFile)

	if !s.Force {
		if _, err := os.Stat(path); err == nil {
			s.report("Keeping existing " + path)
			return path, nil
		}
	}

	cfg := config.NewConfig()
	cfg.WorkingDir = root
	cfg.AppPrompt.BaseDir = filepath.Join(root, "prompts")
	cfg.AppSchema.BaseDir = filepath.Join(root, "schema")
	cfg.Logging.Dir = filepath.Join(root, "logs")

	if err := config.Save(cfg, path); err != nil {
		return "", err
	}
	s.report("Wrote " + path)
	return path, nil
}

// starterTemplate seeds one prompt or schema file.
type starterTemplate struct {
	directive string
	layer     string
	name      string
	content   string
}

// starterTemplates are the prompt/schema files `init` seeds so a fresh
// workspace can generate prompts immediately.
var starterTemplates = []starterTemplate{
	{"to", "issue", "f_project.md", toIssuePrompt},
	{"to", "task", "f_issue.md", toTaskPrompt},
	{"to", "task", "f_task.md", toTaskGenericPrompt},
	{"summary", "project", "f_project.md", summaryProjectPrompt},
	{"summary", "issue", "f_issue.md", summaryIssuePrompt},
	{"defect", "issue", "f_issue.md", defectIssuePrompt},
}

// starterSchemas are the schema candidates matching the starter prompts.
var starterSchemas = []starterTemplate{
	{"to", "issue", resolve.SchemaFileName, issueSchema},
	{"to", "task", resolve.SchemaFileName, taskSchema},
}

// WriteStarterTemplates seeds the starter prompts and schemas, skipping
// files that already exist unless Force is set. Returns the number of files
// written.
func (s *Setup) WriteStarterTemplates() (int, error) {
	root := s.workingDir()
	written := 0

	write := func(baseDir string, t starterTemplate) error {
		dir := filepath.Join(baseDir, t.directive, t.layer)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
		path := filepath.Join(dir, t.name)
		if !s.Force {
			if _, err := os.Stat(path); err == nil {
				return nil
			}
		}
		if err := os.WriteFile(path, []byte(t.content), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		written++
		return nil
	}

	promptBase := filepath.Join(root, "prompts")
	for _, t := range starterTemplates {
		if err := write(promptBase, t); err != nil {
			return written, err
		}
	}

	schemaBase := filepath.Join(root, "schema")
	for _, t := range starterSchemas {
		if err := write(schemaBase, t); err != nil {
			return written, err
		}
	}

	if written > 0 {
		s.report(fmt.Sprintf("Seeded %d starter templates", written))
	}
	return written, nil
}

// report calls the progress callback.
func (s *Setup) report(status string) {
	if s.OnProgress != nil {
		s.OnProgress(status)
	}
}
