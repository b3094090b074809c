// Package config provides configuration data structures for breakdown.
package config

import (
	"time"
)

// Config represents the complete breakdown configuration, merged from the
// app-level and user-level YAML files under {working_dir}/config/.
// It is constructed once per process and passed explicitly through every
// function call; nothing mutates it after loading.
type Config struct {
	// WorkingDir is the breakdown workspace root (default: .agent/breakdown).
	WorkingDir string `yaml:"working_dir" mapstructure:"working_dir"`
	// AppPrompt configures prompt template locations.
	AppPrompt PromptConfig `yaml:"app_prompt" mapstructure:"app_prompt"`
	// AppSchema configures schema file locations.
	AppSchema SchemaConfig `yaml:"app_schema" mapstructure:"app_schema"`
	// Logging configures the file logger.
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// PromptConfig configures where prompt templates live.
type PromptConfig struct {
	// BaseDir is the root directory for prompt templates.
	// Prompt paths are {base_dir}/{directive}/{layer}/f_{fromLayer}[_{adaptation}].md.
	BaseDir string `yaml:"base_dir" mapstructure:"base_dir"`
}

// SchemaConfig configures where schema files live.
type SchemaConfig struct {
	// BaseDir is the root directory for schema files.
	// Schema paths are {base_dir}/{directive}/{layer}/base.schema.md.
	BaseDir string `yaml:"base_dir" mapstructure:"base_dir"`
}

// LoggingConfig configures the file logger.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info).
	Level string `yaml:"level" mapstructure:"level"`
	// Dir is the log directory (default: {working_dir}/logs).
	Dir string `yaml:"dir" mapstructure:"dir"`
	// MaxFiles is the maximum number of log files to keep (default: 10).
	MaxFiles int `yaml:"max_files" mapstructure:"max_files"`
	// MaxAge is the maximum age of log files before cleanup (default: 168h).
	MaxAge time.Duration `yaml:"max_age" mapstructure:"max_age"`
}

// Default values.
const (
	DefaultWorkingDir    = ".agent/breakdown"
	DefaultPromptBaseDir = ".agent/breakdown/prompts"
	DefaultSchemaBaseDir = ".agent/breakdown/schema"
	DefaultLogLevel      = "info"
	DefaultMaxLogFiles   = 10
	DefaultMaxLogAge     = 7 * 24 * time.Hour
)

// NewConfig returns a new Config with default values applied.
func NewConfig() *Config {
	return &Config{
		WorkingDir: DefaultWorkingDir,
		AppPrompt: PromptConfig{
			BaseDir: DefaultPromptBaseDir,
		},
		AppSchema: SchemaConfig{
			BaseDir: DefaultSchemaBaseDir,
		},
		Logging: LoggingConfig{
			Level:    DefaultLogLevel,
			MaxFiles: DefaultMaxLogFiles,
			MaxAge:   DefaultMaxLogAge,
		},
	}
}

// ApplyDefaults applies default values to any unset fields.
// This is used after loading config from file to fill in missing values.
func (c *Config) ApplyDefaults() {
	defaults := NewConfig()

	if c.WorkingDir == "" {
		c.WorkingDir = defaults.WorkingDir
	}
	if c.AppPrompt.BaseDir == "" {
		c.AppPrompt.BaseDir = defaults.AppPrompt.BaseDir
	}
	if c.AppSchema.BaseDir == "" {
		c.AppSchema.BaseDir = defaults.AppSchema.BaseDir
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}
	if c.Logging.Dir == "" {
		c.Logging.Dir = c.WorkingDir + "/logs"
	}
	if c.Logging.MaxFiles == 0 {
		c.Logging.MaxFiles = defaults.Logging.MaxFiles
	}
	if c.Logging.MaxAge == 0 {
		c.Logging.MaxAge = defaults.Logging.MaxAge
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	msg := "multiple validation errors:"
	for _, err := range e {
		msg += "\n  - " + err.Error()
	}
	return msg
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if c.WorkingDir == "" {
		errs = append(errs, &ValidationError{Field: "working_dir", Message: "must not be empty"})
	}
	if c.AppPrompt.BaseDir == "" {
		errs = append(errs, &ValidationError{Field: "app_prompt.base_dir", Message: "must not be empty"})
	}
	if c.AppSchema.BaseDir == "" {
		errs = append(errs, &ValidationError{Field: "app_schema.base_dir", Message: "must not be empty"})
	}

	if c.Logging.Level != "" {
		switch c.Logging.Level {
		case "debug", "info", "warn", "error":
			// valid
		default:
			errs = append(errs, &ValidationError{
				Field:   "logging.level",
				Message: "must be 'debug', 'info', 'warn', or 'error'",
			})
		}
	}
	if c.Logging.MaxFiles < 0 {
		errs = append(errs, &ValidationError{Field: "logging.max_files", Message: "must be non-negative"})
	}
	if c.Logging.MaxAge < 0 {
		errs = append(errs, &ValidationError{Field: "logging.max_age", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
