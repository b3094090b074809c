// Package config provides configuration loading and management for breakdown.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// ConfigDirName is the directory under the workspace root holding config files.
	ConfigDirName = "config"

	// AppConfigFile is the app-level configuration file name.
	AppConfigFile = "app.yml"
	// UserConfigFile is the user-level configuration file name, merged over app.yml.
	UserConfigFile = "user.yml"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "BREAKDOWN"
)

// Loader handles loading configuration from files and environment.
type Loader struct {
	v *viper.Viper

	// prefix selects an alternate config set: {prefix}-app.yml / {prefix}-user.yml.
	prefix string
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v}
}

// WithPrefix returns the loader configured to use an alternate config set.
// An empty prefix keeps the default app.yml/user.yml pair.
func (l *Loader) WithPrefix(prefix string) *Loader {
	l.prefix = prefix
	return l
}

// appFileName returns the app config file name for the active prefix.
func (l *Loader) appFileName() string {
	if l.prefix == "" {
		return AppConfigFile
	}
	return l.prefix + "-" + AppConfigFile
}

// userFileName returns the user config file name for the active prefix.
func (l *Loader) userFileName() string {
	if l.prefix == "" {
		return UserConfigFile
	}
	return l.prefix + "-" + UserConfigFile
}

// LoadConfig loads configuration from {workingDir}/config/: the app-level
// file is required, the user-level file is merged over it when present.
// Environment overrides and defaults are applied afterwards, then the
// result is validated.
func (l *Loader) LoadConfig(workingDir string) (*Config, error) {
	if workingDir == "" {
		workingDir = DefaultWorkingDir
	}
	configDir := filepath.Join(workingDir, ConfigDirName)
	appPath := filepath.Join(configDir, l.appFileName())
	userPath := filepath.Join(configDir, l.userFileName())

	if _, err := os.Stat(appPath); os.IsNotExist(err) {
		return nil, &LoadError{
			Path:    appPath,
			Message: "config file not found",
			Err:     err,
		}
	}

	l.v.SetConfigFile(appPath)
	if err := l.v.ReadInConfig(); err != nil {
		return nil, &LoadError{
			Path:    appPath,
			Message: "failed to read config file",
			Err:     err,
		}
	}

	// User-level overrides are optional.
	if _, err := os.Stat(userPath); err == nil {
		l.v.SetConfigFile(userPath)
		if err := l.v.MergeInConfig(); err != nil {
			return nil, &LoadError{
				Path:    userPath,
				Message: "failed to merge user config file",
				Err:     err,
			}
		}
	}

	cfg := NewConfig()
	if err := l.v.Unmarshal(cfg, viperDecodeHook); err != nil {
		return nil, &LoadError{
			Path:    appPath,
			Message: "failed to parse config file",
			Err:     err,
		}
	}

	l.applyEnvOverrides(cfg)
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, &LoadError{
			Path:    appPath,
			Message: "configuration validation failed",
			Err:     err,
		}
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func (l *Loader) applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvPrefix + "_WORKING_DIR"); v != "" {
		cfg.WorkingDir = v
	}
	if v := os.Getenv(EnvPrefix + "_APP_PROMPT_BASE_DIR"); v != "" {
		cfg.AppPrompt.BaseDir = v
	}
	if v := os.Getenv(EnvPrefix + "_APP_SCHEMA_BASE_DIR"); v != "" {
		cfg.AppSchema.BaseDir = v
	}
	if v := os.Getenv(EnvPrefix + "_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvPrefix + "_LOGGING_DIR"); v != "" {
		cfg.Logging.Dir = v
	}
	if v := os.Getenv(EnvPrefix + "_LOGGING_MAX_AGE"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Logging.MaxAge = d
		}
	}
}

// viperDecodeHook provides custom decoding for viper unmarshaling.
func viperDecodeHook(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		stringTrimHookFunc(),
	)
}

// stringTrimHookFunc trims surrounding whitespace from string config values.
func stringTrimHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String || to.Kind() != reflect.String {
			return data, nil
		}
		return strings.TrimSpace(data.(string)), nil
	}
}

// LoadError represents an error that occurred while loading configuration.
type LoadError struct {
	Path    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load is a convenience function that creates a new Loader and loads
// configuration from the given workspace root.
func Load(workingDir string) (*Config, error) {
	return NewLoader().LoadConfig(workingDir)
}

// LoadWithPrefix loads an alternate config set ({prefix}-app.yml).
func LoadWithPrefix(workingDir, prefix string) (*Config, error) {
	return NewLoader().WithPrefix(prefix).LoadConfig(workingDir)
}

// Save writes the configuration to the given path as YAML.
// Used by `breakdown init` to write the default app.yml.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
