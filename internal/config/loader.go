// Package config loads the optional per-project generator configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the per-project configuration file, looked up in the scan root.
const FileName = ".taskgen.yaml"

// Default values for Config.
const (
	DefaultModuleSuffix  = "Task"
	DefaultEntryPoint    = "task"
	DefaultCommandType   = "Command"
	DefaultSupportImport = "System.Console.CmdArgs"
)

// DefaultConfig returns a Config with the stock conventions.
func DefaultConfig() Config {
	return Config{
		TaskSuffixes:  []string{"Task.hs", "Task.lhs"},
		ModuleSuffix:  DefaultModuleSuffix,
		EntryPoint:    DefaultEntryPoint,
		CommandType:   DefaultCommandType,
		SupportImport: DefaultSupportImport,
		Extensions:    []string{"DeriveDataTypeable"},
		Deriving:      []string{"Data", "Typeable", "Show"},
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// Load reads and parses .taskgen.yaml from the given base path. A missing
// file returns the default config; fields absent from the file keep their
// defaults.
func Load(basePath string) (*Config, error) {
	configPath := filepath.Join(basePath, FileName)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that all config values are usable.
func Validate(cfg *Config) error {
	if len(cfg.TaskSuffixes) == 0 {
		return ValidationError{Field: "task_suffixes", Message: "must list at least one suffix"}
	}
	for _, suffix := range cfg.TaskSuffixes {
		if suffix == "" {
			return ValidationError{Field: "task_suffixes", Message: "suffixes must be non-empty"}
		}
	}
	if cfg.EntryPoint == "" {
		return ValidationError{Field: "entry_point", Message: "must be non-empty"}
	}
	if cfg.CommandType == "" {
		return ValidationError{Field: "command_type", Message: "must be non-empty"}
	}
	if cfg.SupportImport == "" {
		return ValidationError{Field: "support_import", Message: "must be non-empty"}
	}
	return nil
}
