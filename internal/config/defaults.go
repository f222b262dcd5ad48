package config

import (
	"os"
	"path/filepath"
)

// Default values
const (
	// Source defaults
	DefaultSourceRoot = "src"
	DefaultBookFile   = "book.toml"

	// Output defaults
	DefaultOutputFile   = "SUMMARY.md"
	DefaultExportFormat = "yaml"

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"

	// EnvPrefix prefixes every environment override (GENSUMMARY_SOURCE_ROOT, ...)
	EnvPrefix = "GENSUMMARY"
)

// DefaultAllowedDirs are the non-section folders tolerated at the source root
var DefaultAllowedDirs = []string{"images"}

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".gensummary"
	}
	return filepath.Join(home, ".gensummary")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), LocalConfigFile)
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			Root:        "",
			BookFile:    DefaultBookFile,
			AllowedDirs: DefaultAllowedDirs,
			Exclude:     []string{},
		},
		Output: OutputConfig{
			File:   DefaultOutputFile,
			Format: DefaultExportFormat,
		},
		Git: GitConfig{
			RepoRoot: false,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
