package config

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/voust/alignment/internal/domain"
	"github.com/voust/alignment/internal/manifest"
	"github.com/voust/alignment/internal/utils"
)

// Config represents the application configuration
type Config struct {
	Source  SourceConfig  `mapstructure:"source" yaml:"source"`
	Output  OutputConfig  `mapstructure:"output" yaml:"output"`
	Git     GitConfig     `mapstructure:"git" yaml:"git"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// SourceConfig describes where the documentation tree lives and what it may contain
type SourceConfig struct {
	Root        string   `mapstructure:"root" yaml:"root"` // empty: book.toml [book].src, then DefaultSourceRoot
	BookFile    string   `mapstructure:"book_file" yaml:"book_file"`
	AllowedDirs []string `mapstructure:"allowed_dirs" yaml:"allowed_dirs"`
	Exclude     []string `mapstructure:"exclude" yaml:"exclude"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	File   string `mapstructure:"file" yaml:"file"`
	Format string `mapstructure:"format" yaml:"format"` // tree export format
}

// GitConfig contains repository settings
type GitConfig struct {
	RepoRoot bool `mapstructure:"repo_root" yaml:"repo_root"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration, back-filling defaults for empty values
func (c *Config) Validate() error {
	if c.Source.BookFile == "" {
		c.Source.BookFile = DefaultBookFile
	}
	if c.Source.AllowedDirs == nil {
		c.Source.AllowedDirs = DefaultAllowedDirs
	}
	for _, pattern := range c.Source.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return domain.NewValidationError("source.exclude", fmt.Sprintf("invalid pattern %q", pattern))
		}
	}

	if c.Output.File == "" {
		c.Output.File = DefaultOutputFile
	}
	if !utils.IsValidFilename(c.Output.File) {
		return domain.NewValidationError("output.file", fmt.Sprintf("%q is not a plain file name", c.Output.File))
	}
	// Case-insensitive filesystems would resolve INDEX.md to the landing page too.
	if strings.EqualFold(c.Output.File, domain.IndexFile) {
		return domain.NewValidationError("output.file", fmt.Sprintf("%q would overwrite the landing page", c.Output.File))
	}
	if c.Output.Format == "" {
		c.Output.Format = DefaultExportFormat
	}
	if !manifest.IsValidFormat(c.Output.Format) {
		return domain.NewValidationError("output.format", fmt.Sprintf("unsupported format %q", c.Output.Format))
	}

	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
	return nil
}
