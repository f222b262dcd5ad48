package config

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/voust/alignment/internal/utils"
)

// ErrConfigExists is returned by WriteDefault when the target file is present
var ErrConfigExists = errors.New("config file already exists")

// LocalConfigFile is the project config file name looked up in the working directory
const LocalConfigFile = configName + ".yaml"

// WriteDefault writes the default configuration as YAML to path, creating
// parent directories. An existing file is only replaced when force is set.
func WriteDefault(fs afero.Fs, path string, force bool) error {
	if !force && utils.FileExists(fs, path) {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := utils.EnsureDir(fs, path); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return afero.WriteFile(fs, path, data, 0644)
}
