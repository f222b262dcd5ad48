package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestWriteDefault(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := filepath.Join("home", ".gensummary", LocalConfigFile)

	require.NoError(t, WriteDefault(fs, path, false))

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)

	var cfg Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, DefaultBookFile, cfg.Source.BookFile)
	assert.Equal(t, []string{"images"}, cfg.Source.AllowedDirs)
	assert.Equal(t, DefaultOutputFile, cfg.Output.File)
	assert.Equal(t, DefaultExportFormat, cfg.Output.Format)
}

func TestWriteDefault_Existing(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, LocalConfigFile, []byte("output:\n  file: NAV.md\n"), 0644))

	err := WriteDefault(fs, LocalConfigFile, false)
	require.ErrorIs(t, err, ErrConfigExists)

	data, err := afero.ReadFile(fs, LocalConfigFile)
	require.NoError(t, err)
	assert.Equal(t, "output:\n  file: NAV.md\n", string(data))

	require.NoError(t, WriteDefault(fs, LocalConfigFile, true))
	data, err = afero.ReadFile(fs, LocalConfigFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "file: SUMMARY.md")
}

func TestWriteDefault_RoundTripsThroughLoader(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, WriteDefault(afero.NewOsFs(), filepath.Join(dir, LocalConfigFile), false))

	cfg, v, err := LoadWithViper()
	require.NoError(t, err)
	assert.Equal(t, LocalConfigFile, filepath.Base(v.ConfigFileUsed()))
	assert.Equal(t, DefaultOutputFile, cfg.Output.File)
	assert.Equal(t, DefaultAllowedDirs, cfg.Source.AllowedDirs)
}
