package testutil

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// BuildTree creates a documentation fixture under root. Paths ending in "/"
// become directories, every other path becomes a Markdown file whose content
// is a heading derived from its name.
func BuildTree(t *testing.T, fs afero.Fs, root string, paths ...string) {
	t.Helper()

	require.NoError(t, fs.MkdirAll(root, 0755))

	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		if strings.HasSuffix(p, "/") {
			require.NoError(t, fs.MkdirAll(full, 0755))
			continue
		}
		require.NoError(t, fs.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, afero.WriteFile(fs, full, []byte("# "+filepath.Base(p)+"\n"), 0644))
	}
}

// ReadFile reads a file from fs and fails the test on error
func ReadFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return string(data)
}
