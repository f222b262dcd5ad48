package utils

import (
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"unicode"

	"github.com/spf13/afero"
)

// reservedNames cannot be used as file names on Windows, with or without extension
var reservedNames = []string{"CON", "PRN", "AUX", "NUL",
	"COM1", "COM2", "COM3", "COM4", "COM5", "COM6", "COM7", "COM8", "COM9",
	"LPT1", "LPT2", "LPT3", "LPT4", "LPT5", "LPT6", "LPT7", "LPT8", "LPT9"}

// IsHidden reports whether a directory entry name is hidden
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// IsMarkdown reports whether name carries the Markdown extension
func IsMarkdown(name string) bool {
	return strings.HasSuffix(name, ".md")
}

// LinkPath joins manifest link segments with forward slashes regardless of OS
func LinkPath(elem ...string) string {
	return path.Join(elem...)
}

// IsValidFilename reports whether name is a plain, portable file name:
// no directory part, no characters Windows rejects, no reserved device name.
func IsValidFilename(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `<>:"|?*\/`) {
		return false
	}
	if strings.ContainsFunc(name, unicode.IsControl) {
		return false
	}

	stem, _, _ := strings.Cut(name, ".")
	return !slices.Contains(reservedNames, strings.ToUpper(stem))
}

// EnsureDir creates the parent directory of p
func EnsureDir(fs afero.Fs, p string) error {
	return fs.MkdirAll(filepath.Dir(p), 0755)
}

// DirExists reports whether path exists and is a directory
func DirExists(fs afero.Fs, path string) bool {
	ok, err := afero.DirExists(fs, path)
	return err == nil && ok
}

// FileExists reports whether path exists and is not a directory
func FileExists(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	return err == nil && !info.IsDir()
}

// ExpandPath expands a leading ~ to the user's home directory
func ExpandPath(p string) string {
	rest, ok := strings.CutPrefix(p, "~")
	if !ok || (rest != "" && rest[0] != '/') {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, rest)
}
