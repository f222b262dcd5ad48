package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

// ErrBookNotFound indicates there is no book.toml in the base directory
var ErrBookNotFound = errors.New("book file not found")

// Book is the part of an mdBook book.toml the generator reads
type Book struct {
	Book BookSection `toml:"book"`
}

// BookSection is the [book] table
type BookSection struct {
	Title string `toml:"title"`
	Src   string `toml:"src"`
}

// LoadBook reads and parses a book.toml file
func LoadBook(fs afero.Fs, path string) (*Book, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrBookNotFound, path)
		}
		return nil, fmt.Errorf("failed to read book file: %w", err)
	}

	var book Book
	if err := toml.Unmarshal(data, &book); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &book, nil
}

// ResolveSourceRoot returns the source root relative to baseDir.
// An explicit source.root wins; otherwise book.toml's [book] src is used when
// the file exists, and DefaultSourceRoot when it does not.
func (c *Config) ResolveSourceRoot(fs afero.Fs, baseDir string) (string, error) {
	root := c.Source.Root

	if root == "" && c.Source.BookFile != "" {
		book, err := LoadBook(fs, filepath.Join(baseDir, c.Source.BookFile))
		switch {
		case errors.Is(err, ErrBookNotFound):
		case err != nil:
			return "", err
		default:
			root = book.Book.Src
		}
	}

	if root == "" {
		root = DefaultSourceRoot
	}
	if filepath.IsAbs(root) {
		return filepath.Clean(root), nil
	}
	return filepath.Join(baseDir, root), nil
}

// OutputPath returns the manifest file path inside root
func (c *Config) OutputPath(root string) string {
	return filepath.Join(root, c.Output.File)
}
