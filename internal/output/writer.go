package output

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/voust/alignment/internal/domain"
	"github.com/voust/alignment/internal/utils"
)

// DefaultPath is the manifest location when none is given
var DefaultPath = filepath.Join("src", "SUMMARY.md")

// Writer handles writing the manifest file to the filesystem
type Writer struct {
	fs     afero.Fs
	path   string
	logger *utils.Logger
}

// WriterOptions contains options for the writer
type WriterOptions struct {
	Fs     afero.Fs
	Path   string
	Logger *utils.Logger
}

// NewWriter creates a new output writer
func NewWriter(opts WriterOptions) *Writer {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Path == "" {
		opts.Path = DefaultPath
	}
	if opts.Logger == nil {
		opts.Logger = utils.NewNopLogger()
	}

	return &Writer{
		fs:     opts.Fs,
		path:   opts.Path,
		logger: opts.Logger.WithComponent("writer"),
	}
}

// Path returns the manifest file path
func (w *Writer) Path() string {
	return w.path
}

// Write truncates the manifest file and writes content
func (w *Writer) Write(ctx context.Context, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := afero.WriteFile(w.fs, w.path, content, 0644); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrWriteFailed, w.path, err)
	}

	w.logger.Debug().
		Str("path", w.path).
		Int("bytes", len(content)).
		Msg("Manifest written")
	return nil
}

// Check compares the manifest file against content without modifying it.
// A missing or different file yields domain.ErrStale.
func (w *Writer) Check(content []byte) error {
	existing, err := afero.ReadFile(w.fs, w.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s does not exist", domain.ErrStale, w.path)
		}
		return fmt.Errorf("failed to read %s: %w", w.path, err)
	}

	if !bytes.Equal(existing, content) {
		return fmt.Errorf("%w: %s", domain.ErrStale, w.path)
	}
	return nil
}
