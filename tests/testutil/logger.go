package testutil

import (
	"bytes"
	"io"
	"testing"

	"github.com/rs/zerolog"

	"github.com/voust/alignment/internal/utils"
)

// NewTestLogger creates a test logger that discards output
func NewTestLogger(t *testing.T) *utils.Logger {
	t.Helper()

	zlogger := zerolog.New(io.Discard).With().
		Timestamp().
		Str("test", t.Name()).
		Logger()

	return &utils.Logger{Logger: zlogger}
}

// NewBufferLogger creates a debug-level JSON logger writing into the returned buffer
func NewBufferLogger(t *testing.T) (*utils.Logger, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	logger := utils.NewLogger(utils.LoggerOptions{
		Level:  "debug",
		Format: "json",
		Output: &buf,
	})
	return logger, &buf
}
