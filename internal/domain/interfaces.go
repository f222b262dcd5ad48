package domain

import "context"

// SummaryWriter persists the rendered manifest
type SummaryWriter interface {
	// Path returns the destination file path
	Path() string
	// Write overwrites the destination with content
	Write(ctx context.Context, content []byte) error
	// Check returns ErrStale when the destination does not hold exactly content
	Check(content []byte) error
}
