package manifest

import "errors"

// Sentinel errors for the manifest package
var (
	// ErrUnsupportedFormat indicates an unknown export format
	ErrUnsupportedFormat = errors.New("unsupported export format (use yaml or json)")
)
