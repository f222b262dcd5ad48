package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Export formats
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// IsValidFormat reports whether format is a supported export format
func IsValidFormat(format string) bool {
	switch strings.ToLower(format) {
	case FormatYAML, "yml", FormatJSON:
		return true
	}
	return false
}

// Export serializes the manifest tree in the given format
func Export(m *Manifest, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatYAML, "yml":
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	case FormatJSON:
		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode json: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}
