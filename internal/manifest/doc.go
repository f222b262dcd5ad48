// Package manifest holds the generated navigation manifest of a documentation
// tree and renders it. A manifest is built by the scanner and written as an
// mdBook-style SUMMARY.md:
//
//	# Summary
//
//	- [Introduction](index.md)
//
//	- [Getting Started](01_getting-started/index.md)
//	    - [Install](01_getting-started/install.md)
//
// # Export
//
// The same tree can be exported as YAML or JSON for other tooling:
//
//	data, err := manifest.Export(m, manifest.FormatYAML)
//
// # Error Handling
//
// The package defines sentinel errors for common failure cases:
//   - ErrUnsupportedFormat: export format is neither yaml nor json
package manifest
