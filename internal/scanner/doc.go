// Package scanner reads a documentation source root and builds the navigation
// manifest from its folder structure.
//
// # Layout
//
// The source root holds an optional landing page, numbered section folders and
// a small whitelist of asset folders:
//
//	src/
//	  index.md            optional, becomes the "Introduction" entry
//	  images/             whitelisted, ignored
//	  01_getting-started/ section: two digits, "_" or "-", then a slug
//	    index.md          required
//	    install.md        listed as a document
//
// # Conventions
//
// Every violation aborts the scan and is reported as a *domain.StructureError:
//   - a digit-leading folder that does not match the section pattern
//   - a folder that is neither a section nor whitelisted
//   - two sections sharing a number
//   - a section without index.md
//
// Hidden entries (leading ".") are skipped when listing the root and when
// listing a section's documents. Nothing below a section folder is visited.
package scanner
