package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrSourceNotFound indicates the source root directory does not exist
	ErrSourceNotFound = errors.New("source directory not found")

	// ErrNamingViolation indicates a digit-leading folder does not match NN_slug / NN-slug
	ErrNamingViolation = errors.New("naming convention violation")

	// ErrUnauthorizedFolder indicates a top-level folder that is neither a section nor whitelisted
	ErrUnauthorizedFolder = errors.New("unauthorized folder")

	// ErrDuplicateSection indicates two sections share the same numeric prefix
	ErrDuplicateSection = errors.New("duplicate section number")

	// ErrMissingIndex indicates a section folder without index.md
	ErrMissingIndex = errors.New("missing section index")

	// ErrStale indicates the existing manifest differs from the generated one
	ErrStale = errors.New("manifest is out of date")

	// ErrWriteFailed indicates writing output failed
	ErrWriteFailed = errors.New("write failed")
)

// StructureError reports a violation of the source tree conventions.
// It unwraps to one of the sentinel errors above.
type StructureError struct {
	Kind     error
	Root     string
	Folder   string
	Conflict string
	Number   int
}

func (e *StructureError) Error() string {
	switch e.Kind {
	case ErrSourceNotFound:
		return fmt.Sprintf("'%s' directory not found.", e.Root)
	case ErrNamingViolation:
		return fmt.Sprintf("Folder '%s' violates naming convention.", e.Folder)
	case ErrUnauthorizedFolder:
		return fmt.Sprintf("Unauthorized folder '%s' found in %s/.", e.Folder, e.Root)
	case ErrDuplicateSection:
		return fmt.Sprintf("Duplicate section '%d' (Conflict: '%s' vs '%s')", e.Number, e.Conflict, e.Folder)
	case ErrMissingIndex:
		return fmt.Sprintf("Folder '%s' is missing 'index.md'.", e.Folder)
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Folder)
}

func (e *StructureError) Unwrap() error {
	return e.Kind
}

// NewStructureError creates a StructureError for a single offending folder
func NewStructureError(kind error, root, folder string) *StructureError {
	return &StructureError{
		Kind:   kind,
		Root:   root,
		Folder: folder,
	}
}

// NewDuplicateSectionError creates a StructureError for two folders sharing a number.
// existing is the folder seen first.
func NewDuplicateSectionError(root string, number int, existing, folder string) *StructureError {
	return &StructureError{
		Kind:     ErrDuplicateSection,
		Root:     root,
		Folder:   folder,
		Conflict: existing,
		Number:   number,
	}
}

// IsBlocking reports whether err is a convention violation found inside an
// existing source tree, as opposed to a missing root or an I/O failure.
func IsBlocking(err error) bool {
	return errors.Is(err, ErrNamingViolation) ||
		errors.Is(err, ErrUnauthorizedFolder) ||
		errors.Is(err, ErrDuplicateSection) ||
		errors.Is(err, ErrMissingIndex)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}
