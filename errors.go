package csvtable

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tablekit/go-csvtable/table"
)

// Common errors for load operations.
var (
	// ErrFileNotFound is returned when the path does not resolve to an
	// existing file.
	ErrFileNotFound = errors.New("file not found")

	// ErrExtensionMismatch is returned when the path's extension is not
	// the expected tag.
	ErrExtensionMismatch = errors.New("file extension mismatch")

	// ErrRead is returned when a source exists but could not be opened
	// or read.
	ErrRead = errors.New("file could not be read")
)

// Query errors, re-exported from the table package so callers can match
// every kind against this package alone.
var (
	ErrFieldNotFound  = table.ErrFieldNotFound
	ErrRowNotFound    = table.ErrRowNotFound
	ErrColumnNotFound = table.ErrColumnNotFound
	ErrCellNotFound   = table.ErrCellNotFound
)

// FileNotFoundError reports a load against a missing path.
type FileNotFoundError struct {
	Path string
}

// Error implements the error interface.
func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

// Is reports whether the target matches this error.
func (e *FileNotFoundError) Is(target error) bool {
	return target == ErrFileNotFound
}

// ExtensionMismatchError reports a path whose extension is not the
// expected tag, naming both sides.
type ExtensionMismatchError struct {
	Found    string
	Expected string
}

// Error implements the error interface.
func (e *ExtensionMismatchError) Error() string {
	found := e.Found
	if found == "" {
		found = "(none)"
	}
	return fmt.Sprintf("file extension mismatch: found %s, expected %s",
		strings.ToUpper(found), strings.ToUpper(e.Expected))
}

// Is reports whether the target matches this error.
func (e *ExtensionMismatchError) Is(target error) bool {
	return target == ErrExtensionMismatch
}

// ReadError reports a source that exists but could not be read.
type ReadError struct {
	Path  string
	Cause error
}

// Error implements the error interface.
func (e *ReadError) Error() string {
	return fmt.Sprintf("could not read %s: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *ReadError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches this error.
func (e *ReadError) Is(target error) bool {
	return target == ErrRead
}
