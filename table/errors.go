package table

import (
	"errors"
	"fmt"
)

// Common errors for table queries.
var (
	// ErrFieldNotFound is returned when no table has been loaded yet.
	ErrFieldNotFound = errors.New("field not found: no table loaded")

	// ErrRowNotFound is returned when a row number does not address a row.
	ErrRowNotFound = errors.New("row not found")

	// ErrColumnNotFound is returned when no row carries the column number.
	ErrColumnNotFound = errors.New("column not found")

	// ErrCellNotFound is returned when a cell address cannot be read.
	ErrCellNotFound = errors.New("cell not found")
)

// RowNotFoundError reports a row query against a missing row.
type RowNotFoundError struct {
	Row int
}

// Error implements the error interface.
func (e *RowNotFoundError) Error() string {
	return fmt.Sprintf("row not found: %d", e.Row)
}

// Is reports whether the target matches this error.
func (e *RowNotFoundError) Is(target error) bool {
	return target == ErrRowNotFound
}

// ColumnNotFoundError reports a column query against a missing column.
type ColumnNotFoundError struct {
	Column int
}

// Error implements the error interface.
func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column not found: %d", e.Column)
}

// Is reports whether the target matches this error.
func (e *ColumnNotFoundError) Is(target error) bool {
	return target == ErrColumnNotFound
}

// CellNotFoundError reports a cell query against a missing cell.
type CellNotFoundError struct {
	Row    int
	Column int
}

// Error implements the error interface.
func (e *CellNotFoundError) Error() string {
	return fmt.Sprintf("cell not found: row %d, column %d", e.Row, e.Column)
}

// Is reports whether the target matches this error.
func (e *CellNotFoundError) Is(target error) bool {
	return target == ErrCellNotFound
}
