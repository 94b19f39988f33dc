// Package table provides the in-memory table built from delimited text,
// with 1-based row/column/cell accessors and existence checks.
package table

import (
	"github.com/google/uuid"
)

// Metadata describes how a table was loaded.
type Metadata struct {
	// LoadID uniquely identifies the load that produced this table.
	LoadID uuid.UUID

	// Source is the path or URI the table was read from.
	Source string

	// Delimiter is the field delimiter the parse actually used.
	Delimiter rune

	// Detected is true when the delimiter was chosen by auto-detection
	// rather than configured explicitly.
	Detected bool
}

// Table is an ordered sequence of rows of string cells. It is populated
// entirely during a single parse and immutable afterward. All public
// accessors use 1-based row and column numbers; a number of 0 or below
// is always "not found", never an error of a different kind.
//
// Rows are not required to have equal length: a ragged table is a legal
// state when the delimiter was explicit or came from the comma fallback.
type Table struct {
	rows [][]string
	meta Metadata
}

// New creates a table from already-parsed rows.
func New(rows [][]string, meta Metadata) *Table {
	if rows == nil {
		rows = [][]string{}
	}
	return &Table{rows: rows, meta: meta}
}

// Metadata returns the load metadata for this table.
func (t *Table) Metadata() Metadata {
	return t.meta
}

// Rows returns the full grid of cells in file line order.
func (t *Table) Rows() [][]string {
	return t.rows
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// ColumnCount returns the width of the widest row.
func (t *Table) ColumnCount() int {
	width := 0
	for _, row := range t.rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

// Ragged reports whether the rows have differing lengths.
func (t *Table) Ragged() bool {
	for _, row := range t.rows {
		if len(row) != len(t.rows[0]) {
			return true
		}
	}
	return false
}

// Row returns the row with the given 1-based number.
// Returns RowNotFoundError if the number does not address a row.
func (t *Table) Row(num int) ([]string, error) {
	if !t.RowExists(num) {
		return nil, &RowNotFoundError{Row: num}
	}
	return t.rows[num-1], nil
}

// Column collects the cell at the given 1-based column number from every
// row in order. Returns ColumnNotFoundError unless at least one row has
// that column. Rows shorter than the column number contribute nothing:
// they are skipped rather than read out of bounds, so on a ragged table
// the result can be shorter than RowCount.
func (t *Table) Column(num int) ([]string, error) {
	if !t.ColumnExists(num) {
		return nil, &ColumnNotFoundError{Column: num}
	}
	column := make([]string, 0, len(t.rows))
	for _, row := range t.rows {
		if num <= len(row) {
			column = append(column, row[num-1])
		}
	}
	return column, nil
}

// Cell returns the value at the given 1-based row and column numbers.
// Returns CellNotFoundError when the address cannot be read, including
// the ragged-table case where the row exists but is shorter than the
// column number. Note this is stricter than CellExists.
func (t *Table) Cell(row, col int) (string, error) {
	if !t.CellExists(row, col) || col > len(t.rows[row-1]) {
		return "", &CellNotFoundError{Row: row, Column: col}
	}
	return t.rows[row-1][col-1], nil
}

// RowExists reports whether the 1-based row number addresses a row.
func (t *Table) RowExists(num int) bool {
	return num >= 1 && num <= len(t.rows)
}

// ColumnExists reports whether at least one row has the 1-based column
// number. On a ragged table a column can exist even though most rows
// lack it.
func (t *Table) ColumnExists(num int) bool {
	if num < 1 {
		return false
	}
	for _, row := range t.rows {
		if num <= len(row) {
			return true
		}
	}
	return false
}

// CellExists reports whether the row exists and the column exists in at
// least one row. It deliberately does not check that the specific row
// carries the column: on a ragged table CellExists can be true for an
// address Cell refuses to read.
func (t *Table) CellExists(row, col int) bool {
	return t.RowExists(row) && t.ColumnExists(col)
}
