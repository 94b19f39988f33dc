package csvtable

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/tablekit/go-csvtable/io"
	"github.com/tablekit/go-csvtable/table"
)

// Parser loads a delimited text file into an in-memory table and answers
// indexed queries against it. The zero table state (before the first
// successful load) makes every query fail with its not-found kind; a
// successful load replaces the table wholesale and a failed load leaves
// the previous state untouched.
//
// A Parser is not safe for concurrent use; callers sharing one across
// goroutines must synchronize externally.
type Parser struct {
	config    *Config
	delimiter rune
	localIO   io.FileIO
	s3IO      io.FileIO
	tbl       *table.Table
}

// New creates a parser with the given options.
func New(opts ...Option) *Parser {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(config)
	}

	return &Parser{
		config:    config,
		delimiter: config.Delimiter,
		localIO:   io.NewLocalFileIO(),
	}
}

// NewFromFile creates a parser and immediately loads the given path.
// Load errors propagate to the caller.
func NewFromFile(ctx context.Context, path string, opts ...Option) (*Parser, error) {
	p := New(opts...)
	if err := p.LoadFile(ctx, path); err != nil {
		return nil, err
	}
	return p, nil
}

// SetDelimiter stores the delimiter to use for all future loads,
// overriding auto-detection. The character is not validated.
func (p *Parser) SetDelimiter(r rune) {
	p.delimiter = r
}

// ClearDelimiter restores auto-detection for future loads.
func (p *Parser) ClearDelimiter() {
	p.delimiter = 0
}

// Delimiter returns the configured delimiter, or zero when loads
// auto-detect.
func (p *Parser) Delimiter() rune {
	return p.delimiter
}

// LoadFile reads the file at path and replaces the current table with
// its parsed content. The path's extension must match the expected tag
// before any I/O happens; a missing file fails with ErrFileNotFound and
// an unreadable one with ErrRead. Paths with an s3:// or s3a:// scheme
// are read from S3, everything else from the local filesystem. The
// whole file is buffered up front, so delimiter auto-detection never
// re-reads the source.
func (p *Parser) LoadFile(ctx context.Context, path string) error {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if !strings.EqualFold(ext, p.config.Extension) {
		return &ExtensionMismatchError{Found: ext, Expected: p.config.Extension}
	}

	fio, err := p.fileIOFor(ctx, path)
	if err != nil {
		return &ReadError{Path: path, Cause: err}
	}

	exists, err := fio.Exists(ctx, path)
	if err != nil {
		return &ReadError{Path: path, Cause: err}
	}
	if !exists {
		return &FileNotFoundError{Path: path}
	}

	in, err := fio.Open(ctx, path)
	if err != nil {
		return &ReadError{Path: path, Cause: err}
	}

	data, err := io.ReadFull(ctx, in)
	if err != nil {
		return &ReadError{Path: path, Cause: err}
	}

	tbl, err := table.Parse(data, p.delimiter, path)
	if err != nil {
		// Parse-level failures after a successful open report as the
		// read kind.
		return &ReadError{Path: path, Cause: err}
	}

	p.tbl = tbl
	return nil
}

// fileIOFor picks the source access layer for a path.
func (p *Parser) fileIOFor(ctx context.Context, path string) (io.FileIO, error) {
	if p.config.FileIO != nil {
		return p.config.FileIO, nil
	}

	if strings.HasPrefix(path, "s3://") || strings.HasPrefix(path, "s3a://") {
		if p.s3IO == nil {
			cfg := p.config.S3Config
			if cfg == nil {
				cfg = &S3Config{}
			}
			s3IO, err := io.NewS3FileIO(ctx, &io.S3Config{
				Region:          cfg.Region,
				Endpoint:        cfg.Endpoint,
				AccessKeyID:     cfg.AccessKeyID,
				SecretAccessKey: cfg.SecretAccessKey,
				SessionToken:    cfg.SessionToken,
				ForcePathStyle:  cfg.ForcePathStyle,
			})
			if err != nil {
				return nil, err
			}
			p.s3IO = s3IO
		}
		return p.s3IO, nil
	}

	return p.localIO, nil
}

// Table returns the loaded table.
// Returns ErrFieldNotFound if no table has been loaded yet.
func (p *Parser) Table() (*table.Table, error) {
	if p.tbl == nil {
		return nil, ErrFieldNotFound
	}
	return p.tbl, nil
}

// Field returns the entire grid of cells.
// Returns ErrFieldNotFound if no table has been loaded yet.
func (p *Parser) Field() ([][]string, error) {
	if p.tbl == nil {
		return nil, ErrFieldNotFound
	}
	return p.tbl.Rows(), nil
}

// Row returns the row with the given 1-based number. An absent table
// has no valid indices, so before a load every number fails with
// ErrRowNotFound.
func (p *Parser) Row(num int) ([]string, error) {
	if p.tbl == nil {
		return nil, &table.RowNotFoundError{Row: num}
	}
	return p.tbl.Row(num)
}

// Column returns the cells of the 1-based column number, in row order.
// See table.Table.Column for the ragged-table contract.
func (p *Parser) Column(num int) ([]string, error) {
	if p.tbl == nil {
		return nil, &table.ColumnNotFoundError{Column: num}
	}
	return p.tbl.Column(num)
}

// Cell returns the value at the given 1-based row and column numbers.
func (p *Parser) Cell(row, col int) (string, error) {
	if p.tbl == nil {
		return "", &table.CellNotFoundError{Row: row, Column: col}
	}
	return p.tbl.Cell(row, col)
}

// RowExists reports whether the 1-based row number addresses a row.
func (p *Parser) RowExists(num int) bool {
	return p.tbl != nil && p.tbl.RowExists(num)
}

// ColumnExists reports whether at least one row has the 1-based column
// number.
func (p *Parser) ColumnExists(num int) bool {
	return p.tbl != nil && p.tbl.ColumnExists(num)
}

// CellExists reports whether the row exists and the column exists in at
// least one row. See table.Table.CellExists for the ragged-table caveat.
func (p *Parser) CellExists(row, col int) bool {
	return p.tbl != nil && p.tbl.CellExists(row, col)
}

// Loaded reports whether a load has completed, even one that produced
// an empty table.
func (p *Parser) Loaded() bool {
	return p.tbl != nil
}
