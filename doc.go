// Package csvtable loads delimited text files into an in-memory table
// and answers cell, row, and column queries against it.
//
// The parser reads one file into an ordered grid of string cells and
// exposes 1-based accessors with existence checks:
//
//	p, err := csvtable.NewFromFile(ctx, "data.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	value, err := p.Cell(2, 3)
//	row, err := p.Row(1)
//	col, err := p.Column(2)
//
// # Delimiter handling
//
// Without configuration the delimiter is auto-detected: a full pass
// splitting on ';' is kept when every row has the same field count;
// otherwise the attempt is discarded and the file is reparsed on ','
// with no consistency check, so the fallback can produce a ragged
// table. An explicit delimiter skips detection entirely:
//
//	p := csvtable.New(csvtable.WithDelimiter('|'))
//	err := p.LoadFile(ctx, "pipes.csv")
//
// Standard CSV quoting applies in every mode: double-quoted fields,
// doubled quotes as a literal quote, and newlines inside quoted fields.
//
// # Errors
//
// Every failure carries one of seven distinguishable kinds, matched
// with errors.Is: ErrFileNotFound, ErrExtensionMismatch, ErrRead,
// ErrFieldNotFound, ErrRowNotFound, ErrColumnNotFound, ErrCellNotFound.
//
// # Sources
//
// Paths with an s3:// scheme are read from S3 (configure with WithS3);
// everything else comes from the local filesystem. Sources are buffered
// whole before parsing, so detection works the same for one-shot
// streams as for seekable files. Loaded tables convert to Arrow records
// via Table.ToArrow for interop with columnar tooling.
package csvtable
