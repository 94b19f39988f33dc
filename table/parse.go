package table

import (
	"bytes"
	"encoding/csv"
	"io"

	"github.com/google/uuid"
)

// Delimiters tried by auto-detection, in order.
const (
	// PrimaryDelimiter is the first delimiter auto-detection attempts.
	// The attempt is kept only when every row has the same field count.
	PrimaryDelimiter = ';'

	// FallbackDelimiter is used when the primary attempt is abandoned.
	// The fallback pass accepts every row regardless of field count.
	FallbackDelimiter = ','
)

// Parse builds a table from buffered file content. When delim is 0 the
// delimiter is auto-detected; otherwise every line is split on delim with
// no consistency check on field counts. Standard CSV quoting applies in
// both modes: double-quoted fields, doubled quotes as a literal quote,
// and newlines inside quoted fields.
//
// The content is fully buffered by the caller so that the two detection
// passes never re-read the underlying source. This makes detection work
// the same for seekable files and one-shot streams.
func Parse(data []byte, delim rune, source string) (*Table, error) {
	var (
		rows     [][]string
		used     rune
		detected bool
		err      error
	)

	if delim != 0 {
		used = delim
		rows, err = readAll(data, delim)
	} else {
		detected = true
		rows, used, err = detect(data)
	}
	if err != nil {
		return nil, err
	}

	return New(rows, Metadata{
		LoadID:    uuid.New(),
		Source:    source,
		Delimiter: used,
		Detected:  detected,
	}), nil
}

// detect runs the two-delimiter heuristic. The semicolon pass tracks the
// field count of the first row; the first row that differs abandons the
// attempt immediately, discarding everything accumulated so far, and the
// whole content is reparsed on commas with no validation. A clean
// semicolon pass (including the trivial zero-row or one-row case) wins
// and the comma pass never runs. An empty input falls through to the
// comma pass and yields an empty table.
func detect(data []byte) ([][]string, rune, error) {
	r := newReader(data, PrimaryDelimiter)

	var rows [][]string
	expected := -1
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, err
		}
		if expected == -1 {
			expected = len(record)
		} else if len(record) != expected {
			// Wrong-delimiter signal: abandon without reading the rest.
			rows, err := readAll(data, FallbackDelimiter)
			if err != nil {
				return nil, 0, err
			}
			return rows, FallbackDelimiter, nil
		}
		rows = append(rows, record)
	}

	if expected == -1 {
		// No rows, so no established field count.
		rows, err := readAll(data, FallbackDelimiter)
		if err != nil {
			return nil, 0, err
		}
		return rows, FallbackDelimiter, nil
	}

	return rows, PrimaryDelimiter, nil
}

// readAll parses the whole content on one delimiter, keeping every row.
func readAll(data []byte, delim rune) ([][]string, error) {
	return newReader(data, delim).ReadAll()
}

func newReader(data []byte, delim rune) *csv.Reader {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = delim
	// Field counts are checked by detection, not by the reader.
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	return r
}
