// Package io provides read-side file access for table sources.
package io

import (
	"context"
	"io"
)

// FileIO is the interface for source file operations.
type FileIO interface {
	// Open opens a source file for reading.
	Open(ctx context.Context, path string) (InputFile, error)

	// Exists checks if a source file exists.
	Exists(ctx context.Context, path string) (bool, error)

	// Properties returns the properties of this FileIO.
	Properties() map[string]string
}

// InputFile represents a readable source file.
type InputFile interface {
	// Location returns the file location.
	Location() string

	// Length returns the file length in bytes.
	Length(ctx context.Context) (int64, error)

	// Open opens the file for reading.
	Open(ctx context.Context) (io.ReadCloser, error)
}

// ReadFull reads the entire content of a source file and closes it on
// every exit path. Table parsing runs over this buffered copy so a
// non-seekable source is never read twice.
func ReadFull(ctx context.Context, f InputFile) ([]byte, error) {
	rc, err := f.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return io.ReadAll(rc)
}
