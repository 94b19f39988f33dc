package io

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLocalFileIO_OpenAndRead(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()

	fileIO := NewLocalFileIO()
	testPath := filepath.Join(tmpDir, "test.csv")
	testContent := []byte("a;b;c\nd;e;f\n")

	if err := os.WriteFile(testPath, testContent, 0644); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	inputFile, err := fileIO.Open(ctx, testPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	length, err := inputFile.Length(ctx)
	if err != nil {
		t.Fatalf("Length failed: %v", err)
	}
	if length != int64(len(testContent)) {
		t.Errorf("Length = %d, want %d", length, len(testContent))
	}

	data, err := ReadFull(ctx, inputFile)
	if err != nil {
		t.Fatalf("ReadFull failed: %v", err)
	}
	if !bytes.Equal(data, testContent) {
		t.Errorf("Content mismatch: got %s, want %s", data, testContent)
	}
}

func TestLocalFileIO_Exists(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()

	fileIO := NewLocalFileIO()
	existingPath := filepath.Join(tmpDir, "exists.csv")
	nonExistingPath := filepath.Join(tmpDir, "not_exists.csv")

	if err := os.WriteFile(existingPath, []byte("test"), 0644); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	exists, err := fileIO.Exists(ctx, existingPath)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("File should exist")
	}

	exists, err = fileIO.Exists(ctx, nonExistingPath)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Error("File should not exist")
	}
}

func TestLocalFileIO_FileURIPrefix(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()

	fileIO := NewLocalFileIO()
	testPath := filepath.Join(tmpDir, "prefixed.csv")

	if err := os.WriteFile(testPath, []byte("x"), 0644); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	exists, err := fileIO.Exists(ctx, "file://"+testPath)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("file:// path should resolve to the same file")
	}

	inputFile, err := fileIO.Open(ctx, "file://"+testPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if inputFile.Location() != testPath {
		t.Errorf("Location = %s, want %s", inputFile.Location(), testPath)
	}
}

func TestLocalFileIO_OpenMissingFile(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()

	fileIO := NewLocalFileIO()
	inputFile, err := fileIO.Open(ctx, filepath.Join(tmpDir, "missing.csv"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	// The open of the handle itself surfaces the failure.
	if _, err := ReadFull(ctx, inputFile); err == nil {
		t.Error("ReadFull on a missing file should fail")
	}
}

func TestLocalFileIO_EmptyFile(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()

	fileIO := NewLocalFileIO()
	testPath := filepath.Join(tmpDir, "empty.csv")

	if err := os.WriteFile(testPath, nil, 0644); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	inputFile, err := fileIO.Open(ctx, testPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	length, err := inputFile.Length(ctx)
	if err != nil {
		t.Fatalf("Length failed: %v", err)
	}
	if length != 0 {
		t.Errorf("Length = %d, want 0", length)
	}

	data, err := ReadFull(ctx, inputFile)
	if err != nil {
		t.Fatalf("ReadFull failed: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("ReadFull length = %d, want 0", len(data))
	}
}
