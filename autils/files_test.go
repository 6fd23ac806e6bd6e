package autils

import (
	"errors"
	"os"
	"testing"
)

func TestResolveDirectory(t *testing.T) {
	// Create a temporary directory.
	tempDir, err := os.MkdirTemp("", "test")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	defer os.RemoveAll(tempDir)

	// Test resolving the directory.
	resolvedPath, err := ResolveDirectory(tempDir)
	if err != nil {
		t.Errorf("ResolveDirectory() returned an error: %v", err)
	}
	if resolvedPath != tempDir {
		t.Errorf("ResolveDirectory() returned '%v', want '%v'", resolvedPath, tempDir)
	}

	// Test with a non-existent directory.
	if _, err := ResolveDirectory("nonexistentdirectory"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ResolveDirectory() should return an error for non-existent directory")
	}

	// Test with a file instead of a directory.
	tempFile, err := os.CreateTemp(tempDir, "testfile-*.txt")
	if err != nil {
		t.Errorf("Failed to create temp file: %v", err)
		return
	}
	tempFileName := tempFile.Name()
	tempFile.Close()
	defer os.Remove(tempFileName)
	if _, err := ResolveDirectory(tempFileName); !errors.Is(err, ErrNotDirectory) {
		t.Errorf("ResolveDirectory() should return an error when resolving a file")
	}
}
