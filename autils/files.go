package autils

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrNotDirectory is the error returned when a directory is expected but not found.
var ErrNotDirectory = errors.New("path is not a directory")

// ResolveDirectory checks if the target is a directory and returns its clean path.
func ResolveDirectory(target string) (string, error) {
	if target == "" {
		return "", errors.New("directory path not found")
	}
	target = filepath.Clean(target)
	info, err := os.Stat(target)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", ErrNotDirectory
	}
	return target, nil
}
