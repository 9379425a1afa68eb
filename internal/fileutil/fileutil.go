// Package fileutil provides file and path helpers for the document
// generator.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Sentinel errors for filename validation.
var (
	ErrUnsafeFilename = errors.New("invalid filename")
	ErrNotPDF         = errors.New("file must be a PDF")
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return nil
}

// ValidatePDFName checks that name is a bare PDF filename safe to join
// under the results directory: no traversal sequences, no path
// separators, no null bytes, and a .pdf suffix. Validation happens
// before any filesystem access.
func ValidatePDFName(name string) error {
	if name == "" || strings.Contains(name, "..") || strings.ContainsAny(name, "/\\\x00") {
		return fmt.Errorf("%w: %q", ErrUnsafeFilename, name)
	}
	if !strings.HasSuffix(name, ".pdf") {
		return fmt.Errorf("%w: %q", ErrNotPDF, name)
	}
	return nil
}
