// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidFilesystemPath is the sentinel error wrapped by InvalidFilesystemPathError.
var ErrInvalidFilesystemPath = errors.New("invalid filesystem path")

type (
	// FilesystemPath represents an absolute or relative filesystem path.
	// A valid path must be non-empty and not whitespace-only.
	// In build descriptions the zero value means "not set".
	FilesystemPath string

	// InvalidFilesystemPathError is returned when a FilesystemPath value is
	// empty or whitespace-only.
	InvalidFilesystemPathError struct {
		Value FilesystemPath
	}
)

// String returns the string representation of the FilesystemPath.
func (p FilesystemPath) String() string { return string(p) }

// IsBlank reports whether the path is empty or whitespace-only.
func (p FilesystemPath) IsBlank() bool {
	return strings.TrimSpace(string(p)) == ""
}

// Validate returns an error if the path is empty or whitespace-only.
func (p FilesystemPath) Validate() error {
	if p.IsBlank() {
		return &InvalidFilesystemPathError{Value: p}
	}
	return nil
}

// Resolve returns the absolute, cleaned form of p. Relative paths are joined
// onto base; when base is empty they are resolved against the working directory.
func (p FilesystemPath) Resolve(base string) (FilesystemPath, error) {
	s := string(p)
	if filepath.IsAbs(s) {
		return FilesystemPath(filepath.Clean(s)), nil
	}
	if base != "" {
		s = filepath.Join(base, s)
	}
	abs, err := filepath.Abs(s)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}
	return FilesystemPath(abs), nil
}

// Exists reports whether a file or directory is present at p.
func (p FilesystemPath) Exists() bool {
	_, err := os.Stat(string(p))
	return err == nil
}

// Error implements the error interface for InvalidFilesystemPathError.
func (e *InvalidFilesystemPathError) Error() string {
	return fmt.Sprintf("invalid filesystem path %q: must be non-empty", e.Value)
}

// Unwrap returns ErrInvalidFilesystemPath for errors.Is() compatibility.
func (e *InvalidFilesystemPathError) Unwrap() error { return ErrInvalidFilesystemPath }
