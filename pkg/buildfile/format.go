// SPDX-License-Identifier: MPL-2.0

package buildfile

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

const (
	// FormatCUE is a CUE build description validated against #Build.
	FormatCUE Format = "cue"
	// FormatTOML is a TOML build description.
	FormatTOML Format = "toml"
	// FormatYAML is a YAML build description.
	FormatYAML Format = "yaml"
	// FormatHCL is an HCL build description.
	FormatHCL Format = "hcl"

	// BaseName is the file name, without extension, that Discover looks for.
	BaseName = "jlink"
)

// ErrInvalidFormat is the sentinel error wrapped by InvalidFormatError.
var ErrInvalidFormat = errors.New("invalid build description format")

type (
	// Format identifies the syntax of a build description.
	Format string

	// InvalidFormatError is returned for an unknown format name or file extension.
	InvalidFormatError struct {
		Value string
	}
)

// Formats returns the supported formats in discovery order.
func Formats() []Format {
	return []Format{FormatCUE, FormatTOML, FormatYAML, FormatHCL}
}

// FormatForPath returns the format implied by a file extension.
func FormatForPath(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "yml" {
		return FormatYAML, nil
	}
	f := Format(ext)
	if isValid, errs := f.IsValid(); !isValid {
		return "", errs[0]
	}
	return f, nil
}

// Error implements the error interface.
func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("unsupported build description format %q (valid: cue, toml, yaml, yml, hcl)", e.Value)
}

// Unwrap returns ErrInvalidFormat for errors.Is() compatibility.
func (e *InvalidFormatError) Unwrap() error { return ErrInvalidFormat }

// IsValid returns whether the format is supported,
// and a list of validation errors if it is not.
func (f Format) IsValid() (bool, []error) {
	switch f {
	case FormatCUE, FormatTOML, FormatYAML, FormatHCL:
		return true, nil
	default:
		return false, []error{&InvalidFormatError{Value: string(f)}}
	}
}

// FileName returns the default build description file name for the format.
func (f Format) FileName() string { return BaseName + "." + string(f) }

// String returns the string representation of the Format.
func (f Format) String() string { return string(f) }
