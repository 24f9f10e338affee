// SPDX-License-Identifier: MPL-2.0

package jlink

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// EndianUnset requests no --endian option; jlink uses the native byte order.
	EndianUnset Endian = ""
	// EndianLittle requests a little-endian image.
	EndianLittle Endian = "little"
	// EndianBig requests a big-endian image.
	EndianBig Endian = "big"
)

// ErrInvalidEndian is the sentinel error wrapped by InvalidEndianError.
var ErrInvalidEndian = errors.New("invalid endian")

type (
	// Endian is the byte order of the generated image.
	Endian string

	// InvalidEndianError is returned when an Endian value is not recognized.
	InvalidEndianError struct {
		Value Endian
	}
)

// ParseEndian converts a case-insensitive byte order name to an Endian.
// Blank input yields EndianUnset.
func ParseEndian(s string) (Endian, error) {
	e := Endian(strings.ToLower(strings.TrimSpace(s)))
	if isValid, errs := e.IsValid(); !isValid {
		return EndianUnset, errs[0]
	}
	return e, nil
}

// Error implements the error interface.
func (e *InvalidEndianError) Error() string {
	return fmt.Sprintf("invalid endian %q (valid: %s, %s)", e.Value, EndianLittle, EndianBig)
}

// Unwrap returns ErrInvalidEndian for errors.Is() compatibility.
func (e *InvalidEndianError) Unwrap() error { return ErrInvalidEndian }

// IsValid returns whether the Endian is unset or a known byte order,
// and a list of validation errors if it is not.
func (e Endian) IsValid() (bool, []error) {
	switch Endian(e.Value()) {
	case EndianUnset, EndianLittle, EndianBig:
		return true, nil
	default:
		return false, []error{&InvalidEndianError{Value: e}}
	}
}

// IsSet reports whether a byte order was requested.
func (e Endian) IsSet() bool { return strings.TrimSpace(string(e)) != "" }

// Value returns the token passed to jlink: the lowercase byte order name.
func (e Endian) Value() string { return strings.ToLower(strings.TrimSpace(string(e))) }

// String returns the string representation of the Endian.
func (e Endian) String() string { return string(e) }
