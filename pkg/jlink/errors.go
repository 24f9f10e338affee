// SPDX-License-Identifier: MPL-2.0

package jlink

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is wrapped by every ConfigurationError.
	ErrConfiguration = errors.New("invalid jlink configuration")
	// ErrMandatoryOption marks a mandatory option that produced no value.
	ErrMandatoryOption = errors.New("mandatory option missing")
	// ErrPathNotFound marks an existence-checked path that is absent.
	ErrPathNotFound = errors.New("path does not exist")
)

// ConfigurationError reports why assembly rejected a Configuration.
// It is always raised before any subprocess is started.
type ConfigurationError struct {
	// Option is the flag of the offending option, e.g. "--output".
	Option string
	// Path is the absolute path that failed an existence check, if any.
	Path   string
	Reason string
	// Err is the underlying cause: ErrMandatoryOption, ErrPathNotFound,
	// an *InvalidLauncherError or an *InvalidEndianError.
	Err error
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Option, e.Reason)
}

// Unwrap returns ErrConfiguration and the underlying cause.
func (e *ConfigurationError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrConfiguration}
	}
	return []error{ErrConfiguration, e.Err}
}

func missingMandatory(o Option) *ConfigurationError {
	return &ConfigurationError{
		Option: o.Flag,
		Reason: fmt.Sprintf("mandatory parameter %q cannot be null or empty", o.Flag),
		Err:    ErrMandatoryOption,
	}
}

func pathNotFound(o Option, path string) *ConfigurationError {
	return &ConfigurationError{
		Option: o.Flag,
		Path:   path,
		Reason: fmt.Sprintf("file or directory %s does not exist", path),
		Err:    ErrPathNotFound,
	}
}

func invalidValue(o Option, err error) *ConfigurationError {
	return &ConfigurationError{Option: o.Flag, Reason: err.Error(), Err: err}
}
