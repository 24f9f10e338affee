// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jlinkrun/jlinkrun/internal/logging"
	"github.com/jlinkrun/jlinkrun/internal/toolchain"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidLogLevel is returned when a LogLevel value is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidLogFormat is returned when a log format is not recognized.
	ErrInvalidLogFormat = errors.New("invalid log format")
	// ErrInvalidToolchain is returned when a toolchain entry lacks a version or home.
	ErrInvalidToolchain = errors.New("invalid toolchain")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// LogLevel is the minimum level written by the logger.
	LogLevel string

	// InvalidLogLevelError is returned when a LogLevel value is not recognized.
	InvalidLogLevelError struct {
		Value LogLevel
	}

	// InvalidLogFormatError is returned when a log format value is not recognized.
	InvalidLogFormatError struct {
		Value logging.Format
	}

	// InvalidToolchainError reports a toolchain entry missing a required field.
	InvalidToolchainError struct {
		Index int
		Field string
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sections.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// JDK locates the jlink executable
		JDK JDKConfig `json:"jdk" mapstructure:"jdk"`
		// Log configures the logger
		Log LogConfig `json:"log" mapstructure:"log"`
		// UI configures the terminal output
		UI UIConfig `json:"ui" mapstructure:"ui"`
		// Build holds defaults for the build command
		Build BuildConfig `json:"build" mapstructure:"build"`
	}

	// JDKConfig selects the JDK providing jlink.
	JDKConfig struct {
		// Home is tried before JAVA_HOME
		Home string `json:"home" mapstructure:"home"`
		// Executable pins the jlink binary and disables every other lookup
		Executable string `json:"executable" mapstructure:"executable"`
		// Toolchains are selected by the build description's toolchain version
		Toolchains []toolchain.Toolchain `json:"toolchains" mapstructure:"toolchains"`
	}

	// LogConfig configures the logger and its optional rotated file.
	LogConfig struct {
		Level      LogLevel       `json:"level" mapstructure:"level"`
		Format     logging.Format `json:"format" mapstructure:"format"`
		File       string         `json:"file" mapstructure:"file"`
		MaxSizeMB  int            `json:"max_size_mb" mapstructure:"max_size_mb"`
		MaxBackups int            `json:"max_backups" mapstructure:"max_backups"`
		MaxAgeDays int            `json:"max_age_days" mapstructure:"max_age_days"`
		Compress   bool           `json:"compress" mapstructure:"compress"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables debug logging and verbose error output
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}

	// BuildConfig holds defaults for `jlinkrun build`.
	BuildConfig struct {
		// DryRun assembles and validates without executing jlink
		DryRun bool `json:"dry_run" mapstructure:"dry_run"`
		// File is the build description used when none is given on the command line
		File string `json:"file" mapstructure:"file"`
	}
)

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined color schemes,
// and a list of validation errors if it is not.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// IsValid returns whether the LogLevel is a known level.
func (l LogLevel) IsValid() (bool, []error) {
	switch LogLevel(strings.ToLower(string(l))) {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true, nil
	default:
		return false, []error{&InvalidLogLevelError{Value: l}}
	}
}

// Error implements the error interface for InvalidLogLevelError.
func (e *InvalidLogLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q (valid: debug, info, warn, error)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidLogLevelError) Unwrap() error { return ErrInvalidLogLevel }

// Error implements the error interface for InvalidLogFormatError.
func (e *InvalidLogFormatError) Error() string {
	return fmt.Sprintf("invalid log format %q (valid: text, json, logfmt)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidLogFormatError) Unwrap() error { return ErrInvalidLogFormat }

// Error implements the error interface for InvalidToolchainError.
func (e *InvalidToolchainError) Error() string {
	return fmt.Sprintf("jdk.toolchains[%d]: %s must not be empty", e.Index, e.Field)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidToolchainError) Unwrap() error { return ErrInvalidToolchain }

// IsValid checks every toolchain entry.
func (c JDKConfig) IsValid() (bool, []error) {
	var errs []error
	for i, tc := range c.Toolchains {
		if strings.TrimSpace(tc.Version) == "" {
			errs = append(errs, &InvalidToolchainError{Index: i, Field: "version"})
		}
		if strings.TrimSpace(tc.Home) == "" {
			errs = append(errs, &InvalidToolchainError{Index: i, Field: "home"})
		}
	}
	return len(errs) == 0, errs
}

// IsValid checks the level and format.
func (c LogConfig) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.Level.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	switch logging.Format(strings.ToLower(string(c.Format))) {
	case logging.FormatText, logging.FormatJSON, logging.FormatLogfmt:
	default:
		errs = append(errs, &InvalidLogFormatError{Value: c.Format})
	}
	return len(errs) == 0, errs
}

// Options converts the section to logger options. verbose forces debug level.
func (c LogConfig) Options(verbose bool) logging.Options {
	return logging.Options{
		Level:   string(c.Level),
		Format:  c.Format,
		Verbose: verbose,
		File: logging.FileOptions{
			Path:       c.File,
			MaxSizeMB:  c.MaxSizeMB,
			MaxBackups: c.MaxBackups,
			MaxAgeDays: c.MaxAgeDays,
			Compress:   c.Compress,
		},
	}
}

// IsValid returns whether the Config has valid fields.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.JDK.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Log.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.UI.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig and the field errors.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		JDK: JDKConfig{
			Toolchains: []toolchain.Toolchain{},
		},
		Log: LogConfig{
			Level:      LogLevelInfo,
			Format:     logging.FormatText,
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
		},
	}
}
