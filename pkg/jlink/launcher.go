// SPDX-License-Identifier: MPL-2.0

package jlink

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidLauncher is the sentinel error wrapped by InvalidLauncherError.
var ErrInvalidLauncher = errors.New("invalid launcher")

type (
	// Launcher binds a launcher command name to an entry-point module and an
	// optional main class. It is passed to jlink as --launcher name=module[/mainClass].
	Launcher struct {
		Name   string
		Module string
		// MainClass is nil when the module's own main class is used.
		// A non-nil empty string is rejected.
		MainClass *string
	}

	// InvalidLauncherError describes a launcher with a missing or empty field.
	InvalidLauncherError struct {
		Launcher Launcher
		Field    string
		Reason   string
	}
)

// NewLauncher returns a Launcher without a main class.
func NewLauncher(name, module string) Launcher {
	return Launcher{Name: name, Module: module}
}

// WithMainClass returns a copy of l with the main class set.
func (l Launcher) WithMainClass(mainClass string) Launcher {
	l.MainClass = &mainClass
	return l
}

// Error implements the error interface.
func (e *InvalidLauncherError) Error() string {
	return fmt.Sprintf("launcher %s %s", e.Field, e.Reason)
}

// Unwrap returns ErrInvalidLauncher for errors.Is() compatibility.
func (e *InvalidLauncherError) Unwrap() error { return ErrInvalidLauncher }

// IsValid returns whether the launcher can be serialized,
// and every validation error found.
func (l Launcher) IsValid() (bool, []error) {
	var errs []error
	if strings.TrimSpace(l.Name) == "" {
		errs = append(errs, &InvalidLauncherError{Launcher: l, Field: "name", Reason: "cannot be null or empty"})
	}
	if strings.TrimSpace(l.Module) == "" {
		errs = append(errs, &InvalidLauncherError{Launcher: l, Field: "module", Reason: "cannot be null or empty"})
	}
	if l.MainClass != nil && strings.TrimSpace(*l.MainClass) == "" {
		errs = append(errs, &InvalidLauncherError{Launcher: l, Field: "main class", Reason: "cannot be empty"})
	}
	if len(errs) > 0 {
		return false, errs
	}
	return true, nil
}

// Validate returns the first validation error, or nil.
func (l Launcher) Validate() error {
	if isValid, errs := l.IsValid(); !isValid {
		return errs[0]
	}
	return nil
}

// String returns the jlink form name=module, with /mainClass appended when set.
// Surrounding whitespace is dropped from each part, as IsValid ignores it.
func (l Launcher) String() string {
	s := strings.TrimSpace(l.Name) + "=" + strings.TrimSpace(l.Module)
	if l.MainClass != nil {
		if mainClass := strings.TrimSpace(*l.MainClass); mainClass != "" {
			s += "/" + mainClass
		}
	}
	return s
}
