// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jlinkrun/jlinkrun/pkg/types"
)

// ErrExecution is wrapped by every ExecutionError.
var ErrExecution = errors.New("jlink execution failed")

// ExecutionError reports a process that exited unsuccessfully or could not be started.
type ExecutionError struct {
	// ExitCode is the raw exit status, meaningful only when Launched is true.
	ExitCode types.ExitCode
	// Stderr is the captured standard error, trimmed.
	Stderr string
	// CommandLine is the escaped command line, for diagnostics.
	CommandLine string
	// Cause is the launch or interruption error, if any.
	Cause error

	launched bool
}

// NewExecutionError returns nil when r succeeded, and an *ExecutionError describing the failure otherwise.
func NewExecutionError(r *Result, commandLine string) *ExecutionError {
	if r.Success() {
		return nil
	}
	return &ExecutionError{
		ExitCode:    r.ExitCode,
		Stderr:      strings.TrimSpace(r.ErrOutput),
		CommandLine: commandLine,
		Cause:       r.Error,
		launched:    r.Started,
	}
}

// Launched reports whether the process was started.
func (e *ExecutionError) Launched() bool { return e.launched }

// Error implements the error interface.
func (e *ExecutionError) Error() string {
	var msg strings.Builder
	switch {
	case !e.launched:
		fmt.Fprintf(&msg, "error while executing jlink: %v", e.Cause)
	case e.Cause != nil:
		fmt.Fprintf(&msg, "jlink %v (exit code %d)", e.Cause, e.ExitCode)
	default:
		fmt.Fprintf(&msg, "exit code: %d", e.ExitCode)
		if e.Stderr != "" {
			msg.WriteString(" - ")
			msg.WriteString(e.Stderr)
		}
	}
	if e.CommandLine != "" {
		msg.WriteString("\ncommand line was: ")
		msg.WriteString(e.CommandLine)
	}
	return msg.String()
}

// Unwrap returns ErrExecution and the cause, if any.
func (e *ExecutionError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrExecution}
	}
	return []error{ErrExecution, e.Cause}
}
