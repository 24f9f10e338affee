// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"context"
	"time"

	"github.com/jlinkrun/jlinkrun/pkg/types"
)

//go:generate mockgen -destination=mocks/mock_executor.go -package=mocks github.com/jlinkrun/jlinkrun/internal/runtime Executor

type (
	// Invocation describes one subprocess to run.
	Invocation struct {
		// Executable is the path (or bare name, resolved via PATH) of the program.
		Executable string
		// Args excludes the executable.
		Args []string
		// Dir is the working directory; empty means the current one.
		Dir string
		// Env replaces the environment when non-nil.
		Env []string
	}

	// Result is the outcome of an Invocation.
	Result struct {
		// Started is false when the process could not be launched at all.
		Started bool
		// ExitCode is the raw exit status; -1 when the process was killed by a signal.
		ExitCode types.ExitCode
		// Output contains captured stdout.
		Output string
		// ErrOutput contains captured stderr.
		ErrOutput string
		// Error is set for launch failures and interruptions.
		Error error
		// Duration is the wall time between start and exit.
		Duration time.Duration
	}

	// Executor runs invocations synchronously.
	Executor interface {
		Execute(ctx context.Context, inv Invocation) *Result
	}
)

// Success reports whether the process started and exited with status 0.
func (r *Result) Success() bool {
	return r.Started && r.ExitCode.IsSuccess() && r.Error == nil
}
