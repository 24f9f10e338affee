// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/jlinkrun/jlinkrun/pkg/platform"
	"github.com/jlinkrun/jlinkrun/pkg/types"
)

// NativeExecutor runs invocations on the host with os/exec.
type NativeExecutor struct {
	sandbox platform.SandboxType
}

// NewNativeExecutor creates an executor for the current process environment.
func NewNativeExecutor() *NativeExecutor {
	return &NativeExecutor{sandbox: platform.DetectSandbox()}
}

// Execute runs inv to completion, capturing its output.
func (e *NativeExecutor) Execute(ctx context.Context, inv Invocation) *Result {
	name, args := platform.HostCommand(e.sandbox, inv.Executable, inv.Args)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = inv.Dir
	if inv.Env != nil {
		cmd.Env = inv.Env
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	result := &Result{
		Output:    stdout.String(),
		ErrOutput: stderr.String(),
		Duration:  time.Since(start),
	}
	extractExitCode(ctx, err, result)
	return result
}

// extractExitCode fills the exit status fields of result from the error
// returned by exec.Cmd.Run.
func extractExitCode(ctx context.Context, err error, result *Result) {
	if err == nil {
		result.Started = true
		return
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.Started = true
		result.ExitCode = types.ExitCode(exitErr.ExitCode())
		if ctxErr := ctx.Err(); ctxErr != nil {
			result.Error = fmt.Errorf("interrupted: %w", ctxErr)
		}
		return
	}

	// Not found, permission denied, bad working directory.
	result.ExitCode = types.ExitFailure
	result.Error = err
}
