// SPDX-License-Identifier: MPL-2.0

package build

import (
	"errors"

	"github.com/jlinkrun/jlinkrun/internal/runtime"
	"github.com/jlinkrun/jlinkrun/internal/toolchain"
	"github.com/jlinkrun/jlinkrun/pkg/buildfile"
	"github.com/jlinkrun/jlinkrun/pkg/jlink"
	"github.com/jlinkrun/jlinkrun/pkg/types"
)

// ExitCode maps a Run error to the process exit code. A jlink exit status in
// 1..255 is propagated as is.
func ExitCode(err error) types.ExitCode {
	if err == nil {
		return types.ExitSuccess
	}

	var execErr *runtime.ExecutionError
	switch {
	case errors.As(err, &execErr):
		if !execErr.Launched() {
			return types.ExitFailure
		}
		return execErr.ExitCode.AsFailure()
	case errors.Is(err, toolchain.ErrNotFound):
		return types.ExitEnvError
	case errors.Is(err, buildfile.ErrNotFound),
		errors.Is(err, buildfile.ErrInvalid),
		errors.Is(err, buildfile.ErrInvalidFormat),
		errors.Is(err, jlink.ErrConfiguration):
		return types.ExitConfigError
	default:
		return types.ExitFailure
	}
}
