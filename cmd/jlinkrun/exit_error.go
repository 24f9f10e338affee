// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/jlinkrun/jlinkrun/pkg/types"
)

// ExitError carries the process exit code out of a RunE handler. Err is nil
// when the handler already printed the failure, which keeps Execute quiet.
type ExitError struct {
	Code types.ExitCode
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }
