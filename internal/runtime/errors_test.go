// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestExecutionError_Error(t *testing.T) {
	t.Parallel()

	launchErr := errors.New(`exec: "jlink": executable file not found in $PATH`)

	tests := []struct {
		name   string
		result *Result
		want   string
	}{
		{
			name:   "exit without stderr",
			result: &Result{Started: true, ExitCode: 1},
			want:   "exit code: 1\ncommand line was: jlink --verbose",
		},
		{
			name:   "exit with stderr",
			result: &Result{Started: true, ExitCode: 2, ErrOutput: "  Error: bad option\n"},
			want:   "exit code: 2 - Error: bad option\ncommand line was: jlink --verbose",
		},
		{
			name:   "launch failure",
			result: &Result{ExitCode: 1, Error: launchErr},
			want:   "error while executing jlink: " + launchErr.Error() + "\ncommand line was: jlink --verbose",
		},
		{
			name:   "interrupted",
			result: &Result{Started: true, ExitCode: -1, Error: fmt.Errorf("interrupted: %w", context.Canceled)},
			want:   "jlink interrupted: context canceled (exit code -1)\ncommand line was: jlink --verbose",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := NewExecutionError(tt.result, "jlink --verbose")
			if err == nil {
				t.Fatal("NewExecutionError() = nil")
			}
			if got := err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResult_Success(t *testing.T) {
	t.Parallel()

	if (&Result{}).Success() {
		t.Error("a result that never started is not a success")
	}
	if !(&Result{Started: true}).Success() {
		t.Error("started with exit 0 is a success")
	}
	if (&Result{Started: true, Error: context.Canceled}).Success() {
		t.Error("an interrupted result is not a success")
	}
}
