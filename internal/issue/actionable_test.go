// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

type multiCauseError struct {
	sentinel, cause error
}

func (e *multiCauseError) Error() string   { return "--module-path: " + e.cause.Error() }
func (e *multiCauseError) Unwrap() []error { return []error{e.sentinel, e.cause} }

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *ActionableError
		want string
	}{
		{
			name: "operation only",
			err:  &ActionableError{Operation: "resolve jlink"},
			want: "failed to resolve jlink",
		},
		{
			name: "with resource",
			err:  &ActionableError{Operation: "load build description", Resource: "/work/jlink.cue"},
			want: "failed to load build description: /work/jlink.cue",
		},
		{
			name: "with cause",
			err: &ActionableError{
				Operation: "load build description",
				Resource:  "/work/jlink.toml",
				Cause:     errors.New("line 3: expected '='"),
			},
			want: "failed to load build description: /work/jlink.toml: line 3: expected '='",
		},
		{
			name: "suggestions are not part of Error",
			err:  &ActionableError{Operation: "run jlink", Suggestions: []string{"Check JAVA_HOME"}},
			want: "failed to run jlink",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("no build description found")
	err := NewErrorContext().
		WithOperation("load build description").
		Wrap(fmt.Errorf("discover in /work: %w", sentinel)).
		BuildError()

	if !errors.Is(err, sentinel) {
		t.Errorf("errors.Is(%v, sentinel) = false", err)
	}
	var ae *ActionableError
	if !errors.As(err, &ae) || ae.Operation != "load build description" {
		t.Errorf("errors.As() = %v, want the ActionableError", ae)
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	root := errors.New("permission denied")
	err := NewErrorContext().
		WithOperation("run jlink").
		WithResource("/opt/jdk/bin/jlink").
		WithSuggestion("Check that the file is executable").
		WithSuggestions("Set jdk.executable", "Set JAVA_HOME").
		Wrap(fmt.Errorf("start process: %w", root)).
		Build()

	tests := []struct {
		name     string
		verbose  bool
		want     []string
		dontWant []string
	}{
		{
			name:    "concise",
			verbose: false,
			want: []string{
				"failed to run jlink: /opt/jdk/bin/jlink: start process: permission denied",
				"\n\n  • Check that the file is executable",
				"\n  • Set jdk.executable\n  • Set JAVA_HOME",
			},
			dontWant: []string{"Error chain:"},
		},
		{
			name:    "verbose",
			verbose: true,
			want: []string{
				"Error chain:",
				"1. start process: permission denied",
				"2. permission denied",
			},
			dontWant: []string{"3."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := err.Format(tt.verbose)
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("Format(%v) missing %q\ngot:\n%s", tt.verbose, want, got)
				}
			}
			for _, dontWant := range tt.dontWant {
				if strings.Contains(got, dontWant) {
					t.Errorf("Format(%v) contains %q\ngot:\n%s", tt.verbose, dontWant, got)
				}
			}
		})
	}
}

func TestActionableError_FormatFollowsMultiUnwrap(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("invalid jlink configuration")
	cause := errors.New("path does not exist")
	err := NewErrorContext().
		WithOperation("assemble jlink options").
		Wrap(&multiCauseError{sentinel: sentinel, cause: cause}).
		Build()

	got := err.Format(true)
	for _, want := range []string{"1. --module-path: path does not exist", "2. path does not exist"} {
		if !strings.Contains(got, want) {
			t.Errorf("Format(true) missing %q\ngot:\n%s", want, got)
		}
	}
	if strings.Contains(got, "3.") {
		t.Errorf("Format(true) chain too long:\n%s", got)
	}
}

func TestErrorContext_Build(t *testing.T) {
	t.Parallel()

	if got := NewErrorContext().WithResource("jlink.cue").Build(); got != nil {
		t.Errorf("Build() without operation = %v, want nil", got)
	}
	if err := NewErrorContext().Wrap(errors.New("x")).BuildError(); err != nil {
		t.Errorf("BuildError() without operation = %v, want nil interface", err)
	}

	cause := errors.New("exit code: 1")
	got := NewErrorContext().
		WithOperation("run jlink").
		WithResource("/work/jlink.cue").
		WithSuggestion("Re-run with --verbose").
		WithIssue(JlinkFailedId).
		Wrap(cause).
		Build()

	if got.Operation != "run jlink" || got.Resource != "/work/jlink.cue" {
		t.Errorf("Build() = %+v, want operation and resource set", got)
	}
	if len(got.Suggestions) != 1 || got.Cause != cause || got.Issue != JlinkFailedId {
		t.Errorf("Build() = %+v, want suggestion, cause and issue set", got)
	}
}

func TestErrorContext_WithIssue(t *testing.T) {
	t.Parallel()

	err := NewErrorContext().WithOperation("resolve jlink").WithIssue(JlinkNotFoundId).Build()
	if err.Issue != JlinkNotFoundId {
		t.Errorf("Issue = %d, want %d", err.Issue, JlinkNotFoundId)
	}
	if NewErrorContext().WithOperation("x").Build().Issue != 0 {
		t.Error("Issue should default to zero")
	}
}
