// SPDX-License-Identifier: MPL-2.0

package build

import (
	"github.com/google/uuid"

	"github.com/jlinkrun/jlinkrun/internal/runtime"
	"github.com/jlinkrun/jlinkrun/internal/toolchain"
	"github.com/jlinkrun/jlinkrun/pkg/cmdline"
	"github.com/jlinkrun/jlinkrun/pkg/jlink"
)

const (
	// OutcomeSkipped means the build description set skip.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeDryRun means the invocation was planned but not executed.
	OutcomeDryRun Outcome = "dry-run"
	// OutcomeExecuted means jlink ran and exited successfully.
	OutcomeExecuted Outcome = "executed"
)

type (
	// Outcome summarizes how a run ended.
	Outcome string

	// Plan is a fully validated jlink invocation.
	Plan struct {
		// ID correlates the log lines of one run.
		ID uuid.UUID
		// BuildFile is the absolute path of the build description.
		BuildFile string
		// Executable is the resolved jlink path.
		Executable string
		// Source tells where Executable was found; empty in a dry run that
		// could not resolve it.
		Source toolchain.Source
		// JavaVersion is the JAVA_VERSION of the JDK Executable belongs to.
		JavaVersion string
		// Args excludes the executable.
		Args jlink.ArgumentVector
		// Dir is the working directory jlink runs in.
		Dir string
	}

	// Report is the result of Service.Run.
	Report struct {
		Outcome Outcome
		// Plan is nil when the run was skipped.
		Plan *Plan
		// Result is set only when jlink ran.
		Result *runtime.Result
	}
)

func (o Outcome) String() string { return string(o) }

// CommandLine renders the invocation with host quoting, for display.
func (p *Plan) CommandLine() string {
	return cmdline.Render(p.Executable, p.Args.Strings())
}

// Fingerprint identifies the argument vector; equal descriptions yield equal fingerprints.
func (p *Plan) Fingerprint() string {
	return cmdline.Fingerprint(p.Args.Strings())
}

// Invocation converts the plan for an Executor.
func (p *Plan) Invocation() runtime.Invocation {
	return runtime.Invocation{
		Executable: p.Executable,
		Args:       p.Args.Strings(),
		Dir:        p.Dir,
	}
}
