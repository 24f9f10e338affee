// SPDX-License-Identifier: MPL-2.0

// Package build orchestrates one jlink run: it loads the build description,
// assembles and validates the argument vector, resolves the jlink executable
// and, unless the run is skipped or dry, executes it. The CLI layer maps the
// returned errors to exit codes with ExitCode.
package build
