// SPDX-License-Identifier: MPL-2.0

// Package runtime runs a single jlink invocation as a subprocess.
//
// NativeExecutor starts the process with os/exec, waits for it and captures
// standard output and standard error into buffers. There is no timeout and no
// retry: the context only exists so an interrupt delivered to jlinkrun stops
// the child as well. Inside a Flatpak or Snap sandbox the command is spawned
// on the host (see platform.HostCommand).
//
// Relay forwards captured output to a logger once the process has exited, and
// NewExecutionError turns an unsuccessful Result into an *ExecutionError that
// carries the exit code, standard error and the escaped command line.
package runtime
