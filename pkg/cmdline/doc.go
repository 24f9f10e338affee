// SPDX-License-Identifier: MPL-2.0

// Package cmdline turns argument vectors into printable command lines.
//
// Escaping is parameterized by a QuotingPolicy value instead of being read
// from the host at call time, so both the POSIX and Windows conventions can
// be exercised from the same process. HostPolicy is the policy of the
// platform the binary runs on.
//
// The escaped form is one-directional: it is meant for logs, dry-run output
// and error diagnostics, never for re-parsing.
package cmdline
