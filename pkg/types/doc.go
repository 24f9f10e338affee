// SPDX-License-Identifier: MPL-2.0

// Package types defines small value types shared by the jlinkrun packages:
// process exit codes and filesystem paths. They carry validation but no
// domain-specific behavior.
//
// This package is a leaf dependency: it imports only the standard library.
package types
