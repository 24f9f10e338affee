// SPDX-License-Identifier: MPL-2.0

// Package testutil holds test helpers shared across jlinkrun packages.
//
// The Must* helpers fail the test on error instead of returning it. WriteFakeJDK
// lays out a JDK home whose jlink is a shell script, so toolchain resolution and
// execution can be tested without a real JDK installed.
package testutil
