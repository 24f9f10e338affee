// SPDX-License-Identifier: MPL-2.0

// Package toolchain locates the jlink executable.
//
// Candidates are tried in a fixed order: an explicitly configured executable,
// a configured toolchain matching the requested JDK version, the configured
// JDK home, JAVA_HOME, and finally a PATH lookup. JDK homes whose bin directory
// lacks jlink are logged and skipped.
package toolchain
