// SPDX-License-Identifier: MPL-2.0

// Package jlink turns a typed Configuration into the argument vector of a
// jlink invocation.
//
// The package has three layers:
//
//   - the catalog: a closed, ordered table of the options jlink accepts;
//   - coercion: per-kind rules that turn one configuration field into zero or
//     more tokens (booleans become bare flags, unset or blank values become nothing);
//   - assembly: walks the catalog in order, checks the mandatory --output
//     option and the existence of module paths, and concatenates the tokens.
//
// Assembly either returns the complete vector or a *ConfigurationError; it
// never returns a partial vector. The executable is not part of the vector.
package jlink
