// SPDX-License-Identifier: MPL-2.0

// Package buildfile loads build descriptions: the file that declares which
// jlink options to use for a project.
//
// Four formats are accepted, selected by file extension:
//
//   - .cue, validated against the embedded #Build schema (buildfile_schema.cue);
//   - .toml;
//   - .yaml / .yml;
//   - .hcl, where the environment is available as env.NAME, and launchers are
//     declared as `launcher "name" { ... }` blocks.
//
// Field names are the same in every format (snake_case). Path values
// (output, module_paths) have $VAR and ${VAR} references expanded from the
// environment. Relative paths are kept relative; callers resolve them against
// Descriptor.BaseDir, the directory that contains the build description.
//
// When no file is given, Discover searches a directory for jlink.cue,
// jlink.toml, jlink.yaml, jlink.yml and jlink.hcl, in that order.
package buildfile
