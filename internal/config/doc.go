// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from $XDG_CONFIG_HOME/jlinkrun/config.cue on Linux,
// ~/Library/Application Support/jlinkrun/config.cue on macOS and
// %APPDATA%\jlinkrun\config.cue on Windows, falling back to ./config.cue. The file
// is validated against the embedded #Config schema (config_schema.cue) before it
// is merged over the defaults. Environment variables named
// JLINKRUN_<SECTION>_<KEY> override both.
package config
