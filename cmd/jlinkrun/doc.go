// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the CLI commands for jlinkrun.
//
// The Cobra command tree is built by NewRootCommand around an App, which holds
// the injectable services (configuration provider and build service factory)
// and the output streams. Execute runs the tree through fang for styled help,
// version output and interrupt handling.
package cmd
