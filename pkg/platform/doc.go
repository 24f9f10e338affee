// SPDX-License-Identifier: MPL-2.0

// Package platform provides cross-platform helpers: OS name constants,
// executable file naming and detection of application sandboxes that
// require host commands to be spawned through a helper.
package platform
