// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"os"
	"sync"
)

const (
	// SandboxNone indicates no sandbox environment detected.
	SandboxNone SandboxType = ""
	// SandboxFlatpak indicates a Flatpak sandbox environment.
	SandboxFlatpak SandboxType = "flatpak"
	// SandboxSnap indicates a Snap sandbox environment.
	SandboxSnap SandboxType = "snap"
)

// detectOnce caches the sandbox detection result for the lifetime of the process.
//
// INVARIANT: detectSandboxFrom MUST NOT panic; sync.OnceValue re-panics on every call.
var detectOnce = sync.OnceValue(func() SandboxType {
	return detectSandboxFrom(os.Getenv, statFile)
})

// SandboxType identifies the type of application sandbox, if any.
type SandboxType string

// DetectSandbox returns the sandbox the current process runs in. The result is cached.
func DetectSandbox() SandboxType {
	return detectOnce()
}

// HostCommand rewrites name and args so the program runs on the host when the
// process is confined by st. Outside a sandbox the inputs are returned unchanged.
//
// A JDK installed on the host is invisible from inside a Flatpak, so jlink has
// to be launched through flatpak-spawn. Snap has no host-spawn equivalent
// (snap run only starts snap apps), so the command runs as is.
func HostCommand(st SandboxType, name string, args []string) (string, []string) {
	if st != SandboxFlatpak {
		return name, args
	}
	out := make([]string, 0, len(args)+2)
	out = append(out, "--host", name)
	out = append(out, args...)
	return "flatpak-spawn", out
}

func detectSandboxFrom(lookupEnv func(string) string, statFile func(string) error) SandboxType {
	// Flatpak takes precedence; /.flatpak-info is always present inside its sandboxes.
	if err := statFile("/.flatpak-info"); err == nil {
		return SandboxFlatpak
	}
	if lookupEnv("SNAP_NAME") != "" {
		return SandboxSnap
	}
	return SandboxNone
}

func statFile(path string) error {
	_, err := os.Stat(path)
	return err
}
