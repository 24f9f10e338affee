// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// FakeJDK is a JDK home laid out on disk by WriteFakeJDK.
type FakeJDK struct {
	Home  string
	Jlink string
}

// WriteFakeJDK creates a JDK home at dir containing a release file for
// version and an executable bin/jlink (bin/jlink.exe on Windows) running the
// shell script body. An empty body prints the arguments, one per line.
//
// On Windows the file is only a placeholder: it exists but cannot be run.
func WriteFakeJDK(t testing.TB, dir, version, body string) FakeJDK {
	t.Helper()

	if body == "" {
		body = `for a in "$@"; do echo "$a"; done`
	}
	name := "jlink"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}

	MustWriteFile(t, filepath.Join(dir, "release"), "JAVA_VERSION=\""+version+"\"\n")
	jlink := filepath.Join(dir, "bin", name)
	MustWriteFile(t, jlink, "#!/bin/sh\n"+body+"\n")
	if err := os.Chmod(jlink, 0o755); err != nil {
		t.Fatalf("failed to make %s executable: %v", jlink, err)
	}
	return FakeJDK{Home: dir, Jlink: jlink}
}
