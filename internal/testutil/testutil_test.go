// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestMustWriteFile_CreatesParents(t *testing.T) {
	t.Parallel()

	path := MustWriteFile(t, filepath.Join(t.TempDir(), "a", "b", "jlink.toml"), "output = \"img\"\n")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "output = \"img\"\n" {
		t.Errorf("content = %q", data)
	}
}

func TestWriteFakeJDK(t *testing.T) {
	t.Parallel()

	jdk := WriteFakeJDK(t, t.TempDir(), "21.0.2", "")

	release, err := os.ReadFile(filepath.Join(jdk.Home, "release"))
	if err != nil {
		t.Fatalf("release file: %v", err)
	}
	if !strings.Contains(string(release), `JAVA_VERSION="21.0.2"`) {
		t.Errorf("release = %q", release)
	}

	if runtime.GOOS == "windows" {
		if _, err := os.Stat(jdk.Jlink); err != nil {
			t.Errorf("placeholder jlink missing: %v", err)
		}
		return
	}

	out, err := exec.Command(jdk.Jlink, "--output", "my image").Output()
	if err != nil {
		t.Fatalf("fake jlink failed: %v", err)
	}
	if string(out) != "--output\nmy image\n" {
		t.Errorf("fake jlink output = %q", out)
	}
}

func TestContainerParallelism(t *testing.T) {
	t.Cleanup(MustSetenv(t, "JLINKRUN_TEST_CONTAINER_PARALLEL", "5"))
	if got := containerParallelism(); got != 5 {
		t.Errorf("containerParallelism() = %d, want 5", got)
	}

	t.Cleanup(MustSetenv(t, "JLINKRUN_TEST_CONTAINER_PARALLEL", "zero"))
	if got := containerParallelism(); got < 1 || got > 2 {
		t.Errorf("containerParallelism() fallback = %d", got)
	}
}
