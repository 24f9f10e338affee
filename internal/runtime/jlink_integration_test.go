// SPDX-License-Identifier: MPL-2.0

//go:build integration

package runtime

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	tcexec "github.com/testcontainers/testcontainers-go/exec"

	"github.com/jlinkrun/jlinkrun/internal/testutil"
	"github.com/jlinkrun/jlinkrun/pkg/jlink"
	"github.com/jlinkrun/jlinkrun/pkg/types"
)

const jdkImage = "eclipse-temurin:21-jdk"

// checkTestcontainersAvailable safely checks if testcontainers can be used.
func checkTestcontainersAvailable() (available bool) {
	defer func() {
		if r := recover(); r != nil {
			available = false
		}
	}()

	provider, err := testcontainers.ProviderDocker.GetProvider()
	if err != nil {
		return false
	}
	defer provider.Close()
	return true
}

// TestJlink_Integration feeds assembled argument vectors to a real jlink
// inside a JDK container.
func TestJlink_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	if !checkTestcontainersAvailable() {
		t.Skip("skipping jlink integration tests: testcontainers provider not available")
	}

	sem := testutil.ContainerSemaphore()
	sem <- struct{}{}
	defer func() { <-sem }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	ctr, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image: jdkImage,
			Cmd:   []string{"sleep", "infinity"},
		},
		Started: true,
	})
	testcontainers.CleanupContainer(t, ctr)
	if err != nil {
		t.Skipf("skipping jlink integration tests: cannot start %s: %v", jdkImage, err)
	}

	run := func(t *testing.T, args jlink.ArgumentVector) (int, string) {
		t.Helper()
		cmd := append([]string{"jlink"}, args.Strings()...)
		code, reader, err := ctr.Exec(ctx, cmd, tcexec.Multiplexed())
		if err != nil {
			t.Fatalf("Exec(%v) error = %v", cmd, err)
		}
		out, err := io.ReadAll(reader)
		if err != nil {
			t.Fatalf("reading output: %v", err)
		}
		return code, string(out)
	}

	t.Run("MinimalImage", func(t *testing.T) {
		args, err := jlink.Assemble(jlink.Configuration{
			Output:        types.FilesystemPath("/tmp/minimal"),
			AddModules:    []string{"java.base"},
			NoHeaderFiles: true,
			NoManPages:    true,
			StripDebug:    true,
		})
		if err != nil {
			t.Fatalf("Assemble() error = %v", err)
		}
		if code, out := run(t, args); code != 0 {
			t.Fatalf("jlink exit code = %d, output:\n%s", code, out)
		}
	})

	t.Run("LauncherImage", func(t *testing.T) {
		args, err := jlink.Assemble(jlink.Configuration{
			Output:     types.FilesystemPath("/tmp/launcher"),
			AddModules: []string{"java.base", "jdk.jshell"},
			Launchers:  []jlink.Launcher{jlink.NewLauncher("shell", "jdk.jshell")},
		})
		if err != nil {
			t.Fatalf("Assemble() error = %v", err)
		}
		if code, out := run(t, args); code != 0 {
			t.Fatalf("jlink exit code = %d, output:\n%s", code, out)
		}
		code, _, err := ctr.Exec(ctx, []string{"test", "-x", "/tmp/launcher/bin/shell"})
		if err != nil || code != 0 {
			t.Errorf("launcher script missing: code=%d err=%v", code, err)
		}
	})

	t.Run("UnknownModuleFails", func(t *testing.T) {
		args, err := jlink.Assemble(jlink.Configuration{
			Output:     types.FilesystemPath("/tmp/broken"),
			AddModules: []string{"com.example.missing"},
		})
		if err != nil {
			t.Fatalf("Assemble() error = %v", err)
		}
		code, out := run(t, args)
		if code == 0 {
			t.Fatal("jlink succeeded with an unknown module")
		}
		if !strings.Contains(out, "com.example.missing") {
			t.Errorf("output does not name the missing module:\n%s", out)
		}
	})
}
