// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jlinkrun/jlinkrun/internal/testutil"
	"github.com/jlinkrun/jlinkrun/pkg/buildfile"
)

func TestInitCommand_WritesDiscoverableStarter(t *testing.T) {
	t.Parallel()

	for _, format := range buildfile.Formats() {
		t.Run(format.String(), func(t *testing.T) {
			t.Parallel()

			dir := filepath.Join(t.TempDir(), "service")
			h := newHarness()
			if err := h.run(t, "init", "--format", format.String(), dir); err != nil {
				t.Fatalf("init: %v", err)
			}

			found, err := buildfile.Discover(dir)
			if err != nil {
				t.Fatalf("Discover() error = %v", err)
			}
			if filepath.Base(found) != format.FileName() {
				t.Errorf("Discover() = %s, want %s", found, format.FileName())
			}
			if _, err := buildfile.Load(found); err != nil {
				t.Errorf("starter does not load: %v", err)
			}
		})
	}
}

func TestInitCommand_Existing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := testutil.MustWriteFile(t, filepath.Join(dir, "jlink.cue"), "output: \"custom\"\n")

	err := newHarness().run(t, "init", dir)
	if !errors.Is(err, ErrBuildFileExists) {
		t.Fatalf("init error = %v, want ErrBuildFileExists", err)
	}

	if err := newHarness().run(t, "init", "--force", dir); err != nil {
		t.Fatalf("init --force: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) == "output: \"custom\"\n" {
		t.Error("--force did not overwrite the existing file")
	}
}

func TestInitCommand_UnknownFormat(t *testing.T) {
	t.Parallel()

	err := newHarness().run(t, "init", "--format", "json", t.TempDir())
	if !errors.Is(err, buildfile.ErrInvalidFormat) {
		t.Errorf("init error = %v, want ErrInvalidFormat", err)
	}
}
