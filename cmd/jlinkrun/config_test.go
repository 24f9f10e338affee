// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"strings"
	"testing"

	"github.com/jlinkrun/jlinkrun/internal/config"
)

func TestConfigCommand_Show(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"from file", "/home/dev/.config/jlinkrun/config.cue", "/home/dev/.config/jlinkrun/config.cue"},
		{"defaults", "", "(using defaults)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newHarness()
			h.provider.cfg.JDK.Home = "/opt/jdk-21"
			h.provider.source = tt.source
			if err := h.run(t, "config", "show"); err != nil {
				t.Fatalf("config show: %v", err)
			}

			out := h.stdout.String()
			for _, want := range []string{tt.want, config.GenerateCUE(h.provider.cfg)} {
				if !strings.Contains(out, want) {
					t.Errorf("stdout missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestConfigCommand_Dump(t *testing.T) {
	t.Parallel()

	h := newHarness()
	if err := h.run(t, "config", "dump"); err != nil {
		t.Fatalf("config dump: %v", err)
	}
	if h.stdout.String() != config.Schema() {
		t.Error("config dump does not print the schema")
	}
}
