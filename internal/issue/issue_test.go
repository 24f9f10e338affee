// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestId_Constants(t *testing.T) {
	t.Parallel()

	ids := []Id{
		BuildFileNotFoundId,
		BuildFileInvalidId,
		ConfigurationInvalidId,
		JlinkNotFoundId,
		JlinkFailedId,
		ConfigLoadFailedId,
	}

	seen := make(map[Id]bool)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("duplicate ID: %d", id)
		}
		seen[id] = true
		if Get(id) == nil {
			t.Errorf("Get(%d) returned nil", id)
		}
	}

	if BuildFileNotFoundId != 1 {
		t.Errorf("BuildFileNotFoundId = %d, want 1", BuildFileNotFoundId)
	}
	if Get(0) != nil {
		t.Error("Get(0) should return nil")
	}
}

func TestValues_SortedAndComplete(t *testing.T) {
	t.Parallel()

	vals := Values()
	if len(vals) != len(issues) {
		t.Fatalf("len(Values()) = %d, want %d", len(vals), len(issues))
	}
	for i := 1; i < len(vals); i++ {
		if vals[i-1].Id() >= vals[i].Id() {
			t.Errorf("Values() not sorted at %d", i)
		}
	}
	for _, v := range vals {
		if v.MarkdownMsg() == "" {
			t.Errorf("issue %d has no message", v.Id())
		}
		if len(v.DocLinks()) == 0 {
			t.Errorf("issue %d has no doc links", v.Id())
		}
	}
}

func TestIssue_MarkdownMsg(t *testing.T) {
	t.Parallel()

	msg := Get(BuildFileNotFoundId).MarkdownMsg()
	for _, want := range []string{"No build description found", "jlink.cue", "jlinkrun init"} {
		if !strings.Contains(string(msg), want) {
			t.Errorf("MarkdownMsg() should contain %q", want)
		}
	}
}

func TestIssue_DocLinksAreCopies(t *testing.T) {
	t.Parallel()

	i := Get(JlinkNotFoundId)
	links := i.DocLinks()
	links[0] = "mutated"
	if i.DocLinks()[0] == "mutated" {
		t.Error("DocLinks() exposed internal slice")
	}
}

func TestIssue_Render(t *testing.T) {
	t.Parallel()

	out, err := Get(ConfigurationInvalidId).Render("notty")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(out, "jlink options are invalid") {
		t.Errorf("Render() output missing title:\n%s", out)
	}
	if !strings.Contains(out, "See also") {
		t.Errorf("Render() output missing links section:\n%s", out)
	}
}

func TestIssue_RenderError(t *testing.T) {
	// Mutates the package-level renderer; not parallel.
	orig := render
	t.Cleanup(func() { render = orig })
	render = func(string, string) (string, error) { return "", errors.New("boom") }

	if _, err := Get(JlinkFailedId).Render("dark"); err == nil {
		t.Error("Render() should propagate renderer errors")
	}
}
