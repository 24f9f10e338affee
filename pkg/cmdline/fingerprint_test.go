// SPDX-License-Identifier: MPL-2.0

package cmdline

import (
	"strings"
	"testing"
)

func TestFingerprint(t *testing.T) {
	t.Parallel()

	a := Fingerprint([]string{"--output", "/tmp/img", "--strip-debug"})
	b := Fingerprint([]string{"--output", "/tmp/img", "--strip-debug"})
	if a != b {
		t.Fatalf("Fingerprint is not deterministic: %s != %s", a, b)
	}
	if !strings.HasPrefix(a, FingerprintPrefix) {
		t.Errorf("Fingerprint %q lacks prefix %q", a, FingerprintPrefix)
	}
	if hexLen := len(a) - len(FingerprintPrefix); hexLen != 64 {
		t.Errorf("digest length = %d hex chars, want 64", hexLen)
	}

	boundaries := []struct {
		name string
		x, y []string
	}{
		{"space inside element", []string{"a b"}, []string{"a", "b"}},
		{"trailing NUL vs empty element", []string{"a\x00"}, []string{"a", ""}},
		{"embedded NUL vs split", []string{"a\x00b"}, []string{"a", "b"}},
		{"empty vector vs empty element", nil, []string{""}},
		{"joined vs split", []string{"ab"}, []string{"a", "b"}},
	}
	for _, tt := range boundaries {
		if Fingerprint(tt.x) == Fingerprint(tt.y) {
			t.Errorf("%s: %q and %q share a fingerprint", tt.name, tt.x, tt.y)
		}
	}
	if Fingerprint([]string{"--verbose", "--strip-debug"}) == Fingerprint([]string{"--strip-debug", "--verbose"}) {
		t.Error("order must affect the fingerprint")
	}
}
