// SPDX-License-Identifier: MPL-2.0

package buildfile

import (
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/shell"
)

// expandPaths expands $VAR and ${VAR} in output and module_paths.
func (l *Loader) expandPaths(d *Descriptor) error {
	out, err := l.expand(d.Output)
	if err != nil {
		return fmt.Errorf("output: %w", err)
	}
	d.Output = out

	for i, p := range d.ModulePaths {
		if d.ModulePaths[i], err = l.expand(p); err != nil {
			return fmt.Errorf("module_paths[%d]: %w", i, err)
		}
	}
	return nil
}

// expand leaves strings without a '$' untouched so that Windows backslashes
// are never interpreted as shell escapes.
func (l *Loader) expand(s string) (string, error) {
	if !strings.Contains(s, "$") {
		return s, nil
	}
	out, err := shell.Expand(s, l.Getenv)
	if err != nil {
		return "", fmt.Errorf("expanding %q: %w", s, err)
	}
	return out, nil
}
