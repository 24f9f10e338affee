// SPDX-License-Identifier: MPL-2.0

package buildfile

import (
	"embed"
	"fmt"
)

//go:embed starter
var starterFS embed.FS

// Starter returns a minimal build description in the given format.
func Starter(f Format) ([]byte, error) {
	if isValid, errs := f.IsValid(); !isValid {
		return nil, errs[0]
	}
	data, err := starterFS.ReadFile("starter/" + f.FileName())
	if err != nil {
		return nil, fmt.Errorf("internal error: missing starter for %s: %w", f, err)
	}
	return data, nil
}
