// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"strings"

	"github.com/charmbracelet/log"
)

// Relay logs each line of the captured standard output: at info level when the
// process succeeded, at error level otherwise. Blank output logs nothing.
func Relay(logger *log.Logger, r *Result) {
	out := strings.TrimSpace(r.Output)
	if out == "" {
		return
	}
	emit := logger.Info
	if !r.Success() {
		emit = logger.Error
	}
	for _, line := range strings.Split(out, "\n") {
		emit(strings.TrimRight(line, "\r"))
	}
}
