// SPDX-License-Identifier: MPL-2.0

package cmdline

import "strings"

// Render joins the executable and its arguments into a single command line,
// escaping every element with e.
func (e *Escaper) Render(executable string, args []string) string {
	var sb strings.Builder
	sb.WriteString(e.Escape(executable))
	for _, a := range args {
		sb.WriteByte(' ')
		sb.WriteString(e.Escape(a))
	}
	return sb.String()
}

// Render renders a command line with the host quoting policy.
func Render(executable string, args []string) string {
	return MustEscaper(HostPolicy).Render(executable, args)
}
