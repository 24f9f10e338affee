// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"github.com/jlinkrun/jlinkrun/internal/app/build"
)

// renderDryRun prints the planned invocation without executing it.
func renderDryRun(w io.Writer, plan *build.Plan) {
	fmt.Fprintln(w, TitleStyle.Render("Dry Run"))
	fmt.Fprintln(w)

	fmt.Fprintln(w, field("build file", plan.BuildFile))
	source := string(plan.Source)
	if source == "" {
		source = SubtitleStyle.Render("(unresolved)")
	}
	fmt.Fprintln(w, field("jlink", plan.Executable+" "+SubtitleStyle.Render("["+source+"]")))
	if plan.JavaVersion != "" {
		fmt.Fprintln(w, field("java", plan.JavaVersion))
	}
	if plan.Dir != "" {
		fmt.Fprintln(w, field("directory", plan.Dir))
	}
	fmt.Fprintln(w, field("fingerprint", plan.Fingerprint()))
	fmt.Fprintln(w, field("invocation", plan.ID.String()))

	fmt.Fprintln(w)
	fmt.Fprintln(w, SubtitleStyle.Render("Command:"))
	fmt.Fprintf(w, "  %s\n", CmdStyle.Render(plan.CommandLine()))
}
