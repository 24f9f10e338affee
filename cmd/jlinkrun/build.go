// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jlinkrun/jlinkrun/internal/app/build"
)

type buildFlags struct {
	file   string
	dryRun bool
	jlink  string
}

func newBuildCommand(app *App, global *globalFlags) *cobra.Command {
	flags := &buildFlags{}

	cmd := &cobra.Command{
		Use:   "build [dir]",
		Short: "Create a runtime image with jlink",
		Long: `Create a runtime image with jlink.

The build description is taken from --file, then from build.file in the
configuration, and is otherwise discovered in dir (default: the working
directory) as jlink.cue, jlink.toml, jlink.yaml or jlink.hcl.

Exit status is 0 on success, 1 when jlink fails, 2 for an invalid build
description or configuration, and 3 when no jlink executable is found.`,
		Example: `  jlinkrun build
  jlinkrun build ./service --dry-run
  jlinkrun build -f jlink.toml --jlink /opt/jdk-21/bin/jlink`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := build.Request{File: flags.file, DryRun: flags.dryRun, Jlink: flags.jlink}
			if len(args) == 1 {
				req.Dir = args[0]
			}
			return runBuild(cmd, app, global, req)
		},
	}

	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "build description to use instead of discovery")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "print the jlink command without running it")
	cmd.Flags().StringVar(&flags.jlink, "jlink", "", "path of the jlink executable to use")

	return cmd
}

func runBuild(cmd *cobra.Command, app *App, global *globalFlags, req build.Request) error {
	s, err := app.open(cmd.Context(), global)
	if err != nil {
		return err
	}
	defer s.close()

	report, err := app.NewBuildService(s.cfg, s.logger).Run(cmd.Context(), req)
	if err != nil {
		return app.fail(err, build.ExitCode(err), s.verbose, s.cfg.UI.ColorScheme)
	}

	renderReport(app.stdout, report)
	return nil
}

func renderReport(w io.Writer, report *build.Report) {
	switch report.Outcome {
	case build.OutcomeSkipped:
		fmt.Fprintln(w, WarningStyle.Render("Skipped")+SubtitleStyle.Render(" (skip is set in the build description)"))
	case build.OutcomeDryRun:
		renderDryRun(w, report.Plan)
	case build.OutcomeExecuted:
		fmt.Fprintln(w, SuccessStyle.Render("Runtime image created"))
		fmt.Fprintln(w, field("command", CmdStyle.Render(report.Plan.CommandLine())))
		if report.Result != nil {
			fmt.Fprintln(w, field("duration", report.Result.Duration.String()))
		}
	}
}
