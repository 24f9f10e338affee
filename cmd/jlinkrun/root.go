// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/jlinkrun/jlinkrun/pkg/types"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "jlinkrun",
		Short: "Build custom Java runtime images with jlink",
		Long: TitleStyle.Render("jlinkrun") + SubtitleStyle.Render(" - build custom Java runtime images with jlink") + `

jlinkrun reads a build description (jlink.cue, jlink.toml, jlink.yaml or
jlink.hcl), validates it, turns it into jlink options and runs the jlink
tool of the selected JDK.

` + SubtitleStyle.Render("Quick Start:") + `
  1. jlinkrun init                 Create jlink.cue in the current directory
  2. edit output and add_modules
  3. jlinkrun build                Create the runtime image

` + SubtitleStyle.Render("Examples:") + `
  jlinkrun build --dry-run         Show the jlink command without running it
  jlinkrun build -f app/jlink.toml Use a specific build description
  jlinkrun options                 List every supported option
  jlinkrun config show             Show the effective configuration`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging and verbose errors")
	root.PersistentFlags().StringVar(&flags.configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/jlinkrun/config.cue)")

	root.SetOut(app.stdout)
	root.SetErr(app.stderr)

	root.AddCommand(
		newBuildCommand(app, flags),
		newOptionsCommand(app),
		newInitCommand(app),
		newConfigCommand(app, flags),
	)
	return root
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI and exits the process. This is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})
	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(errorHandler),
	); err != nil {
		os.Exit(int(exitCodeOf(err)))
	}
}

// errorHandler lets fang style usage errors while staying quiet about
// failures the commands already reported.
func errorHandler(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

func exitCodeOf(err error) types.ExitCode {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return types.ExitFailure
}
