// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jlinkrun/jlinkrun/internal/config"
)

// newConfigCommand creates the `jlinkrun config` command tree.
// Subcommands that read configuration use the App's ConfigProvider.
func newConfigCommand(app *App, global *globalFlags) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage jlinkrun configuration",
		Long: `Manage jlinkrun configuration.

Configuration is stored in:
  - Linux: ~/.config/jlinkrun/config.cue
  - macOS: ~/Library/Application Support/jlinkrun/config.cue
  - Windows: %APPDATA%\jlinkrun\config.cue

A config.cue in the working directory is used when the user file is absent,
and JLINKRUN_<SECTION>_<KEY> environment variables override both.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.open(cmd.Context(), global)
			if err != nil {
				return err
			}
			defer s.close()

			source := s.source
			if source == "" {
				source = SubtitleStyle.Render("(using defaults)")
			}
			fmt.Fprintln(app.stdout, TitleStyle.Render("Current Configuration"))
			fmt.Fprintln(app.stdout, field("config file", source))
			fmt.Fprintln(app.stdout)
			fmt.Fprint(app.stdout, config.GenerateCUE(s.cfg))
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, created, err := config.CreateDefaultConfig("")
			if err != nil {
				return err
			}
			if !created {
				fmt.Fprintln(app.stdout, WarningStyle.Render("Configuration already exists: ")+CmdStyle.Render(path))
				return nil
			}
			fmt.Fprintln(app.stdout, SuccessStyle.Render("Created ")+CmdStyle.Render(path))
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.FilePath("")
			if err != nil {
				return err
			}
			fmt.Fprintln(app.stdout, path)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Print the configuration schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(app.stdout, config.Schema())
			return nil
		},
	})

	return cfgCmd
}
