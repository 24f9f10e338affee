// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jlinkrun/jlinkrun/pkg/buildfile"
)

// ErrBuildFileExists is returned by init when the target file exists and --force is not set.
var ErrBuildFileExists = errors.New("build description already exists")

type initFlags struct {
	format string
	force  bool
}

func newInitCommand(app *App) *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create a starter build description",
		Long: `Create a starter build description in dir (default: the working directory).

The file is named jlink.<format> so that 'jlinkrun build' discovers it.`,
		Example: `  jlinkrun init
  jlinkrun init --format toml ./service`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			path, err := writeStarter(dir, buildfile.Format(strings.ToLower(flags.format)), flags.force)
			if err != nil {
				return err
			}
			fmt.Fprintln(app.stdout, SuccessStyle.Render("Created ")+CmdStyle.Render(path))
			return nil
		},
	}

	formats := make([]string, 0, len(buildfile.Formats()))
	for _, f := range buildfile.Formats() {
		formats = append(formats, f.String())
	}
	cmd.Flags().StringVar(&flags.format, "format", buildfile.FormatCUE.String(), "file format ("+strings.Join(formats, ", ")+")")
	cmd.Flags().BoolVar(&flags.force, "force", false, "overwrite an existing file")

	return cmd
}

func writeStarter(dir string, format buildfile.Format, force bool) (string, error) {
	data, err := buildfile.Starter(format)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, format.FileName())
	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("%w: %s (use --force to overwrite)", ErrBuildFileExists, path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
