// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/jlinkrun/jlinkrun/pkg/jlink"
)

func newOptionsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List the supported jlink options",
		Long: `List the jlink options jlinkrun can emit, in the order they appear on
the command line, with the build description key that sets each one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderOptions(app.stdout, jlink.Catalog())
			return nil
		},
	}
}

func renderOptions(w io.Writer, options []jlink.Option) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(SubtitleStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return TitleStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("FLAG", "KIND", "KEY", "NOTES")

	for _, o := range options {
		t.Row(o.Flag, o.Kind.String(), o.Key, optionNotes(o))
	}
	fmt.Fprintln(w, t.Render())
}

func optionNotes(o jlink.Option) string {
	var notes []string
	if o.Mandatory {
		notes = append(notes, "mandatory")
	}
	if o.MustExist {
		notes = append(notes, "must exist")
	}
	return strings.Join(notes, ", ")
}
