package cli

import (
	"fmt"
	"io"

	"github.com/alexanderramin/wbs/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [csv-file]",
		Short: "Print the checklist tree with progress",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printChecklist(cmd.OutOrStdout(), app, false)
		},
	}
}

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status [csv-file]",
		Short: "Print per-phase and overall progress",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printChecklist(cmd.OutOrStdout(), app, true)
		},
	}
}

// printChecklist writes the static rendering. Without an interactive
// error state a load failure is returned to the caller.
func printChecklist(w io.Writer, app *App, status bool) error {
	if err := app.Checklist.LoadErr(); err != nil {
		return err
	}
	snap := app.Checklist.Snapshot()
	if status {
		_, err := fmt.Fprint(w, formatter.FormatStatus(snap))
		return err
	}
	_, err := fmt.Fprint(w, formatter.FormatChecklist(snap))
	return err
}
