package cli

import (
	"github.com/spf13/cobra"
)

// newTUICommand creates the tui command for launching the interactive TUI.
// The list is loaded leniently like the menu shell; the TUI saves on request.
func newTUICommand(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Launch interactive TUI",
		Long:  `Launch the full-screen terminal interface for managing tasks.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := d.loadList(cmd, false)
			if err != nil {
				return err
			}
			return launchTUIFunc(d.container, list)
		},
	}
	return cmd
}
