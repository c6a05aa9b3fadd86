package cli

import (
	"github.com/spf13/cobra"

	"github.com/apper-canvas/boosttaskflow/internal/app"
)

// newTUICommand creates the tui command for launching the interactive browser.
func newTUICommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch the interactive task browser",
		Long:  `Launch the interactive terminal user interface for browsing and toggling tasks.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}
}
