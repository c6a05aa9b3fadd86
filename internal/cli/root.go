// Package cli provides the command-line interface for taskflow.
package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/apper-canvas/boosttaskflow/internal/app"
	"github.com/apper-canvas/boosttaskflow/internal/tui"
)

// Command group IDs.
const (
	groupTask = "task"
	groupList = "list"
	groupData = "data"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for taskflow.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "taskflow",
		Short: "Personal task and list manager",
		Long: `taskflow is a CLI for managing personal tasks across named lists.

Tasks carry a priority, an optional due date and a completion state.
Queries can be scoped to one list and narrowed by search text, status,
priority and due-date range. Records are kept in a local snapshot or
in a remote record service, selected by configuration.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Default: launch the interactive TUI
			return launchTUIFunc(c)
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupTask, Title: "Task Commands:"},
		&cobra.Group{ID: groupList, Title: "List Commands:"},
		&cobra.Group{ID: groupData, Title: "Data Commands:"},
	)

	addCmd := newAddCommand(c)
	addCmd.GroupID = groupTask

	lsCmd := newLsCommand(c)
	lsCmd.GroupID = groupTask

	showCmd := newShowCommand(c)
	showCmd.GroupID = groupTask

	editCmd := newEditCommand(c)
	editCmd.GroupID = groupTask

	doneCmd := newDoneCommand(c)
	doneCmd.GroupID = groupTask

	rmCmd := newRmCommand(c)
	rmCmd.GroupID = groupTask

	listsCmd := newListsCommand(c)
	listsCmd.GroupID = groupList

	importCmd := newImportCommand(c)
	importCmd.GroupID = groupData

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupTask

	root.AddCommand(
		addCmd,
		lsCmd,
		showCmd,
		editCmd,
		doneCmd,
		rmCmd,
		listsCmd,
		importCmd,
		tuiCmd,
	)

	return root
}

// launchTUI starts the interactive task browser.
func launchTUI(c *app.Container) error {
	p := tea.NewProgram(tui.New(c), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
