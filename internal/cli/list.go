package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/apper-canvas/boosttaskflow/internal/app"
	"github.com/apper-canvas/boosttaskflow/internal/domain"
	"github.com/apper-canvas/boosttaskflow/internal/usecase"
)

// newListsCommand creates the lists command group.
func newListsCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lists",
		Short: "Manage task lists",
		Long: `Display and manage task lists.

Without a subcommand, all lists are shown with their task counts.
Counts include only incomplete tasks and are derived from the task
collection on every read.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListListsUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}
			printListTable(cmd.OutOrStdout(), out.Lists)
			return nil
		},
	}

	cmd.AddCommand(
		newListsAddCommand(c),
		newListsEditCommand(c),
		newListsRmCommand(c),
	)

	return cmd
}

// newListsAddCommand creates the lists add subcommand.
func newListsAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Color string
		Icon  string
	}

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a new list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.CreateListUseCase().Execute(cmd.Context(), usecase.CreateListInput{
				Name:  args[0],
				Color: opts.Color,
				Icon:  opts.Icon,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created list #%d %q\n", out.List.ID, out.List.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Color, "color", "", "Display color, e.g. #3B82F6")
	cmd.Flags().StringVar(&opts.Icon, "icon", "", "Display icon name")

	return cmd
}

// newListsEditCommand creates the lists edit subcommand.
func newListsEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Name  string
		Color string
		Icon  string
	}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var patch domain.ListPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &opts.Name
			}
			if cmd.Flags().Changed("color") {
				patch.Color = &opts.Color
			}
			if cmd.Flags().Changed("icon") {
				patch.Icon = &opts.Icon
			}

			out, err := c.UpdateListUseCase().Execute(cmd.Context(), usecase.UpdateListInput{
				ListID: id,
				Patch:  patch,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated list #%d\n", out.List.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "New name")
	cmd.Flags().StringVar(&opts.Color, "color", "", "New display color")
	cmd.Flags().StringVar(&opts.Icon, "icon", "", "New display icon")

	return cmd
}

// newListsRmCommand creates the lists rm subcommand.
func newListsRmCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a list",
		Long: `Delete a list. Tasks that referenced the list are kept; they simply
no longer belong to any list.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := c.DeleteListUseCase().Execute(cmd.Context(), usecase.DeleteListInput{ListID: id}); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted list #%d\n", id)
			return nil
		},
	}
}
