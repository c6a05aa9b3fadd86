package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/apper-canvas/boosttaskflow/internal/app"
	"github.com/apper-canvas/boosttaskflow/internal/domain"
	"github.com/apper-canvas/boosttaskflow/internal/usecase"
)

// newAddCommand creates the add command for creating tasks.
func newAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Description string
		Priority    string
		Due         string
		ListID      string
	}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a new task",
		Long: `Create a new task.

The task is created incomplete, with priority medium unless specified.
A due date may be given as YYYY-MM-DD (local time); dates before today
are rejected.

Examples:
  # Create a task in no particular list
  taskflow add "Buy groceries"

  # Create a high-priority task due tomorrow in list 1
  taskflow add "File expense report" --priority high --due 2025-06-16 --list 1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			priority, err := domain.ParsePriority(opts.Priority)
			if err != nil {
				return fmt.Errorf("invalid priority %q", opts.Priority)
			}

			input := usecase.CreateTaskInput{
				Title:       args[0],
				Description: opts.Description,
				Priority:    priority,
				ListID:      opts.ListID,
			}
			if opts.Due != "" {
				due, err := parseDate(opts.Due)
				if err != nil {
					return err
				}
				input.DueDate = &due
			}

			out, err := c.CreateTaskUseCase().Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created task #%d\n", out.Task.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Description, "body", "", "Task description")
	cmd.Flags().StringVar(&opts.Priority, "priority", "", "Priority: high, medium or low (default medium)")
	cmd.Flags().StringVar(&opts.Due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.ListID, "list", "", "List ID the task belongs to")

	return cmd
}

// newLsCommand creates the ls command for querying tasks.
func newLsCommand(c *app.Container) *cobra.Command {
	var opts struct {
		ListID   string
		Search   string
		Status   string
		Priority string
		Due      string
		JSON     bool
	}

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List tasks",
		Long: `Display tasks, optionally scoped to one list and narrowed by
search text, status, priority and due-date range.

Incomplete tasks are shown before completed ones; within each group
tasks keep their stored order. Filters compose with AND semantics.

Examples:
  # All tasks across every list
  taskflow ls

  # Incomplete tasks in list 2
  taskflow ls --list 2 --status active

  # High-priority tasks due this week
  taskflow ls --priority high --due week

  # Search titles and descriptions
  taskflow ls -s "report"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := buildFilter(opts.Status, opts.Priority, opts.Due)
			if err != nil {
				return err
			}

			out, err := c.QueryTasksUseCase().Execute(cmd.Context(), usecase.QueryTasksInput{
				ListID: opts.ListID,
				Search: opts.Search,
				Filter: filter,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if opts.JSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(out.Tasks)
			}
			_, _ = fmt.Fprintf(w, "%s (%d)\n", out.ListName, len(out.Tasks))
			if len(out.Tasks) == 0 {
				return nil
			}
			printTaskTable(w, out.Tasks, c.Clock.Now())
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.ListID, "list", domain.AllLists, "List ID to scope to, or 'all'")
	cmd.Flags().StringVarP(&opts.Search, "search", "s", "", "Substring match over title and description")
	cmd.Flags().StringVar(&opts.Status, "status", "all", "Status filter: all, active or completed")
	cmd.Flags().StringVar(&opts.Priority, "priority", "all", "Priority filter: all, high, medium or low")
	cmd.Flags().StringVar(&opts.Due, "due", "all", "Due-date filter: all, today, week or overdue")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output as JSON")

	return cmd
}

// buildFilter validates the flag values and assembles the filter.
func buildFilter(status, priority, due string) (domain.Filter, error) {
	f := domain.DefaultFilter()

	switch s := domain.StatusFilter(strings.ToLower(status)); s {
	case domain.StatusAll, domain.StatusActive, domain.StatusCompleted:
		f.Status = s
	default:
		return f, fmt.Errorf("invalid status %q: expected all, active or completed", status)
	}

	switch p := domain.PriorityFilter(strings.ToLower(priority)); p {
	case domain.FilterPriorityAll, domain.FilterPriorityHigh, domain.FilterPriorityMedium, domain.FilterPriorityLow:
		f.Priority = p
	default:
		return f, fmt.Errorf("invalid priority %q: expected all, high, medium or low", priority)
	}

	switch d := domain.DateRangeFilter(strings.ToLower(due)); d {
	case domain.DateRangeAll, domain.DateRangeToday, domain.DateRangeWeek, domain.DateRangeOverdue:
		f.DateRange = d
	default:
		return f, fmt.Errorf("invalid due-date range %q: expected all, today, week or overdue", due)
	}

	return f, nil
}

// newShowCommand creates the show command for displaying one task.
func newShowCommand(c *app.Container) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show task details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			task, err := c.Tasks.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(task)
			}
			printTaskDetail(cmd.OutOrStdout(), task, c.Clock.Now())
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

// newEditCommand creates the edit command for patching tasks.
func newEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Priority    string
		Due         string
		ListID      string
		ClearDue    bool
	}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task",
		Long: `Edit fields of an existing task. Only flags that are given are
changed; everything else keeps its current value.

Examples:
  taskflow edit 3 --title "New title"
  taskflow edit 3 --priority low --due 2025-07-01
  taskflow edit 3 --clear-due`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var patch domain.TaskPatch
			if cmd.Flags().Changed("title") {
				patch.Title = &opts.Title
			}
			if cmd.Flags().Changed("body") {
				patch.Description = &opts.Description
			}
			if cmd.Flags().Changed("priority") {
				p, err := domain.ParsePriority(opts.Priority)
				if err != nil {
					return fmt.Errorf("invalid priority %q", opts.Priority)
				}
				patch.Priority = &p
			}
			if cmd.Flags().Changed("due") {
				due, err := parseDate(opts.Due)
				if err != nil {
					return err
				}
				patch.DueDate = &due
			}
			if opts.ClearDue {
				patch.ClearDueDate = true
			}
			if cmd.Flags().Changed("list") {
				patch.ListID = &opts.ListID
			}

			out, err := c.UpdateTaskUseCase().Execute(cmd.Context(), usecase.UpdateTaskInput{
				TaskID: id,
				Patch:  patch,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated task #%d\n", out.Task.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "New title")
	cmd.Flags().StringVar(&opts.Description, "body", "", "New description")
	cmd.Flags().StringVar(&opts.Priority, "priority", "", "New priority: high, medium or low")
	cmd.Flags().StringVar(&opts.Due, "due", "", "New due date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&opts.ClearDue, "clear-due", false, "Remove the due date")
	cmd.Flags().StringVar(&opts.ListID, "list", "", "Move the task to another list")

	return cmd
}

// newDoneCommand creates the done command for toggling completion.
func newDoneCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task's completion state",
		Long: `Flip a task between complete and incomplete. Completing a task
records the completion time; re-opening it clears the record.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			out, err := c.ToggleTaskUseCase().Execute(cmd.Context(), usecase.ToggleTaskInput{TaskID: id})
			if err != nil {
				return err
			}
			if out.Task.Completed {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Completed task #%d\n", out.Task.ID)
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Reopened task #%d\n", out.Task.ID)
			}
			return nil
		},
	}
}

// newRmCommand creates the rm command for deleting tasks.
func newRmCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if _, err := c.DeleteTaskUseCase().Execute(cmd.Context(), usecase.DeleteTaskInput{TaskID: id}); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task #%d\n", id)
			return nil
		},
	}
}
