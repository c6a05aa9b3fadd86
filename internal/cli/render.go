package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/apper-canvas/boosttaskflow/internal/domain"
)

// Styles for terminal output. Rendering degrades to plain text when the
// output is not a terminal, so tests can match on content.
// Only the last cell of a row is ever styled: escape sequences in inner
// cells throw off tabwriter's width accounting.
var doneStyle = lipgloss.NewStyle().Faint(true).Strikethrough(true)

// printTaskTable prints tasks in aligned columns.
func printTaskTable(w io.Writer, tasks []domain.Task, now time.Time) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, "ID\tSTATUS\tPRI\tDUE\tLIST\tTITLE")

	for _, t := range tasks {
		status := "todo"
		title := t.Title
		if t.Completed {
			status = "done"
			title = doneStyle.Render(title)
		}

		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			t.ID,
			status,
			t.Priority,
			formatDue(t, now),
			orDash(t.ListID),
			title,
		)
	}
}

// printListTable prints lists with their derived task counts.
func printListTable(w io.Writer, lists []domain.List) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, "ID\tNAME\tTASKS\tCOLOR\tICON")
	for _, l := range lists {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\n",
			l.ID, l.Name, l.TaskCount, orDash(l.Color), orDash(l.Icon))
	}
}

// printTaskDetail prints a single task in key/value form.
func printTaskDetail(w io.Writer, t *domain.Task, now time.Time) {
	_, _ = fmt.Fprintf(w, "Task #%d\n", t.ID)
	_, _ = fmt.Fprintf(w, "  Title:    %s\n", t.Title)
	if t.Description != "" {
		_, _ = fmt.Fprintf(w, "  Body:     %s\n", t.Description)
	}
	_, _ = fmt.Fprintf(w, "  Priority: %s\n", t.Priority)
	_, _ = fmt.Fprintf(w, "  List:     %s\n", orDash(t.ListID))
	_, _ = fmt.Fprintf(w, "  Due:      %s\n", formatDue(*t, now))
	status := "todo"
	if t.Completed {
		status = "done"
		if t.CompletedAt != nil {
			status = fmt.Sprintf("done (%s)", t.CompletedAt.Local().Format("2006-01-02 15:04"))
		}
	}
	_, _ = fmt.Fprintf(w, "  Status:   %s\n", status)
	_, _ = fmt.Fprintf(w, "  Created:  %s\n", t.CreatedAt.Local().Format("2006-01-02 15:04"))
}

// formatDue renders a due date relative to today.
func formatDue(t domain.Task, now time.Time) string {
	if t.DueDate == nil {
		return "-"
	}
	due := t.DueDate.Local()
	s := due.Format("2006-01-02")
	today := domain.StartOfDay(now)
	switch {
	case due.Before(today) && !t.Completed:
		return s + " (overdue)"
	case !due.Before(today) && due.Before(today.AddDate(0, 0, 1)):
		return s + " (today)"
	}
	return s
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// parseDate accepts a bare date in local time or a full RFC 3339 stamp.
func parseDate(s string) (time.Time, error) {
	if d, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return d, nil
	}
	d, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC 3339", s)
	}
	return d, nil
}

// parseID parses a numeric record ID argument.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid ID %q", arg)
	}
	return id, nil
}
