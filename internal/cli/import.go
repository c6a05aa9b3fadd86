package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/apper-canvas/boosttaskflow/internal/app"
	"github.com/apper-canvas/boosttaskflow/internal/usecase"
)

// newImportCommand creates the import command for bulk-creating tasks.
func newImportCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import tasks from a YAML file",
		Long: `Create tasks in bulk from a YAML file.

Drafts that fail validation are reported individually; the remaining
drafts are still created. The exit status is non-zero only when the
file itself cannot be read or parsed.

File format:
  - title: Write quarterly report
    priority: high
    due: 2025-07-01
    list: "1"
  - title: Book dentist appointment
    description: Ask about the cleaning schedule`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			out, err := c.ImportTasksUseCase().Execute(cmd.Context(), usecase.ImportTasksInput{Content: content})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, t := range out.Created {
				_, _ = fmt.Fprintf(w, "Created task #%d: %s\n", t.ID, t.Title)
			}
			for _, f := range out.Failed {
				_, _ = fmt.Fprintf(w, "Draft %d failed: %s\n", f.Index+1, f.Message)
				for _, fe := range f.Fields {
					_, _ = fmt.Fprintf(w, "  %s: %s\n", fe.Field, fe.Message)
				}
			}
			_, _ = fmt.Fprintf(w, "\nImported %d of %d task(s)\n", len(out.Created), out.Total)
			return nil
		},
	}
}
