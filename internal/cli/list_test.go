package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apper-canvas/boosttaskflow/internal/domain"
	"github.com/apper-canvas/boosttaskflow/internal/testutil"
)

func TestListsCommand_ShowsDerivedCounts(t *testing.T) {
	tasks := testutil.NewMockTaskStore(
		domain.Task{ID: 1, Title: "Open", ListID: "1"},
		domain.Task{ID: 2, Title: "Done", ListID: "1", Completed: true},
		domain.Task{ID: 3, Title: "Other", ListID: "2"},
	)
	lists := testutil.NewMockListStore(
		domain.List{ID: 1, Name: "Work", Order: 1},
		domain.List{ID: 2, Name: "Personal", Order: 2},
	)
	container := newTestContainer(tasks, lists)

	cmd := newListsCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs(nil)

	require.NoError(t, cmd.Execute())
	out := buf.String()
	assert.Contains(t, out, "Work")
	assert.Contains(t, out, "Personal")
	// Completed tasks are excluded from the count.
	assert.Regexp(t, `1\s+Work\s+1`, out)
	assert.Regexp(t, `2\s+Personal\s+1`, out)
}

func TestListsAddCommand_CreatesList(t *testing.T) {
	lists := testutil.NewMockListStore()
	container := newTestContainer(testutil.NewMockTaskStore(), lists)

	cmd := newListsCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"add", "Errands", "--color", "#10B981", "--icon", "ShoppingCart"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), `Created list #1 "Errands"`)
	require.Len(t, lists.Lists, 1)
	assert.Equal(t, "#10B981", lists.Lists[0].Color)
	assert.Equal(t, "ShoppingCart", lists.Lists[0].Icon)
}

func TestListsEditCommand_PatchesName(t *testing.T) {
	lists := testutil.NewMockListStore(domain.List{ID: 1, Name: "Work", Color: "#3B82F6"})
	container := newTestContainer(testutil.NewMockTaskStore(), lists)

	cmd := newListsCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"edit", "1", "--name", "Office"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Updated list #1")
	assert.Equal(t, "Office", lists.Lists[0].Name)
	assert.Equal(t, "#3B82F6", lists.Lists[0].Color)
}

func TestListsRmCommand_LeavesTasksOrphaned(t *testing.T) {
	tasks := testutil.NewMockTaskStore(domain.Task{ID: 1, Title: "Orphan", ListID: "1"})
	lists := testutil.NewMockListStore(domain.List{ID: 1, Name: "Work"})
	container := newTestContainer(tasks, lists)

	cmd := newListsCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"rm", "1"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Deleted list #1")
	assert.Empty(t, lists.Lists)
	// The task survives the list removal.
	require.Len(t, tasks.Tasks, 1)
	assert.Equal(t, "1", tasks.Tasks[0].ListID)
}

func TestImportCommand_CreatesTasksFromFile(t *testing.T) {
	tasks := testutil.NewMockTaskStore()
	container := newTestContainer(tasks, testutil.NewMockListStore())

	path := filepath.Join(t.TempDir(), "tasks.yaml")
	content := `- title: Write quarterly report
  priority: high
- title: Book dentist appointment
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cmd := newImportCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())
	out := buf.String()
	assert.Contains(t, out, "Created task #1: Write quarterly report")
	assert.Contains(t, out, "Created task #2: Book dentist appointment")
	assert.Contains(t, out, "Imported 2 of 2 task(s)")
	assert.Len(t, tasks.Tasks, 2)
}

func TestImportCommand_ReportsPerDraftFailures(t *testing.T) {
	tasks := testutil.NewMockTaskStore()
	container := newTestContainer(tasks, testutil.NewMockListStore())

	path := filepath.Join(t.TempDir(), "tasks.yaml")
	content := `- title: Good one
- title: Bad one
  priority: urgent
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cmd := newImportCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())
	out := buf.String()
	assert.Contains(t, out, "Created task #1: Good one")
	assert.Contains(t, out, "Draft 2 failed")
	assert.Contains(t, out, "Imported 1 of 2 task(s)")
}

func TestImportCommand_MissingFile(t *testing.T) {
	container := newTestContainer(testutil.NewMockTaskStore(), testutil.NewMockListStore())

	cmd := newImportCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "absent.yaml")})

	err := cmd.Execute()
	assert.ErrorContains(t, err, "read file")
}
