package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apper-canvas/boosttaskflow/internal/app"
	"github.com/apper-canvas/boosttaskflow/internal/domain"
	"github.com/apper-canvas/boosttaskflow/internal/testutil"
)

func newTestModel(tasks *testutil.MockTaskStore, lists *testutil.MockListStore) *Model {
	lists.TaskStore = tasks
	clock := &testutil.MockClock{NowTime: time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)}
	tasks.Clock = clock
	return New(app.NewWithDeps(tasks, lists, clock, nil))
}

// runCmd executes a command synchronously and feeds the message back.
func runCmd(t *testing.T, m *Model, cmd tea.Cmd) *Model {
	t.Helper()
	require.NotNil(t, cmd)
	next, _ := m.Update(cmd())
	model, ok := next.(*Model)
	require.True(t, ok)
	return model
}

func TestModel_LoadsTasksOnInit(t *testing.T) {
	tasks := testutil.NewMockTaskStore(
		domain.Task{ID: 1, Title: "First", Priority: domain.PriorityMedium, Order: 1},
		domain.Task{ID: 2, Title: "Second", Priority: domain.PriorityMedium, Order: 2},
	)
	m := newTestModel(tasks, testutil.NewMockListStore())

	m = runCmd(t, m, m.loadTasks())

	assert.False(t, m.loading)
	assert.Len(t, m.tasks, 2)
	assert.Equal(t, domain.AllListsLabel, m.listName)
}

func TestModel_ViewShowsTasks(t *testing.T) {
	tasks := testutil.NewMockTaskStore(
		domain.Task{ID: 1, Title: "Water the plants", Priority: domain.PriorityLow, Order: 1},
	)
	m := newTestModel(tasks, testutil.NewMockListStore())
	m = runCmd(t, m, m.loadTasks())

	view := m.View()
	assert.Contains(t, view, "Water the plants")
	assert.Contains(t, view, "All Tasks (1)")
}

func TestModel_ToggleReloadsView(t *testing.T) {
	tasks := testutil.NewMockTaskStore(
		domain.Task{ID: 1, Title: "Flip me", Priority: domain.PriorityMedium, Order: 1},
	)
	m := newTestModel(tasks, testutil.NewMockListStore())
	m = runCmd(t, m, m.loadTasks())

	next, cmd := m.updateNormal(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(*Model)
	require.NotNil(t, cmd)

	msg := cmd()
	toggled, ok := msg.(MsgTaskToggled)
	require.True(t, ok)
	require.NoError(t, toggled.Err)
	assert.True(t, toggled.Task.Completed)
	assert.True(t, tasks.Tasks[0].Completed)
}

func TestModel_CursorStaysInBounds(t *testing.T) {
	tasks := testutil.NewMockTaskStore(
		domain.Task{ID: 1, Title: "Only one", Priority: domain.PriorityMedium, Order: 1},
	)
	m := newTestModel(tasks, testutil.NewMockListStore())
	m = runCmd(t, m, m.loadTasks())

	next, _ := m.updateNormal(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	m = next.(*Model)
	assert.Equal(t, 0, m.cursor)

	next, _ = m.updateNormal(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	m = next.(*Model)
	assert.Equal(t, 0, m.cursor)
}

func TestModel_ListCycling(t *testing.T) {
	tasks := testutil.NewMockTaskStore(
		domain.Task{ID: 1, Title: "Work task", ListID: "1", Priority: domain.PriorityMedium},
	)
	lists := testutil.NewMockListStore(
		domain.List{ID: 1, Name: "Work", Order: 1},
		domain.List{ID: 2, Name: "Personal", Order: 2},
	)
	m := newTestModel(tasks, lists)
	m = runCmd(t, m, m.loadLists())

	assert.Equal(t, domain.AllLists, m.listScope())

	next, cmd := m.updateNormal(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(*Model)
	require.NotNil(t, cmd)
	assert.Equal(t, "1", m.listScope())

	m = runCmd(t, m, cmd)
	assert.Equal(t, "Work", m.listName)
	assert.Len(t, m.tasks, 1)

	// Cycling past the last list wraps back to every list.
	next, _ = m.updateNormal(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(*Model)
	next, _ = m.updateNormal(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(*Model)
	assert.Equal(t, domain.AllLists, m.listScope())
}

func TestModel_FilterCycling(t *testing.T) {
	assert.Equal(t, domain.StatusActive, nextStatus(domain.StatusAll))
	assert.Equal(t, domain.StatusCompleted, nextStatus(domain.StatusActive))
	assert.Equal(t, domain.StatusAll, nextStatus(domain.StatusCompleted))

	assert.Equal(t, domain.FilterPriorityHigh, nextPriority(domain.FilterPriorityAll))
	assert.Equal(t, domain.FilterPriorityAll, nextPriority(domain.FilterPriorityLow))

	assert.Equal(t, domain.DateRangeToday, nextDateRange(domain.DateRangeAll))
	assert.Equal(t, domain.DateRangeAll, nextDateRange(domain.DateRangeOverdue))
}

func TestModel_SearchFlow(t *testing.T) {
	tasks := testutil.NewMockTaskStore(
		domain.Task{ID: 1, Title: "Buy milk", Priority: domain.PriorityMedium},
		domain.Task{ID: 2, Title: "Call mom", Priority: domain.PriorityMedium},
	)
	m := newTestModel(tasks, testutil.NewMockListStore())

	next, _ := m.updateNormal(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	m = next.(*Model)
	assert.True(t, m.searching)

	m.search.SetValue("milk")
	next, cmd := m.updateSearch(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(*Model)
	assert.False(t, m.searching)

	m = runCmd(t, m, cmd)
	require.Len(t, m.tasks, 1)
	assert.Equal(t, "Buy milk", m.tasks[0].Title)
}

func TestModel_DegradedBackendShowsEmpty(t *testing.T) {
	tasks := testutil.NewMockTaskStore()
	tasks.Err = domain.ErrBackendUnavailable
	m := newTestModel(tasks, testutil.NewMockListStore())

	m = runCmd(t, m, m.loadTasks())

	// The query degrades to an empty view rather than an error.
	assert.NoError(t, m.err)
	assert.Empty(t, m.tasks)
	assert.Contains(t, m.View(), "No tasks match")
}
