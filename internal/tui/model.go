// Package tui implements the interactive task browser.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/apper-canvas/boosttaskflow/internal/app"
	"github.com/apper-canvas/boosttaskflow/internal/domain"
	"github.com/apper-canvas/boosttaskflow/internal/usecase"
)

// Model is the task browser TUI model.
// Fields are ordered to minimize memory padding.
type Model struct {
	// Dependencies
	container *app.Container

	// State
	tasks    []domain.Task
	lists    []domain.List
	listName string
	filter   domain.Filter
	err      error

	// Components
	keys   KeyMap
	styles Styles
	search textinput.Model

	// Numeric state
	cursor  int
	listIdx int // -1 selects every list
	width   int
	height  int

	// Boolean state
	searching bool
	loading   bool
}

// New creates a new task browser model.
func New(c *app.Container) *Model {
	si := textinput.New()
	si.Placeholder = "Search tasks..."
	si.CharLimit = 200

	return &Model{
		container: c,
		filter:    domain.DefaultFilter(),
		listIdx:   -1,
		keys:      DefaultKeyMap(),
		styles:    DefaultStyles(),
		search:    si,
		loading:   true,
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadTasks(), m.loadLists())
}

// listScope returns the list scope for the current selection.
func (m *Model) listScope() string {
	if m.listIdx < 0 || m.listIdx >= len(m.lists) {
		return domain.AllLists
	}
	return strconv.Itoa(m.lists[m.listIdx].ID)
}

// loadTasks fetches the filtered task view.
func (m *Model) loadTasks() tea.Cmd {
	scope := m.listScope()
	search := m.search.Value()
	filter := m.filter
	uc := m.container.QueryTasksUseCase()
	return func() tea.Msg {
		out, err := uc.Execute(context.Background(), usecase.QueryTasksInput{
			ListID: scope,
			Search: search,
			Filter: filter,
		})
		if err != nil {
			return MsgTasksLoaded{Err: err}
		}
		return MsgTasksLoaded{Tasks: out.Tasks, ListName: out.ListName}
	}
}

// loadLists fetches the list collection with derived counts.
func (m *Model) loadLists() tea.Cmd {
	uc := m.container.ListListsUseCase()
	return func() tea.Msg {
		out, err := uc.Execute(context.Background())
		if err != nil {
			return MsgListsLoaded{Err: err}
		}
		return MsgListsLoaded{Lists: out.Lists}
	}
}

// toggleTask flips the completion state of the task under the cursor.
func (m *Model) toggleTask(id int) tea.Cmd {
	uc := m.container.ToggleTaskUseCase()
	return func() tea.Msg {
		out, err := uc.Execute(context.Background(), usecase.ToggleTaskInput{TaskID: id})
		if err != nil {
			return MsgTaskToggled{Err: err}
		}
		return MsgTaskToggled{Task: out.Task}
	}
}

// deleteTask removes the task under the cursor.
func (m *Model) deleteTask(id int) tea.Cmd {
	uc := m.container.DeleteTaskUseCase()
	return func() tea.Msg {
		if _, err := uc.Execute(context.Background(), usecase.DeleteTaskInput{TaskID: id}); err != nil {
			return MsgTaskDeleted{Err: err}
		}
		return MsgTaskDeleted{ID: id}
	}
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateNormal(msg)

	case MsgTasksLoaded:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.tasks = msg.Tasks
		m.listName = msg.ListName
		if m.cursor >= len(m.tasks) {
			m.cursor = max(0, len(m.tasks)-1)
		}
		return m, nil

	case MsgListsLoaded:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.lists = msg.Lists
		if m.listIdx >= len(m.lists) {
			m.listIdx = -1
		}
		return m, nil

	case MsgTaskToggled, MsgTaskDeleted:
		// Both mutations invalidate the view and the counts.
		return m, tea.Batch(m.loadTasks(), m.loadLists())
	}

	return m, nil
}

// updateSearch handles keys while the search input is focused.
func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		return m, m.loadTasks()
	case tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		return m, m.loadTasks()
	default:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
}

// updateNormal handles keys in browse mode.
func (m *Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.NextList):
		m.listIdx++
		if m.listIdx >= len(m.lists) {
			m.listIdx = -1
		}
		m.cursor = 0
		return m, m.loadTasks()

	case key.Matches(msg, m.keys.PrevList):
		m.listIdx--
		if m.listIdx < -1 {
			m.listIdx = len(m.lists) - 1
		}
		m.cursor = 0
		return m, m.loadTasks()

	case key.Matches(msg, m.keys.Status):
		m.filter.Status = nextStatus(m.filter.Status)
		return m, m.loadTasks()

	case key.Matches(msg, m.keys.Priority):
		m.filter.Priority = nextPriority(m.filter.Priority)
		return m, m.loadTasks()

	case key.Matches(msg, m.keys.DueRange):
		m.filter.DateRange = nextDateRange(m.filter.DateRange)
		return m, m.loadTasks()

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		return m, tea.Batch(m.loadTasks(), m.loadLists())

	case key.Matches(msg, m.keys.Toggle):
		if t := m.selectedTask(); t != nil {
			return m, m.toggleTask(t.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if t := m.selectedTask(); t != nil {
			return m, m.deleteTask(t.ID)
		}
		return m, nil
	}

	return m, nil
}

// selectedTask returns the task under the cursor, or nil.
func (m *Model) selectedTask() *domain.Task {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return nil
	}
	return &m.tasks[m.cursor]
}

// View renders the task browser.
func (m *Model) View() string {
	var b strings.Builder

	title := m.listName
	if title == "" {
		title = domain.AllListsLabel
	}
	b.WriteString(m.styles.Title.Render(fmt.Sprintf("TaskFlow: %s (%d)", title, len(m.tasks))))
	b.WriteString("\n")
	b.WriteString(m.styles.FilterBar.Render(m.filterLine()))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(m.styles.Error.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	case m.loading:
		b.WriteString(m.styles.Empty.Render("Loading..."))
		b.WriteString("\n")
	case len(m.tasks) == 0:
		b.WriteString(m.styles.Empty.Render("No tasks match the current filters."))
		b.WriteString("\n")
	default:
		now := m.container.Clock.Now()
		for i, t := range m.tasks {
			b.WriteString(m.renderTask(t, i == m.cursor, now))
			b.WriteString("\n")
		}
	}

	if m.searching {
		b.WriteString("\n")
		b.WriteString(m.search.View())
	}

	b.WriteString(m.styles.Help.Render(helpLine))
	return b.String()
}

const helpLine = "enter toggle · tab list · s status · p priority · d due · / search · x delete · r refresh · q quit"

// filterLine summarizes the active filters.
func (m *Model) filterLine() string {
	parts := []string{
		"status:" + string(m.filter.Status),
		"priority:" + string(m.filter.Priority),
		"due:" + string(m.filter.DateRange),
	}
	if s := m.search.Value(); s != "" && !m.searching {
		parts = append(parts, "search:"+s)
	}
	return strings.Join(parts, "  ")
}

// renderTask renders one task row.
func (m *Model) renderTask(t domain.Task, selected bool, now time.Time) string {
	check := "[ ]"
	if t.Completed {
		check = "[x]"
	}

	pri := string(t.Priority)
	switch t.Priority {
	case domain.PriorityHigh:
		pri = m.styles.PriorityHigh.Render(pri)
	case domain.PriorityMedium:
		pri = m.styles.PriorityMed.Render(pri)
	case domain.PriorityLow:
		pri = m.styles.PriorityLow.Render(pri)
	}

	title := t.Title
	if t.Completed {
		title = m.styles.Done.Render(title)
	}

	due := ""
	if t.DueDate != nil {
		due = t.DueDate.Local().Format("2006-01-02")
		if t.DueDate.Before(domain.StartOfDay(now)) && !t.Completed {
			due = m.styles.Overdue.Render(due + " overdue")
		}
	}

	row := fmt.Sprintf("%s %-6s %s  %s", check, pri, title, due)
	if selected {
		return m.styles.Selected.Render(row)
	}
	return m.styles.Normal.Render(row)
}

// nextStatus cycles the status filter.
func nextStatus(s domain.StatusFilter) domain.StatusFilter {
	switch s {
	case domain.StatusAll:
		return domain.StatusActive
	case domain.StatusActive:
		return domain.StatusCompleted
	default:
		return domain.StatusAll
	}
}

// nextPriority cycles the priority filter.
func nextPriority(p domain.PriorityFilter) domain.PriorityFilter {
	switch p {
	case domain.FilterPriorityAll:
		return domain.FilterPriorityHigh
	case domain.FilterPriorityHigh:
		return domain.FilterPriorityMedium
	case domain.FilterPriorityMedium:
		return domain.FilterPriorityLow
	default:
		return domain.FilterPriorityAll
	}
}

// nextDateRange cycles the due-date filter.
func nextDateRange(r domain.DateRangeFilter) domain.DateRangeFilter {
	switch r {
	case domain.DateRangeAll:
		return domain.DateRangeToday
	case domain.DateRangeToday:
		return domain.DateRangeWeek
	case domain.DateRangeWeek:
		return domain.DateRangeOverdue
	default:
		return domain.DateRangeAll
	}
}
