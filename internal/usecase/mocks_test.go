package usecase

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/apper-canvas/boosttaskflow/internal/domain"
)

// mockClock is a fixed-time test double for domain.Clock.
type mockClock struct {
	now time.Time
}

func (c *mockClock) Now() time.Time { return c.now }

func testClock() *mockClock {
	return &mockClock{now: time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)}
}

// mockTaskStore is an in-memory test double for domain.TaskStore.
type mockTaskStore struct {
	tasks  []domain.Task
	err    error
	nextID int
	clock  *mockClock
}

func newMockTaskStore(clock *mockClock) *mockTaskStore {
	return &mockTaskStore{nextID: 1, clock: clock}
}

func (m *mockTaskStore) GetAll(context.Context) ([]domain.Task, error) {
	if m.err != nil {
		return nil, m.err
	}
	return slices.Clone(m.tasks), nil
}

func (m *mockTaskStore) GetByID(_ context.Context, id int) (*domain.Task, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, t := range m.tasks {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, domain.ErrTaskNotFound
}

func (m *mockTaskStore) GetByListID(_ context.Context, listID string) ([]domain.Task, error) {
	var out []domain.Task
	for _, t := range m.tasks {
		if t.ListID == listID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockTaskStore) Create(_ context.Context, in domain.TaskInput) (*domain.Task, error) {
	if m.err != nil {
		return nil, m.err
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, domain.ErrEmptyTitle
	}
	task := domain.Task{
		ID:          m.nextID,
		Title:       in.Title,
		Description: in.Description,
		Priority:    in.Priority,
		DueDate:     in.DueDate,
		ListID:      in.ListID,
		CreatedAt:   m.clock.Now(),
		Order:       len(m.tasks) + 1,
	}
	m.nextID++
	m.tasks = append(m.tasks, task)
	return &task, nil
}

func (m *mockTaskStore) CreateBatch(ctx context.Context, in []domain.TaskInput) (*domain.TaskBatchResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	result := &domain.TaskBatchResult{}
	for i, input := range in {
		created, err := m.Create(ctx, input)
		if err != nil {
			result.Failed = append(result.Failed, domain.BatchError{Index: i, Message: err.Error()})
			continue
		}
		result.Created = append(result.Created, *created)
	}
	return result, nil
}

func (m *mockTaskStore) Update(_ context.Context, id int, patch domain.TaskPatch) (*domain.Task, error) {
	idx := slices.IndexFunc(m.tasks, func(t domain.Task) bool { return t.ID == id })
	if idx < 0 {
		return nil, domain.ErrTaskNotFound
	}
	if patch.Title != nil {
		m.tasks[idx].Title = *patch.Title
	}
	if patch.Completed != nil {
		m.tasks[idx].Completed = *patch.Completed
	}
	return &m.tasks[idx], nil
}

func (m *mockTaskStore) Delete(_ context.Context, id int) error {
	before := len(m.tasks)
	m.tasks = slices.DeleteFunc(m.tasks, func(t domain.Task) bool { return t.ID == id })
	if len(m.tasks) == before {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (m *mockTaskStore) ToggleComplete(_ context.Context, id int) (*domain.Task, error) {
	idx := slices.IndexFunc(m.tasks, func(t domain.Task) bool { return t.ID == id })
	if idx < 0 {
		return nil, domain.ErrTaskNotFound
	}
	m.tasks[idx].Completed = !m.tasks[idx].Completed
	if m.tasks[idx].Completed {
		now := m.clock.Now()
		m.tasks[idx].CompletedAt = &now
	} else {
		m.tasks[idx].CompletedAt = nil
	}
	return &m.tasks[idx], nil
}

// mockListStore is an in-memory test double for domain.ListStore.
type mockListStore struct {
	lists      []domain.List
	err        error
	getAllCall int
}

func (m *mockListStore) GetAll(context.Context) ([]domain.List, error) {
	m.getAllCall++
	if m.err != nil {
		return nil, m.err
	}
	return slices.Clone(m.lists), nil
}

func (m *mockListStore) GetByID(_ context.Context, id int) (*domain.List, error) {
	for _, l := range m.lists {
		if l.ID == id {
			return &l, nil
		}
	}
	return nil, domain.ErrListNotFound
}

func (m *mockListStore) Create(_ context.Context, in domain.ListInput) (*domain.List, error) {
	if m.err != nil {
		return nil, m.err
	}
	list := domain.List{ID: len(m.lists) + 1, Name: in.Name, Color: in.Color, Icon: in.Icon, Order: len(m.lists) + 1}
	m.lists = append(m.lists, list)
	return &list, nil
}

func (m *mockListStore) Update(_ context.Context, id int, patch domain.ListPatch) (*domain.List, error) {
	idx := slices.IndexFunc(m.lists, func(l domain.List) bool { return l.ID == id })
	if idx < 0 {
		return nil, domain.ErrListNotFound
	}
	if patch.Name != nil {
		m.lists[idx].Name = *patch.Name
	}
	return &m.lists[idx], nil
}

func (m *mockListStore) Delete(_ context.Context, id int) error {
	before := len(m.lists)
	m.lists = slices.DeleteFunc(m.lists, func(l domain.List) bool { return l.ID == id })
	if len(m.lists) == before {
		return domain.ErrListNotFound
	}
	return nil
}
