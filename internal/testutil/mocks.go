// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"strconv"
	"time"

	"github.com/apper-canvas/boosttaskflow/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockTaskStore is an in-memory test double for domain.TaskStore.
// It applies ID and order assignment but skips latency simulation.
// Fields are ordered to minimize memory padding.
type MockTaskStore struct {
	Clock  domain.Clock
	Err    error
	Tasks  []domain.Task
	NextID int
}

// NewMockTaskStore creates a MockTaskStore seeded with the given tasks.
func NewMockTaskStore(tasks ...domain.Task) *MockTaskStore {
	next := 1
	for _, t := range tasks {
		if t.ID >= next {
			next = t.ID + 1
		}
	}
	return &MockTaskStore{
		Tasks:  tasks,
		NextID: next,
		Clock:  &MockClock{NowTime: time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)},
	}
}

var _ domain.TaskStore = (*MockTaskStore)(nil)

// GetAll returns every task.
func (m *MockTaskStore) GetAll(_ context.Context) ([]domain.Task, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]domain.Task, len(m.Tasks))
	copy(out, m.Tasks)
	return out, nil
}

// GetByID retrieves a task by ID.
func (m *MockTaskStore) GetByID(_ context.Context, id int) (*domain.Task, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, t := range m.Tasks {
		if t.ID == id {
			c := t
			return &c, nil
		}
	}
	return nil, domain.ErrTaskNotFound
}

// GetByListID returns tasks belonging to the given list.
func (m *MockTaskStore) GetByListID(_ context.Context, listID string) ([]domain.Task, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []domain.Task
	for _, t := range m.Tasks {
		if t.ListID == listID {
			out = append(out, t)
		}
	}
	return out, nil
}

// Create assigns an ID and appends the task.
func (m *MockTaskStore) Create(_ context.Context, in domain.TaskInput) (*domain.Task, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if in.Title == "" {
		return nil, domain.ErrEmptyTitle
	}
	t := domain.Task{
		ID:          m.NextID,
		Title:       in.Title,
		Description: in.Description,
		Priority:    in.Priority,
		DueDate:     in.DueDate,
		ListID:      in.ListID,
		Completed:   in.Completed,
		CreatedAt:   m.Clock.Now(),
		Order:       len(m.Tasks) + 1,
	}
	if t.Priority == "" {
		t.Priority = domain.PriorityMedium
	}
	m.NextID++
	m.Tasks = append(m.Tasks, t)
	return &t, nil
}

// Update applies the patch to the matching task.
func (m *MockTaskStore) Update(_ context.Context, id int, patch domain.TaskPatch) (*domain.Task, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Tasks {
		if m.Tasks[i].ID != id {
			continue
		}
		t := &m.Tasks[i]
		if patch.Title != nil {
			t.Title = *patch.Title
		}
		if patch.Description != nil {
			t.Description = *patch.Description
		}
		if patch.Priority != nil {
			t.Priority = *patch.Priority
		}
		if patch.DueDate != nil {
			t.DueDate = patch.DueDate
		}
		if patch.ClearDueDate {
			t.DueDate = nil
		}
		if patch.ListID != nil {
			t.ListID = *patch.ListID
		}
		if patch.Order != nil {
			t.Order = *patch.Order
		}
		if patch.Completed != nil {
			t.Completed = *patch.Completed
			if t.Completed {
				now := m.Clock.Now()
				t.CompletedAt = &now
			} else {
				t.CompletedAt = nil
			}
		}
		c := *t
		return &c, nil
	}
	return nil, domain.ErrTaskNotFound
}

// Delete removes the matching task.
func (m *MockTaskStore) Delete(_ context.Context, id int) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Tasks {
		if m.Tasks[i].ID == id {
			m.Tasks = append(m.Tasks[:i], m.Tasks[i+1:]...)
			return nil
		}
	}
	return domain.ErrTaskNotFound
}

// ToggleComplete flips the completion state.
func (m *MockTaskStore) ToggleComplete(_ context.Context, id int) (*domain.Task, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Tasks {
		if m.Tasks[i].ID != id {
			continue
		}
		t := &m.Tasks[i]
		t.Completed = !t.Completed
		if t.Completed {
			now := m.Clock.Now()
			t.CompletedAt = &now
		} else {
			t.CompletedAt = nil
		}
		c := *t
		return &c, nil
	}
	return nil, domain.ErrTaskNotFound
}

// CreateBatch creates every input, collecting per-record failures.
func (m *MockTaskStore) CreateBatch(ctx context.Context, in []domain.TaskInput) (*domain.TaskBatchResult, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	res := &domain.TaskBatchResult{}
	for i, ti := range in {
		t, err := m.Create(ctx, ti)
		if err != nil {
			res.Failed = append(res.Failed, domain.BatchError{Index: i, Message: err.Error()})
			continue
		}
		res.Created = append(res.Created, *t)
	}
	return res, nil
}

// MockListStore is an in-memory test double for domain.ListStore.
// GetAll derives task counts from the paired task store when one is set.
type MockListStore struct {
	TaskStore *MockTaskStore
	Err       error
	Lists     []domain.List
	NextID    int
}

// NewMockListStore creates a MockListStore seeded with the given lists.
func NewMockListStore(lists ...domain.List) *MockListStore {
	next := 1
	for _, l := range lists {
		if l.ID >= next {
			next = l.ID + 1
		}
	}
	return &MockListStore{Lists: lists, NextID: next}
}

var _ domain.ListStore = (*MockListStore)(nil)

// GetAll returns every list with recomputed task counts.
func (m *MockListStore) GetAll(_ context.Context) ([]domain.List, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]domain.List, len(m.Lists))
	copy(out, m.Lists)
	if m.TaskStore != nil {
		for i := range out {
			out[i].TaskCount = m.countIncomplete(out[i].ID)
		}
	}
	return out, nil
}

// GetByID retrieves a list by ID.
func (m *MockListStore) GetByID(_ context.Context, id int) (*domain.List, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, l := range m.Lists {
		if l.ID == id {
			c := l
			if m.TaskStore != nil {
				c.TaskCount = m.countIncomplete(id)
			}
			return &c, nil
		}
	}
	return nil, domain.ErrListNotFound
}

// Create assigns an ID and appends the list.
func (m *MockListStore) Create(_ context.Context, in domain.ListInput) (*domain.List, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if in.Name == "" {
		return nil, domain.ErrEmptyName
	}
	l := domain.List{
		ID:    m.NextID,
		Name:  in.Name,
		Color: in.Color,
		Icon:  in.Icon,
		Order: len(m.Lists) + 1,
	}
	m.NextID++
	m.Lists = append(m.Lists, l)
	return &l, nil
}

// Update applies the patch to the matching list.
func (m *MockListStore) Update(_ context.Context, id int, patch domain.ListPatch) (*domain.List, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Lists {
		if m.Lists[i].ID != id {
			continue
		}
		l := &m.Lists[i]
		if patch.Name != nil {
			l.Name = *patch.Name
		}
		if patch.Color != nil {
			l.Color = *patch.Color
		}
		if patch.Icon != nil {
			l.Icon = *patch.Icon
		}
		if patch.Order != nil {
			l.Order = *patch.Order
		}
		c := *l
		return &c, nil
	}
	return nil, domain.ErrListNotFound
}

// Delete removes the matching list without touching its tasks.
func (m *MockListStore) Delete(_ context.Context, id int) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.Lists {
		if m.Lists[i].ID == id {
			m.Lists = append(m.Lists[:i], m.Lists[i+1:]...)
			return nil
		}
	}
	return domain.ErrListNotFound
}

func (m *MockListStore) countIncomplete(listID int) int {
	n := 0
	for _, t := range m.TaskStore.Tasks {
		if t.ListID == strconv.Itoa(listID) && !t.Completed {
			n++
		}
	}
	return n
}
