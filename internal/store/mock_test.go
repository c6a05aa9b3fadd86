package store

import (
	"context"
	"slices"
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

// fakeTaskAdapter is an in-memory domain.TaskAdapter.
type fakeTaskAdapter struct {
	tasks    []domain.Task
	fetchErr error
	writeErr error
}

func (a *fakeTaskAdapter) FetchAll(context.Context) ([]domain.Task, error) {
	if a.fetchErr != nil {
		return nil, a.fetchErr
	}
	return slices.Clone(a.tasks), nil
}

func (a *fakeTaskAdapter) CreateRecord(_ context.Context, t domain.Task) (*domain.Task, error) {
	if a.writeErr != nil {
		return nil, a.writeErr
	}
	a.tasks = append(a.tasks, t)
	return &t, nil
}

func (a *fakeTaskAdapter) CreateRecords(ctx context.Context, ts []domain.Task) (*domain.TaskBatchResult, error) {
	result := &domain.TaskBatchResult{}
	for i, t := range ts {
		created, err := a.CreateRecord(ctx, t)
		if err != nil {
			result.Failed = append(result.Failed, domain.BatchError{Index: i, Message: err.Error()})
			continue
		}
		result.Created = append(result.Created, *created)
	}
	return result, nil
}

func (a *fakeTaskAdapter) UpdateRecord(_ context.Context, t domain.Task) (*domain.Task, error) {
	if a.writeErr != nil {
		return nil, a.writeErr
	}
	idx := slices.IndexFunc(a.tasks, func(item domain.Task) bool { return item.ID == t.ID })
	if idx < 0 {
		return nil, nil
	}
	a.tasks[idx] = t
	return &t, nil
}

func (a *fakeTaskAdapter) DeleteRecords(_ context.Context, ids []int) (bool, error) {
	if a.writeErr != nil {
		return false, a.writeErr
	}
	before := len(a.tasks)
	a.tasks = slices.DeleteFunc(a.tasks, func(item domain.Task) bool {
		return slices.Contains(ids, item.ID)
	})
	return len(a.tasks) != before, nil
}

// fakeListAdapter is an in-memory domain.ListAdapter.
type fakeListAdapter struct {
	lists    []domain.List
	fetchErr error
}

func (a *fakeListAdapter) FetchAll(context.Context) ([]domain.List, error) {
	if a.fetchErr != nil {
		return nil, a.fetchErr
	}
	return slices.Clone(a.lists), nil
}

func (a *fakeListAdapter) CreateRecord(_ context.Context, l domain.List) (*domain.List, error) {
	a.lists = append(a.lists, l)
	return &l, nil
}

func (a *fakeListAdapter) UpdateRecord(_ context.Context, l domain.List) (*domain.List, error) {
	idx := slices.IndexFunc(a.lists, func(item domain.List) bool { return item.ID == l.ID })
	if idx < 0 {
		return nil, nil
	}
	a.lists[idx] = l
	return &l, nil
}

func (a *fakeListAdapter) DeleteRecords(_ context.Context, ids []int) (bool, error) {
	before := len(a.lists)
	a.lists = slices.DeleteFunc(a.lists, func(item domain.List) bool {
		return slices.Contains(ids, item.ID)
	})
	return len(a.lists) != before, nil
}

func newTestTaskStore(adapter *fakeTaskAdapter) (*TaskStore, *mockClock) {
	clock := testClock()
	return NewTaskStore(adapter, clock, domain.NopLogger{}, Latency{}), clock
}
