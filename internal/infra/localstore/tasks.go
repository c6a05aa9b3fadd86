package localstore

import (
	"context"
	"slices"
	"sync"

	"github.com/apper-canvas/boosttaskflow/internal/domain"
)

// Ensure Tasks implements domain.TaskAdapter.
var _ domain.TaskAdapter = (*Tasks)(nil)

// Tasks is the durable local adapter for the task collection.
type Tasks struct {
	slot  slot[domain.Task]
	items []domain.Task
	mu    sync.Mutex
}

// NewTasks creates a Tasks adapter backed by the given snapshot path.
// The collection is loaded once here; when no snapshot exists it is
// seeded from the bundled default dataset.
func NewTasks(path string) (*Tasks, error) {
	a := &Tasks{slot: slot[domain.Task]{path: path, seed: seedTasks}}
	items, err := a.slot.load()
	if err != nil {
		return nil, err
	}
	a.items = items
	return a, nil
}

// FetchAll returns a copy of the working set.
func (a *Tasks) FetchAll(_ context.Context) ([]domain.Task, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return slices.Clone(a.items), nil
}

// CreateRecord appends the record and persists the snapshot.
func (a *Tasks) CreateRecord(_ context.Context, t domain.Task) (*domain.Task, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.items = append(a.items, t)
	if err := a.slot.write(a.items); err != nil {
		a.items = a.items[:len(a.items)-1]
		return nil, err
	}
	return &t, nil
}

// CreateRecords appends several records. The local store commits them
// one by one, so a snapshot failure leaves earlier records persisted.
func (a *Tasks) CreateRecords(ctx context.Context, ts []domain.Task) (*domain.TaskBatchResult, error) {
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

// UpdateRecord replaces the record with the matching ID, if any.
func (a *Tasks) UpdateRecord(_ context.Context, t domain.Task) (*domain.Task, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	idx := slices.IndexFunc(a.items, func(item domain.Task) bool { return item.ID == t.ID })
	if idx < 0 {
		return nil, nil
	}
	prev := a.items[idx]
	a.items[idx] = t
	if err := a.slot.write(a.items); err != nil {
		a.items[idx] = prev
		return nil, err
	}
	return &t, nil
}

// DeleteRecords removes the records with the given IDs.
func (a *Tasks) DeleteRecords(_ context.Context, ids []int) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	before := len(a.items)
	kept := slices.DeleteFunc(slices.Clone(a.items), func(item domain.Task) bool {
		return slices.Contains(ids, item.ID)
	})
	if len(kept) == before {
		return false, nil
	}
	if err := a.slot.write(kept); err != nil {
		return false, err
	}
	a.items = kept
	return true, nil
}
