package store

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/apper-canvas/boosttaskflow/internal/domain"
)

// Ensure ListStore implements domain.ListStore.
var _ domain.ListStore = (*ListStore)(nil)

// ListStore owns list records. TaskCount is derived: every read
// recomputes it by cross-querying the task store, so the persisted
// value is never treated as authoritative.
type ListStore struct {
	adapter domain.ListAdapter
	tasks   domain.TaskStore
	clock   domain.Clock
	logger  domain.Logger
	latency Latency
	mu      sync.Mutex
}

// NewListStore creates a list store over the given adapter. The task
// store reference is used only to recompute derived counts.
func NewListStore(adapter domain.ListAdapter, tasks domain.TaskStore, clock domain.Clock, logger domain.Logger, latency Latency) *ListStore {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &ListStore{adapter: adapter, tasks: tasks, clock: clock, logger: logger, latency: latency}
}

// GetAll returns every list ordered by ascending Order, each with
// TaskCount recomputed from the task collection at this moment.
func (s *ListStore) GetAll(ctx context.Context) ([]domain.List, error) {
	wait(s.latency.GetAll)
	lists, err := s.adapter.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch lists: %w", err)
	}

	tasks, err := s.tasks.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch tasks for counts: %w", err)
	}

	for i := range lists {
		lists[i].TaskCount = countIncomplete(tasks, lists[i].ID)
	}
	slices.SortStableFunc(lists, func(a, b domain.List) int { return a.Order - b.Order })
	return lists, nil
}

// GetByID retrieves a list by ID with its count recomputed.
func (s *ListStore) GetByID(ctx context.Context, id int) (*domain.List, error) {
	wait(s.latency.GetByID)
	lists, err := s.adapter.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch lists: %w", err)
	}
	for _, l := range lists {
		if l.ID != id {
			continue
		}
		tasks, err := s.tasks.GetAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetch tasks for counts: %w", err)
		}
		l.TaskCount = countIncomplete(tasks, l.ID)
		return &l, nil
	}
	return nil, domain.ErrListNotFound
}

// Create assigns ID (max existing + 1) and Order (count + 1), persists
// the list and returns it. New lists start with a zero count.
func (s *ListStore) Create(ctx context.Context, in domain.ListInput) (*domain.List, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrEmptyName
	}

	wait(s.latency.Create)
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.adapter.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch lists: %w", err)
	}

	list := domain.List{
		ID:        nextListID(existing),
		Name:      in.Name,
		Color:     in.Color,
		Icon:      in.Icon,
		Order:     len(existing) + 1,
		TaskCount: 0,
	}

	created, err := s.adapter.CreateRecord(ctx, list)
	if err != nil {
		return nil, fmt.Errorf("create list: %w", err)
	}
	s.logger.Info("list created", "id", created.ID, "name", created.Name)
	return created, nil
}

// Update applies only the fields present in the patch.
func (s *ListStore) Update(ctx context.Context, id int, patch domain.ListPatch) (*domain.List, error) {
	if patch.IsZero() {
		return nil, domain.ErrNoFieldsToUpdate
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, domain.ErrEmptyName
	}

	wait(s.latency.Update)
	s.mu.Lock()
	defer s.mu.Unlock()

	lists, err := s.adapter.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch lists: %w", err)
	}
	idx := slices.IndexFunc(lists, func(l domain.List) bool { return l.ID == id })
	if idx < 0 {
		return nil, domain.ErrListNotFound
	}

	merged := lists[idx]
	if patch.Name != nil {
		merged.Name = *patch.Name
	}
	if patch.Color != nil {
		merged.Color = *patch.Color
	}
	if patch.Icon != nil {
		merged.Icon = *patch.Icon
	}
	if patch.Order != nil {
		merged.Order = *patch.Order
	}

	updated, err := s.adapter.UpdateRecord(ctx, merged)
	if err != nil {
		return nil, fmt.Errorf("update list: %w", err)
	}
	if updated == nil {
		return nil, domain.ErrListNotFound
	}
	return updated, nil
}

// Delete removes a list. Its tasks are left untouched: they keep their
// dangling ListID and stay retrievable by GetByListID.
func (s *ListStore) Delete(ctx context.Context, id int) error {
	wait(s.latency.Delete)
	s.mu.Lock()
	defer s.mu.Unlock()

	ok, err := s.adapter.DeleteRecords(ctx, []int{id})
	if err != nil {
		return fmt.Errorf("delete list: %w", err)
	}
	if !ok {
		return domain.ErrListNotFound
	}
	s.logger.Info("list deleted", "id", id)
	return nil
}

// countIncomplete counts the open tasks referencing the given list.
// ListID is a string field, so the comparison goes through strconv.
func countIncomplete(tasks []domain.Task, listID int) int {
	key := strconv.Itoa(listID)
	n := 0
	for _, t := range tasks {
		if t.ListID == key && !t.Completed {
			n++
		}
	}
	return n
}

func nextListID(lists []domain.List) int {
	max := 0
	for _, l := range lists {
		if l.ID > max {
			max = l.ID
		}
	}
	return max + 1
}
