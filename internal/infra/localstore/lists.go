package localstore

import (
	"context"
	"slices"
	"sync"

	"github.com/apper-canvas/boosttaskflow/internal/domain"
)

// Ensure Lists implements domain.ListAdapter.
var _ domain.ListAdapter = (*Lists)(nil)

// Lists is the durable local adapter for the list collection.
type Lists struct {
	slot  slot[domain.List]
	items []domain.List
	mu    sync.Mutex
}

// NewLists creates a Lists adapter backed by the given snapshot path,
// seeding the collection from the bundled defaults when absent.
func NewLists(path string) (*Lists, error) {
	a := &Lists{slot: slot[domain.List]{path: path, seed: seedLists}}
	items, err := a.slot.load()
	if err != nil {
		return nil, err
	}
	a.items = items
	return a, nil
}

// FetchAll returns a copy of the working set.
func (a *Lists) FetchAll(_ context.Context) ([]domain.List, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return slices.Clone(a.items), nil
}

// CreateRecord appends the record and persists the snapshot.
func (a *Lists) CreateRecord(_ context.Context, l domain.List) (*domain.List, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.items = append(a.items, l)
	if err := a.slot.write(a.items); err != nil {
		a.items = a.items[:len(a.items)-1]
		return nil, err
	}
	return &l, nil
}

// UpdateRecord replaces the record with the matching ID, if any.
func (a *Lists) UpdateRecord(_ context.Context, l domain.List) (*domain.List, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	idx := slices.IndexFunc(a.items, func(item domain.List) bool { return item.ID == l.ID })
	if idx < 0 {
		return nil, nil
	}
	prev := a.items[idx]
	a.items[idx] = l
	if err := a.slot.write(a.items); err != nil {
		a.items[idx] = prev
		return nil, err
	}
	return &l, nil
}

// DeleteRecords removes the records with the given IDs.
func (a *Lists) DeleteRecords(_ context.Context, ids []int) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	before := len(a.items)
	kept := slices.DeleteFunc(slices.Clone(a.items), func(item domain.List) bool {
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
