// Package usecase contains application use cases composing the stores
// and the filter engine.
package usecase

import (
	"context"
	"errors"
	"strconv"

	"github.com/apper-canvas/boosttaskflow/internal/domain"
)

// QueryTasksInput contains the parameters for querying tasks.
type QueryTasksInput struct {
	ListID string        // List scope; domain.AllLists selects every list
	Search string        // Case-folded substring match over title and description
	Filter domain.Filter // Status, priority and date-range criteria
}

// QueryTasksOutput contains the ordered, filtered view.
type QueryTasksOutput struct {
	ListName string
	Tasks    []domain.Task
}

// QueryTasks answers "give me the tasks for list X matching criteria Y,
// correctly ordered". Results are never cached; every call re-reads the
// stores.
type QueryTasks struct {
	tasks  domain.TaskStore
	lists  domain.ListStore
	clock  domain.Clock
	logger domain.Logger
}

// NewQueryTasks creates a new QueryTasks use case.
func NewQueryTasks(tasks domain.TaskStore, lists domain.ListStore, clock domain.Clock, logger domain.Logger) *QueryTasks {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &QueryTasks{tasks: tasks, lists: lists, clock: clock, logger: logger}
}

// Execute fetches, filters and orders tasks. A backend failure degrades
// to an empty result instead of propagating.
func (uc *QueryTasks) Execute(ctx context.Context, in QueryTasksInput) (*QueryTasksOutput, error) {
	out := &QueryTasksOutput{ListName: domain.AllListsLabel}

	if in.ListID != "" && in.ListID != domain.AllLists {
		if name, ok := uc.resolveListName(ctx, in.ListID); ok {
			out.ListName = name
		}
	}

	tasks, err := uc.tasks.GetAll(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrBackendUnavailable) {
			uc.logger.Warn("task query degraded to empty result", "error", err)
			out.Tasks = []domain.Task{}
			return out, nil
		}
		return nil, err
	}

	out.Tasks = domain.Apply(tasks, in.ListID, in.Filter, in.Search, uc.clock.Now())
	return out, nil
}

// resolveListName maps a list scope to its display name.
func (uc *QueryTasks) resolveListName(ctx context.Context, listID string) (string, bool) {
	lists, err := uc.lists.GetAll(ctx)
	if err != nil {
		uc.logger.Warn("resolve list name failed", "listId", listID, "error", err)
		return "", false
	}
	for _, l := range lists {
		if strconv.Itoa(l.ID) == listID {
			return l.Name, true
		}
	}
	return "", false
}
