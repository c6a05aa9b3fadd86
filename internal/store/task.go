package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/apper-canvas/boosttaskflow/internal/domain"
)

// Ensure TaskStore implements domain.TaskStore.
var _ domain.TaskStore = (*TaskStore)(nil)

// TaskStore owns task records. It is backend-agnostic: the adapter is
// chosen at construction and never branched on afterwards.
type TaskStore struct {
	adapter domain.TaskAdapter
	clock   domain.Clock
	logger  domain.Logger
	latency Latency
	mu      sync.Mutex // Serializes read-modify-write sequences
}

// NewTaskStore creates a task store over the given adapter.
func NewTaskStore(adapter domain.TaskAdapter, clock domain.Clock, logger domain.Logger, latency Latency) *TaskStore {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &TaskStore{adapter: adapter, clock: clock, logger: logger, latency: latency}
}

// GetAll returns every task in the collection.
func (s *TaskStore) GetAll(ctx context.Context) ([]domain.Task, error) {
	wait(s.latency.GetAll)
	tasks, err := s.adapter.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch tasks: %w", err)
	}
	return tasks, nil
}

// GetByID retrieves a task by ID.
func (s *TaskStore) GetByID(ctx context.Context, id int) (*domain.Task, error) {
	wait(s.latency.GetByID)
	tasks, err := s.adapter.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch tasks: %w", err)
	}
	for _, t := range tasks {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, domain.ErrTaskNotFound
}

// GetByListID returns the tasks referencing the given list.
func (s *TaskStore) GetByListID(ctx context.Context, listID string) ([]domain.Task, error) {
	wait(s.latency.GetByListID)
	tasks, err := s.adapter.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch tasks: %w", err)
	}
	matched := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ListID == listID {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

// Create validates the input, assigns ID (max existing + 1), CreatedAt
// and Order (count + 1), persists the record and returns it.
func (s *TaskStore) Create(ctx context.Context, in domain.TaskInput) (*domain.Task, error) {
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	wait(s.latency.Create)
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.adapter.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch tasks: %w", err)
	}

	now := s.clock.Now()
	task := domain.Task{
		ID:          nextID(existing),
		Title:       in.Title,
		Description: in.Description,
		Priority:    defaultPriority(in.Priority),
		DueDate:     in.DueDate,
		Completed:   in.Completed,
		ListID:      in.ListID,
		CreatedAt:   now,
		Order:       len(existing) + 1,
	}
	if task.Completed {
		task.CompletedAt = &now
	}

	created, err := s.adapter.CreateRecord(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	s.logger.Info("task created", "id", created.ID, "title", created.Title)
	return created, nil
}

// CreateBatch creates several tasks, collecting per-record validation
// and storage failures while committing the records that succeed.
func (s *TaskStore) CreateBatch(ctx context.Context, in []domain.TaskInput) (*domain.TaskBatchResult, error) {
	result := &domain.TaskBatchResult{}

	// Validation failures are decided before any persistence attempt.
	valid := make([]domain.TaskInput, 0, len(in))
	origIndex := make([]int, 0, len(in))
	for i, input := range in {
		if err := s.validateInput(input); err != nil {
			result.Failed = append(result.Failed, domain.BatchError{Index: i, Message: err.Error()})
			continue
		}
		valid = append(valid, input)
		origIndex = append(origIndex, i)
	}
	if len(valid) == 0 {
		return result, nil
	}

	wait(s.latency.Create)
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.adapter.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch tasks: %w", err)
	}

	now := s.clock.Now()
	id := nextID(existing)
	order := len(existing) + 1
	records := make([]domain.Task, 0, len(valid))
	for _, input := range valid {
		task := domain.Task{
			ID:          id,
			Title:       input.Title,
			Description: input.Description,
			Priority:    defaultPriority(input.Priority),
			DueDate:     input.DueDate,
			Completed:   input.Completed,
			ListID:      input.ListID,
			CreatedAt:   now,
			Order:       order,
		}
		if task.Completed {
			task.CompletedAt = &now
		}
		records = append(records, task)
		id++
		order++
	}

	batch, err := s.adapter.CreateRecords(ctx, records)
	if err != nil {
		return nil, fmt.Errorf("create tasks: %w", err)
	}
	result.Created = batch.Created
	for _, failed := range batch.Failed {
		// Map adapter indices back onto the submitted batch.
		failed.Index = origIndex[failed.Index]
		result.Failed = append(result.Failed, failed)
	}
	s.logger.Info("task batch created", "created", len(result.Created), "failed", len(result.Failed))
	return result, nil
}

// Update applies only the fields present in the patch. Omitted fields
// are never filled with defaults.
func (s *TaskStore) Update(ctx context.Context, id int, patch domain.TaskPatch) (*domain.Task, error) {
	if patch.IsZero() {
		return nil, domain.ErrNoFieldsToUpdate
	}
	if err := s.validatePatch(patch); err != nil {
		return nil, err
	}

	wait(s.latency.Update)
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := applyPatch(*current, patch, s.clock)
	updated, err := s.adapter.UpdateRecord(ctx, merged)
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	if updated == nil {
		return nil, domain.ErrTaskNotFound
	}
	return updated, nil
}

// Delete removes a task. Hard delete, no tombstone.
func (s *TaskStore) Delete(ctx context.Context, id int) error {
	wait(s.latency.Delete)
	s.mu.Lock()
	defer s.mu.Unlock()

	ok, err := s.adapter.DeleteRecords(ctx, []int{id})
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if !ok {
		return domain.ErrTaskNotFound
	}
	s.logger.Info("task deleted", "id", id)
	return nil
}

// ToggleComplete flips Completed and sets or clears CompletedAt as one
// logical update. No other writer can observe the intermediate state:
// the read and the write happen under the store mutex.
func (s *TaskStore) ToggleComplete(ctx context.Context, id int) (*domain.Task, error) {
	wait(s.latency.Toggle)
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	toggled := *current
	toggled.Completed = !toggled.Completed
	if toggled.Completed {
		now := s.clock.Now()
		toggled.CompletedAt = &now
	} else {
		toggled.CompletedAt = nil
	}

	updated, err := s.adapter.UpdateRecord(ctx, toggled)
	if err != nil {
		return nil, fmt.Errorf("toggle task: %w", err)
	}
	if updated == nil {
		return nil, domain.ErrTaskNotFound
	}
	return updated, nil
}

// find looks up a task without simulated latency; callers have already
// paid the wait for their own operation.
func (s *TaskStore) find(ctx context.Context, id int) (*domain.Task, error) {
	tasks, err := s.adapter.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch tasks: %w", err)
	}
	for _, t := range tasks {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, domain.ErrTaskNotFound
}

func (s *TaskStore) validateInput(in domain.TaskInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return domain.ErrEmptyTitle
	}
	if in.Priority != "" && !in.Priority.IsValid() {
		return domain.ErrInvalidPriority
	}
	return s.validateDueDate(in.DueDate)
}

func (s *TaskStore) validatePatch(patch domain.TaskPatch) error {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return domain.ErrEmptyTitle
	}
	if patch.Priority != nil && !patch.Priority.IsValid() {
		return domain.ErrInvalidPriority
	}
	if patch.DueDate != nil {
		return s.validateDueDate(patch.DueDate)
	}
	return nil
}

// validateDueDate rejects due dates before local midnight of today.
func (s *TaskStore) validateDueDate(due *time.Time) error {
	if due == nil {
		return nil
	}
	today := domain.StartOfDay(s.clock.Now())
	if due.Before(today) {
		return domain.ErrDueDateInPast
	}
	return nil
}

// applyPatch merges the provided fields over the current record,
// keeping the completed/completedAt invariant intact.
func applyPatch(current domain.Task, patch domain.TaskPatch, clock domain.Clock) domain.Task {
	merged := current
	if patch.Title != nil {
		merged.Title = *patch.Title
	}
	if patch.Description != nil {
		merged.Description = *patch.Description
	}
	if patch.Priority != nil {
		merged.Priority = *patch.Priority
	}
	if patch.DueDate != nil {
		merged.DueDate = patch.DueDate
	}
	if patch.ClearDueDate {
		merged.DueDate = nil
	}
	if patch.ListID != nil {
		merged.ListID = *patch.ListID
	}
	if patch.Order != nil {
		merged.Order = *patch.Order
	}
	if patch.Completed != nil && *patch.Completed != current.Completed {
		merged.Completed = *patch.Completed
		if merged.Completed {
			now := clock.Now()
			merged.CompletedAt = &now
		} else {
			merged.CompletedAt = nil
		}
	}
	return merged
}

func nextID(tasks []domain.Task) int {
	max := 0
	for _, t := range tasks {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}

func defaultPriority(p domain.Priority) domain.Priority {
	if p == "" {
		return domain.PriorityMedium
	}
	return p
}
