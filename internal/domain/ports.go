package domain

import (
	"context"
	"time"
)

// TaskStore manages task records and their business rules.
type TaskStore interface {
	// GetAll returns every task in the collection.
	GetAll(ctx context.Context) ([]Task, error)

	// GetByID retrieves a task by ID. Returns ErrTaskNotFound if missing.
	GetByID(ctx context.Context, id int) (*Task, error)

	// GetByListID returns tasks whose ListID equals the given value.
	GetByListID(ctx context.Context, listID string) ([]Task, error)

	// Create validates the input, assigns ID, CreatedAt and Order,
	// persists the record and returns it.
	Create(ctx context.Context, in TaskInput) (*Task, error)

	// Update applies only the fields present in the patch.
	// Returns ErrTaskNotFound if missing.
	Update(ctx context.Context, id int, patch TaskPatch) (*Task, error)

	// Delete removes a task. Returns ErrTaskNotFound if missing.
	Delete(ctx context.Context, id int) error

	// ToggleComplete flips Completed and sets or clears CompletedAt
	// as one logical update. Returns ErrTaskNotFound if missing.
	ToggleComplete(ctx context.Context, id int) (*Task, error)

	// CreateBatch creates several tasks, reporting per-record failures
	// without aborting the records that succeed.
	CreateBatch(ctx context.Context, in []TaskInput) (*TaskBatchResult, error)
}

// ListStore manages list records and derives their task counts.
type ListStore interface {
	// GetAll returns every list ordered by ascending Order, with
	// TaskCount recomputed from the task collection.
	GetAll(ctx context.Context) ([]List, error)

	// GetByID retrieves a list by ID. Returns ErrListNotFound if missing.
	GetByID(ctx context.Context, id int) (*List, error)

	// Create assigns ID and Order, persists the list and returns it.
	Create(ctx context.Context, in ListInput) (*List, error)

	// Update applies only the fields present in the patch.
	Update(ctx context.Context, id int, patch ListPatch) (*List, error)

	// Delete removes a list. Its tasks are left untouched.
	Delete(ctx context.Context, id int) error
}

// TaskAdapter performs storage I/O for task records. The store layers
// business rules on top; adapters never assign IDs or validate fields.
type TaskAdapter interface {
	// FetchAll loads the full task collection.
	FetchAll(ctx context.Context) ([]Task, error)

	// CreateRecord persists a fully-formed record and returns the
	// stored representation.
	CreateRecord(ctx context.Context, t Task) (*Task, error)

	// CreateRecords persists several records. Some may fail while
	// others are committed; the result reports both sides.
	CreateRecords(ctx context.Context, ts []Task) (*TaskBatchResult, error)

	// UpdateRecord replaces the record with the matching ID.
	// Returns nil without error when no record matches.
	UpdateRecord(ctx context.Context, t Task) (*Task, error)

	// DeleteRecords removes the records with the given IDs.
	// Returns false when none were removed.
	DeleteRecords(ctx context.Context, ids []int) (bool, error)
}

// ListAdapter performs storage I/O for list records.
type ListAdapter interface {
	FetchAll(ctx context.Context) ([]List, error)
	CreateRecord(ctx context.Context, l List) (*List, error)
	UpdateRecord(ctx context.Context, l List) (*List, error)
	DeleteRecords(ctx context.Context, ids []int) (bool, error)
}

// TaskBatchResult reports the outcome of a multi-record operation.
// Created holds the records that were committed; Failed holds a
// per-record error for each record that was not.
type TaskBatchResult struct {
	Created []Task
	Failed  []BatchError
}

// BatchError describes one failed record within a batch.
type BatchError struct {
	Message string
	Fields  []FieldError // Field-level validation messages, if any
	Index   int          // Position of the record in the submitted batch
}

// FieldError is a validation message tied to a single field.
type FieldError struct {
	Field   string
	Message string
}

// Logger is the minimal logging surface used across the application.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// NopLogger discards all log output.
type NopLogger struct{}

func (NopLogger) Debug(string, ...any) {}
func (NopLogger) Info(string, ...any)  {}
func (NopLogger) Warn(string, ...any)  {}
func (NopLogger) Error(string, ...any) {}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
