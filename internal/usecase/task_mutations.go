package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/apper-canvas/boosttaskflow/internal/domain"
)

// CreateTaskInput contains the parameters for creating a task.
type CreateTaskInput struct {
	DueDate     *time.Time
	Title       string
	Description string
	ListID      string
	Priority    domain.Priority
}

// CreateTaskOutput contains the created record and refreshed lists.
type CreateTaskOutput struct {
	Task  *domain.Task
	Lists []domain.List // Counts recomputed after the mutation
}

// CreateTask is the use case for creating a task.
type CreateTask struct {
	tasks  domain.TaskStore
	lists  domain.ListStore
	logger domain.Logger
}

// NewCreateTask creates a new CreateTask use case.
func NewCreateTask(tasks domain.TaskStore, lists domain.ListStore, logger domain.Logger) *CreateTask {
	return &CreateTask{tasks: tasks, lists: lists, logger: orNop(logger)}
}

// Execute creates the task and refreshes list aggregates so displayed
// counts are current.
func (uc *CreateTask) Execute(ctx context.Context, in CreateTaskInput) (*CreateTaskOutput, error) {
	task, err := uc.tasks.Create(ctx, domain.TaskInput{
		Title:       in.Title,
		Description: in.Description,
		Priority:    in.Priority,
		DueDate:     in.DueDate,
		ListID:      in.ListID,
	})
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return &CreateTaskOutput{Task: task, Lists: refreshLists(ctx, uc.lists, uc.logger)}, nil
}

// UpdateTaskInput contains the parameters for patching a task.
type UpdateTaskInput struct {
	Patch  domain.TaskPatch
	TaskID int
}

// UpdateTaskOutput contains the updated record and refreshed lists.
type UpdateTaskOutput struct {
	Task  *domain.Task
	Lists []domain.List
}

// UpdateTask is the use case for partially updating a task.
type UpdateTask struct {
	tasks  domain.TaskStore
	lists  domain.ListStore
	logger domain.Logger
}

// NewUpdateTask creates a new UpdateTask use case.
func NewUpdateTask(tasks domain.TaskStore, lists domain.ListStore, logger domain.Logger) *UpdateTask {
	return &UpdateTask{tasks: tasks, lists: lists, logger: orNop(logger)}
}

// Execute applies the patch and refreshes list aggregates.
func (uc *UpdateTask) Execute(ctx context.Context, in UpdateTaskInput) (*UpdateTaskOutput, error) {
	task, err := uc.tasks.Update(ctx, in.TaskID, in.Patch)
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return &UpdateTaskOutput{Task: task, Lists: refreshLists(ctx, uc.lists, uc.logger)}, nil
}

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	TaskID int
}

// DeleteTaskOutput contains the refreshed lists.
type DeleteTaskOutput struct {
	Lists []domain.List
}

// DeleteTask is the use case for deleting a task.
type DeleteTask struct {
	tasks  domain.TaskStore
	lists  domain.ListStore
	logger domain.Logger
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(tasks domain.TaskStore, lists domain.ListStore, logger domain.Logger) *DeleteTask {
	return &DeleteTask{tasks: tasks, lists: lists, logger: orNop(logger)}
}

// Execute deletes the task and refreshes list aggregates.
func (uc *DeleteTask) Execute(ctx context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	if err := uc.tasks.Delete(ctx, in.TaskID); err != nil {
		return nil, fmt.Errorf("delete task: %w", err)
	}
	return &DeleteTaskOutput{Lists: refreshLists(ctx, uc.lists, uc.logger)}, nil
}

// ToggleTaskInput contains the parameters for toggling completion.
type ToggleTaskInput struct {
	TaskID int
}

// ToggleTaskOutput contains the toggled record and refreshed lists.
type ToggleTaskOutput struct {
	Task  *domain.Task
	Lists []domain.List
}

// ToggleTask is the use case for flipping a task's completion state.
type ToggleTask struct {
	tasks  domain.TaskStore
	lists  domain.ListStore
	logger domain.Logger
}

// NewToggleTask creates a new ToggleTask use case.
func NewToggleTask(tasks domain.TaskStore, lists domain.ListStore, logger domain.Logger) *ToggleTask {
	return &ToggleTask{tasks: tasks, lists: lists, logger: orNop(logger)}
}

// Execute toggles completion and refreshes list aggregates.
func (uc *ToggleTask) Execute(ctx context.Context, in ToggleTaskInput) (*ToggleTaskOutput, error) {
	task, err := uc.tasks.ToggleComplete(ctx, in.TaskID)
	if err != nil {
		return nil, fmt.Errorf("toggle task: %w", err)
	}
	return &ToggleTaskOutput{Task: task, Lists: refreshLists(ctx, uc.lists, uc.logger)}, nil
}

// refreshLists recomputes list aggregates after a task mutation. The
// refresh is best-effort: the mutation already succeeded, so a failed
// recompute is logged and reported as an absent list set.
func refreshLists(ctx context.Context, lists domain.ListStore, logger domain.Logger) []domain.List {
	refreshed, err := lists.GetAll(ctx)
	if err != nil {
		logger.Warn("list aggregate refresh failed", "error", err)
		return nil
	}
	return refreshed
}

func orNop(logger domain.Logger) domain.Logger {
	if logger == nil {
		return domain.NopLogger{}
	}
	return logger
}
