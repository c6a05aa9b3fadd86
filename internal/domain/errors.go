package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrListNotFound       = errors.New("list not found")
	ErrEmptyTitle         = errors.New("title cannot be empty")
	ErrEmptyName          = errors.New("name cannot be empty")
	ErrDueDateInPast      = errors.New("due date cannot be in the past")
	ErrInvalidPriority    = errors.New("invalid priority")
	ErrNoFieldsToUpdate   = errors.New("no fields to update")
	ErrBackendUnavailable = errors.New("backend unavailable")
	ErrEmptyFile          = errors.New("file is empty")
	ErrNoTasksInFile      = errors.New("no tasks found in file")
)
