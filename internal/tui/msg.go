package tui

import "github.com/apper-canvas/boosttaskflow/internal/domain"

// Msg is the interface for all task browser messages.
// All message types implement this sealed interface.
type Msg interface {
	sealed()
}

// MsgTasksLoaded is sent when the filtered task view is loaded.
type MsgTasksLoaded struct {
	Err      error
	ListName string
	Tasks    []domain.Task
}

func (MsgTasksLoaded) sealed() {}

// MsgListsLoaded is sent when the list collection is loaded.
type MsgListsLoaded struct {
	Err   error
	Lists []domain.List
}

func (MsgListsLoaded) sealed() {}

// MsgTaskToggled is sent when a task's completion state is flipped.
type MsgTaskToggled struct {
	Err  error
	Task *domain.Task
}

func (MsgTaskToggled) sealed() {}

// MsgTaskDeleted is sent when a task is removed.
type MsgTaskDeleted struct {
	Err error
	ID  int
}

func (MsgTaskDeleted) sealed() {}
