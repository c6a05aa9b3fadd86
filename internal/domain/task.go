// Package domain contains core business entities and interfaces.
package domain

import (
	"strings"
	"time"
)

// Priority represents the urgency of a task.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// AllPriorities returns all valid priority values.
func AllPriorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// IsValid returns true if the priority is a known value.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// ParsePriority parses a priority string, case-insensitively.
// An empty string yields the default (medium).
func ParsePriority(s string) (Priority, error) {
	switch Priority(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return PriorityMedium, nil
	case PriorityHigh:
		return PriorityHigh, nil
	case PriorityMedium:
		return PriorityMedium, nil
	case PriorityLow:
		return PriorityLow, nil
	}
	return "", ErrInvalidPriority
}

// Task represents a single task record.
// JSON field names match the persisted record layout.
// Fields are ordered to minimize memory padding.
type Task struct {
	CreatedAt   time.Time  `json:"createdAt"`             // Set once at creation, immutable
	DueDate     *time.Time `json:"dueDate"`               // Optional; nil when the task has no due date
	CompletedAt *time.Time `json:"completedAt"`           // Non-nil exactly while Completed is true
	Title       string     `json:"title"`                 // Title (required, non-empty)
	Description string     `json:"description,omitempty"` // Description (optional)
	ListID      string     `json:"listId"`                // Soft reference to List.ID; may dangle
	Priority    Priority   `json:"priority"`              // high, medium or low
	ID          int        `json:"Id"`                    // Unique within the task collection
	Order       int        `json:"order"`                 // Display sort key within a list; never renumbered
	Completed   bool       `json:"completed"`
}

// TaskInput holds the caller-supplied fields for creating a task.
// ID, CreatedAt and Order are assigned by the store.
type TaskInput struct {
	DueDate     *time.Time
	Title       string
	Description string
	ListID      string
	Priority    Priority
	Completed   bool
}

// TaskPatch is a partial update. Nil fields are left untouched;
// ClearDueDate removes an existing due date.
type TaskPatch struct {
	Title        *string
	Description  *string
	Priority     *Priority
	DueDate      *time.Time
	Completed    *bool
	ListID       *string
	Order        *int
	ClearDueDate bool
}

// IsZero returns true if the patch modifies nothing.
func (p TaskPatch) IsZero() bool {
	return p.Title == nil && p.Description == nil && p.Priority == nil &&
		p.DueDate == nil && !p.ClearDueDate && p.Completed == nil &&
		p.ListID == nil && p.Order == nil
}
