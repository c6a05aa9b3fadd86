package domain

import (
	"slices"
	"strings"
	"time"
)

// AllLists is the sentinel list scope meaning "tasks from every list".
const AllLists = "all"

// AllListsLabel is the display name used for the sentinel scope.
const AllListsLabel = "All Tasks"

// StatusFilter narrows tasks by completion state.
type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusActive    StatusFilter = "active"
	StatusCompleted StatusFilter = "completed"
)

// PriorityFilter narrows tasks by priority.
type PriorityFilter string

const (
	FilterPriorityAll    PriorityFilter = "all"
	FilterPriorityHigh   PriorityFilter = "high"
	FilterPriorityMedium PriorityFilter = "medium"
	FilterPriorityLow    PriorityFilter = "low"
)

// DateRangeFilter narrows tasks by due date relative to local midnight.
type DateRangeFilter string

const (
	DateRangeAll     DateRangeFilter = "all"
	DateRangeToday   DateRangeFilter = "today"
	DateRangeWeek    DateRangeFilter = "week"
	DateRangeOverdue DateRangeFilter = "overdue"
)

// Filter is a composable multi-criteria task filter. Each criterion
// narrows the result independently; evaluation order never changes the
// final set.
type Filter struct {
	Status    StatusFilter
	Priority  PriorityFilter
	DateRange DateRangeFilter
}

// DefaultFilter returns the filter that keeps everything.
func DefaultFilter() Filter {
	return Filter{Status: StatusAll, Priority: FilterPriorityAll, DateRange: DateRangeAll}
}

// Apply filters tasks by list scope, search query and filter criteria,
// then sorts the result. It never fails; empty or malformed inputs
// produce an empty result. now anchors the date-range boundaries.
func Apply(tasks []Task, listID string, f Filter, search string, now time.Time) []Task {
	return SortTasks(FilterTasks(tasks, listID, f, search, now))
}

// FilterTasks applies list scope, search and the filter criteria
// without sorting. Input order is preserved.
func FilterTasks(tasks []Task, listID string, f Filter, search string, now time.Time) []Task {
	out := make([]Task, 0, len(tasks))

	query := strings.ToLower(strings.TrimSpace(search))
	today := StartOfDay(now)
	tomorrow := today.Add(24 * time.Hour)
	weekFromNow := today.Add(7 * 24 * time.Hour)

	for _, t := range tasks {
		if listID != "" && listID != AllLists && t.ListID != listID {
			continue
		}
		if query != "" && !matchesQuery(t, query) {
			continue
		}
		if !matchesStatus(t, f.Status) {
			continue
		}
		if f.Priority != "" && f.Priority != FilterPriorityAll && Priority(f.Priority) != t.Priority {
			continue
		}
		if !matchesDateRange(t, f.DateRange, today, tomorrow, weekFromNow) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// SortTasks orders tasks for display: incomplete tasks before completed
// ones, ascending Order within each partition. The sort is stable, so
// ties in Order keep their relative input order.
func SortTasks(tasks []Task) []Task {
	out := slices.Clone(tasks)
	slices.SortStableFunc(out, func(a, b Task) int {
		if a.Completed != b.Completed {
			if a.Completed {
				return 1
			}
			return -1
		}
		return a.Order - b.Order
	})
	return out
}

// StartOfDay returns local midnight of the given time.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func matchesQuery(t Task, query string) bool {
	return strings.Contains(strings.ToLower(t.Title), query) ||
		strings.Contains(strings.ToLower(t.Description), query)
}

func matchesStatus(t Task, s StatusFilter) bool {
	switch s {
	case StatusActive:
		return !t.Completed
	case StatusCompleted:
		return t.Completed
	default:
		return true
	}
}

func matchesDateRange(t Task, r DateRangeFilter, today, tomorrow, weekFromNow time.Time) bool {
	if r == "" || r == DateRangeAll {
		return true
	}
	if t.DueDate == nil {
		return false
	}
	due := *t.DueDate
	switch r {
	case DateRangeToday:
		return !due.Before(today) && due.Before(tomorrow)
	case DateRangeWeek:
		return !due.Before(today) && due.Before(weekFromNow)
	case DateRangeOverdue:
		return due.Before(today) && !t.Completed
	}
	return false
}
