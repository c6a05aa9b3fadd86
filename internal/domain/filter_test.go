package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timePtr(t time.Time) *time.Time { return &t }

func testNow() time.Time {
	return time.Date(2025, 6, 15, 14, 30, 0, 0, time.Local)
}

func TestApply_IncompleteBeforeCompleted(t *testing.T) {
	tasks := []Task{
		{ID: 1, Title: "A", Completed: false, Priority: PriorityHigh, Order: 1, ListID: "1"},
		{ID: 2, Title: "B", Completed: true, Priority: PriorityLow, Order: 0, ListID: "1"},
	}

	got := Apply(tasks, AllLists, DefaultFilter(), "", testNow())

	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID, "incomplete task sorts first regardless of order")
	assert.Equal(t, 2, got[1].ID)
}

func TestSortTasks_StableWithinPartition(t *testing.T) {
	tasks := []Task{
		{ID: 1, Order: 2},
		{ID: 2, Order: 1},
		{ID: 3, Order: 1}, // ties with ID 2, must stay after it
		{ID: 4, Order: 3, Completed: true},
		{ID: 5, Order: 1, Completed: true},
	}

	got := SortTasks(tasks)

	ids := make([]int, 0, len(got))
	for _, task := range got {
		ids = append(ids, task.ID)
	}
	assert.Equal(t, []int{2, 3, 1, 5, 4}, ids)
}

func TestSortTasks_NoCompletedBeforeIncomplete(t *testing.T) {
	tasks := []Task{
		{ID: 1, Order: 5, Completed: true},
		{ID: 2, Order: 4},
		{ID: 3, Order: 3, Completed: true},
		{ID: 4, Order: 2},
	}

	got := SortTasks(tasks)

	seenCompleted := false
	for _, task := range got {
		if task.Completed {
			seenCompleted = true
		} else {
			assert.False(t, seenCompleted, "incomplete task after a completed one")
		}
	}
}

func TestFilterTasks_ListScope(t *testing.T) {
	tasks := []Task{
		{ID: 1, ListID: "1"},
		{ID: 2, ListID: "2"},
		{ID: 3, ListID: "1"},
	}

	got := FilterTasks(tasks, "1", DefaultFilter(), "", testNow())
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[1].ID)

	all := FilterTasks(tasks, AllLists, DefaultFilter(), "", testNow())
	assert.Len(t, all, 3)
}

func TestFilterTasks_Search(t *testing.T) {
	tasks := []Task{
		{ID: 1, Title: "Buy groceries", Description: ""},
		{ID: 2, Title: "Call mom", Description: "about GROCERY list"},
		{ID: 3, Title: "Gym", Description: "leg day"},
	}

	got := FilterTasks(tasks, AllLists, DefaultFilter(), "grocer", testNow())

	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 2, got[1].ID, "search is case-folded over title and description")
}

func TestFilterTasks_Status(t *testing.T) {
	tasks := []Task{
		{ID: 1, Completed: false},
		{ID: 2, Completed: true},
	}

	tests := []struct {
		status  StatusFilter
		wantIDs []int
	}{
		{StatusAll, []int{1, 2}},
		{StatusActive, []int{1}},
		{StatusCompleted, []int{2}},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			got := FilterTasks(tasks, AllLists, Filter{Status: tt.status, Priority: FilterPriorityAll, DateRange: DateRangeAll}, "", testNow())
			ids := make([]int, 0, len(got))
			for _, task := range got {
				ids = append(ids, task.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilterTasks_DateRange(t *testing.T) {
	now := testNow()
	today := StartOfDay(now)

	tasks := []Task{
		{ID: 1, DueDate: timePtr(today.Add(2 * time.Hour))},                   // today
		{ID: 2, DueDate: timePtr(today.Add(3 * 24 * time.Hour))},              // this week
		{ID: 3, DueDate: timePtr(today.Add(10 * 24 * time.Hour))},             // beyond week
		{ID: 4, DueDate: timePtr(today.Add(-time.Hour))},                      // overdue
		{ID: 5, DueDate: timePtr(today.Add(-time.Hour)), Completed: true},     // overdue but done
		{ID: 6, DueDate: nil},                                                 // no due date
		{ID: 7, DueDate: timePtr(today.Add(7*24*time.Hour - time.Nanosecond))}, // end of week window
	}

	tests := []struct {
		name    string
		rng     DateRangeFilter
		wantIDs []int
	}{
		{"today", DateRangeToday, []int{1}},
		{"week", DateRangeWeek, []int{1, 2, 7}},
		{"overdue", DateRangeOverdue, []int{4}},
		{"all keeps nil due dates", DateRangeAll, []int{1, 2, 3, 4, 5, 6, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterTasks(tasks, AllLists, Filter{Status: StatusAll, Priority: FilterPriorityAll, DateRange: tt.rng}, "", now)
			ids := make([]int, 0, len(got))
			for _, task := range got {
				ids = append(ids, task.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilterTasks_OverdueExcludesCompletedAndNilDueDate(t *testing.T) {
	now := testNow()
	tasks := []Task{
		{ID: 1, DueDate: timePtr(now.Add(-48 * time.Hour)), Completed: true},
		{ID: 2, DueDate: nil},
		{ID: 3, DueDate: timePtr(now.Add(-48 * time.Hour))},
	}

	got := FilterTasks(tasks, AllLists, Filter{Status: StatusAll, Priority: FilterPriorityAll, DateRange: DateRangeOverdue}, "", now)

	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].ID)
}

func TestFilterTasks_CompositionOrderIndependent(t *testing.T) {
	tasks := []Task{
		{ID: 1, Title: "a", Priority: PriorityHigh, Completed: false},
		{ID: 2, Title: "b", Priority: PriorityHigh, Completed: true},
		{ID: 3, Title: "c", Priority: PriorityLow, Completed: false},
		{ID: 4, Title: "d", Priority: PriorityHigh, Completed: false},
	}

	// status then priority
	byStatus := FilterTasks(tasks, AllLists, Filter{Status: StatusActive, Priority: FilterPriorityAll, DateRange: DateRangeAll}, "", testNow())
	first := FilterTasks(byStatus, AllLists, Filter{Status: StatusAll, Priority: FilterPriorityHigh, DateRange: DateRangeAll}, "", testNow())

	// priority then status
	byPriority := FilterTasks(tasks, AllLists, Filter{Status: StatusAll, Priority: FilterPriorityHigh, DateRange: DateRangeAll}, "", testNow())
	second := FilterTasks(byPriority, AllLists, Filter{Status: StatusActive, Priority: FilterPriorityAll, DateRange: DateRangeAll}, "", testNow())

	// combined
	combined := FilterTasks(tasks, AllLists, Filter{Status: StatusActive, Priority: FilterPriorityHigh, DateRange: DateRangeAll}, "", testNow())

	assert.Equal(t, first, second)
	assert.Equal(t, first, combined)
}

func TestApply_EmptyInput(t *testing.T) {
	got := Apply(nil, AllLists, DefaultFilter(), "", testNow())
	assert.Empty(t, got)
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in      string
		want    Priority
		wantErr bool
	}{
		{"high", PriorityHigh, false},
		{"MEDIUM", PriorityMedium, false},
		{" low ", PriorityLow, false},
		{"", PriorityMedium, false},
		{"urgent", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePriority(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPriority)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
