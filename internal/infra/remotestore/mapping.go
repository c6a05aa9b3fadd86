package remotestore

import (
	"strconv"
	"time"

	"github.com/apper-canvas/boosttaskflow/internal/domain"
)

// taskRecord is the remote schema representation of a task. The service
// stores the completed flag as a stringified boolean; it is normalized
// back to a real boolean on read.
type taskRecord struct {
	Title       string  `json:"title_c"`
	Description string  `json:"description_c,omitempty"`
	Priority    string  `json:"priority_c"`
	DueDate     *string `json:"dueDate_c"`
	Completed   string  `json:"completed_c"`
	CompletedAt *string `json:"completedAt_c"`
	CreatedAt   string  `json:"createdAt_c"`
	ListID      string  `json:"listId_c"`
	ID          int     `json:"Id,omitempty"`
	Order       int     `json:"order_c"`
}

// listRecord is the remote schema representation of a list.
type listRecord struct {
	Name      string `json:"Name"`
	Color     string `json:"color_c"`
	Icon      string `json:"icon_c"`
	ID        int    `json:"Id,omitempty"`
	Order     int    `json:"order_c"`
	TaskCount int    `json:"taskCount_c"`
}

func encodeTask(t domain.Task) taskRecord {
	return taskRecord{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    string(t.Priority),
		DueDate:     encodeTime(t.DueDate),
		Completed:   strconv.FormatBool(t.Completed),
		CompletedAt: encodeTime(t.CompletedAt),
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		ListID:      t.ListID,
		Order:       t.Order,
	}
}

func decodeTask(r taskRecord) domain.Task {
	completed, _ := strconv.ParseBool(r.Completed)
	priority, err := domain.ParsePriority(r.Priority)
	if err != nil {
		priority = domain.PriorityMedium
	}
	createdAt, _ := time.Parse(time.RFC3339, r.CreatedAt)
	return domain.Task{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Priority:    priority,
		DueDate:     decodeTime(r.DueDate),
		Completed:   completed,
		CompletedAt: decodeTime(r.CompletedAt),
		CreatedAt:   createdAt,
		ListID:      r.ListID,
		Order:       r.Order,
	}
}

func encodeList(l domain.List) listRecord {
	return listRecord{
		ID:        l.ID,
		Name:      l.Name,
		Color:     l.Color,
		Icon:      l.Icon,
		Order:     l.Order,
		TaskCount: l.TaskCount,
	}
}

func decodeList(r listRecord) domain.List {
	return domain.List{
		ID:        r.ID,
		Name:      r.Name,
		Color:     r.Color,
		Icon:      r.Icon,
		Order:     r.Order,
		TaskCount: r.TaskCount,
	}
}

func encodeTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func decodeTime(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil
	}
	return &t
}
