package domain

// List represents a named collection of tasks.
// TaskCount is derived from the task collection on every read and is
// never treated as authoritative when loaded from storage.
type List struct {
	Name      string `json:"name"`
	Color     string `json:"color"` // Display attribute, e.g. "#5B21B6"
	Icon      string `json:"icon"`  // Display attribute, e.g. "Briefcase"
	ID        int    `json:"Id"`    // Unique within the list collection
	Order     int    `json:"order"` // Sort key for list ordering
	TaskCount int    `json:"taskCount"`
}

// ListInput holds the caller-supplied fields for creating a list.
// ID, Order and TaskCount are assigned by the store.
type ListInput struct {
	Name  string
	Color string
	Icon  string
}

// ListPatch is a partial update to a list. Nil fields are left untouched.
type ListPatch struct {
	Name  *string
	Color *string
	Icon  *string
	Order *int
}

// IsZero returns true if the patch modifies nothing.
func (p ListPatch) IsZero() bool {
	return p.Name == nil && p.Color == nil && p.Icon == nil && p.Order == nil
}
