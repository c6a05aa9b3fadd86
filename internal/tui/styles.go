package tui

import "github.com/charmbracelet/lipgloss"

// Colors used in the task browser.
var (
	ColorPrimary = lipgloss.Color("#7C3AED") // Purple
	ColorSuccess = lipgloss.Color("#10B981") // Green
	ColorWarning = lipgloss.Color("#F59E0B") // Amber
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorMuted   = lipgloss.Color("#9CA3AF") // Light gray
)

// Styles holds the styles for the task browser.
type Styles struct {
	Title        lipgloss.Style
	FilterBar    lipgloss.Style
	Selected     lipgloss.Style
	Normal       lipgloss.Style
	Done         lipgloss.Style
	Overdue      lipgloss.Style
	PriorityHigh lipgloss.Style
	PriorityMed  lipgloss.Style
	PriorityLow  lipgloss.Style
	Help         lipgloss.Style
	Error        lipgloss.Style
	Empty        lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1),
		FilterBar: lipgloss.NewStyle().
			Foreground(ColorMuted),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(ColorPrimary).
			Padding(0, 1),
		Normal: lipgloss.NewStyle().
			Padding(0, 1),
		Done: lipgloss.NewStyle().
			Faint(true).
			Strikethrough(true),
		Overdue: lipgloss.NewStyle().
			Foreground(ColorError),
		PriorityHigh: lipgloss.NewStyle().
			Foreground(ColorError),
		PriorityMed: lipgloss.NewStyle().
			Foreground(ColorWarning),
		PriorityLow: lipgloss.NewStyle().
			Foreground(ColorSuccess),
		Help: lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1),
		Error: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),
		Empty: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true),
	}
}
