package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/todo/internal/domain"
)

// Palette defines the colors used by the TUI and console output.
type Palette struct {
	// Base colors
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Error   lipgloss.Color
	Success lipgloss.Color

	// Title/text colors
	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color
	DescNormal    lipgloss.Color

	// Status colors
	Pending   lipgloss.Color
	Completed lipgloss.Color

	// Priority colors
	High   lipgloss.Color
	Medium lipgloss.Color
	Low    lipgloss.Color
}

// Colors is the default color palette (v1-style Hex colors).
var Colors = Palette{
	Primary: lipgloss.Color("#6C5CE7"), // Purple
	Muted:   lipgloss.Color("#636E72"), // Gray
	Error:   lipgloss.Color("#D63031"), // Red
	Success: lipgloss.Color("#00B894"), // Green

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)
	DescNormal:    lipgloss.Color("#636E72"), // Gray

	Pending:   lipgloss.Color("#74B9FF"), // Light blue
	Completed: lipgloss.Color("#00B894"), // Green

	High:   lipgloss.Color("#D63031"), // Red
	Medium: lipgloss.Color("#FDCB6E"), // Yellow
	Low:    lipgloss.Color("#A29BFE"), // Lavender
}

// NoColors renders everything in the terminal's default color.
var NoColors = Palette{}

// PaletteFor returns Colors, or NoColors when color output is disabled.
func PaletteFor(color bool) Palette {
	if color {
		return Colors
	}
	return NoColors
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header      lipgloss.Style
	HeaderText  lipgloss.Style
	Tab         lipgloss.Style
	TabSelected lipgloss.Style

	// Task list
	TaskIndex         lipgloss.Style
	TaskTitle         lipgloss.Style
	TaskTitleSelected lipgloss.Style
	TaskTitleDone     lipgloss.Style
	TaskDesc          lipgloss.Style
	Cursor            lipgloss.Style

	// Status and priority badges
	StatusPending   lipgloss.Style
	StatusCompleted lipgloss.Style
	PriorityHigh    lipgloss.Style
	PriorityMedium  lipgloss.Style
	PriorityLow     lipgloss.Style
	PriorityNone    lipgloss.Style

	// Help
	Help     lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Footer
	Footer    lipgloss.Style
	FooterKey lipgloss.Style

	// Dialog
	Dialog       lipgloss.Style
	DialogTitle  lipgloss.Style
	DialogPrompt lipgloss.Style

	// Input
	InputPrompt lipgloss.Style

	// Messages
	ErrorMsg  lipgloss.Style
	StatusMsg lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return NewStyles(Colors)
}

// NewStyles builds the styles from a palette.
func NewStyles(c Palette) Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(c.Primary).
			MarginBottom(1),

		HeaderText: lipgloss.NewStyle().
			Bold(true),

		Tab: lipgloss.NewStyle().
			Foreground(c.Muted).
			Padding(0, 1),

		TabSelected: lipgloss.NewStyle().
			Foreground(c.TitleSelected).
			Bold(true).
			Underline(true).
			Padding(0, 1),

		TaskIndex: lipgloss.NewStyle().
			Foreground(c.Muted),

		TaskTitle: lipgloss.NewStyle().
			Foreground(c.TitleNormal),

		TaskTitleSelected: lipgloss.NewStyle().
			Foreground(c.TitleSelected).
			Bold(true),

		TaskTitleDone: lipgloss.NewStyle().
			Foreground(c.Muted).
			Strikethrough(true),

		TaskDesc: lipgloss.NewStyle().
			Foreground(c.DescNormal),

		Cursor: lipgloss.NewStyle().
			Foreground(c.TitleSelected).
			Bold(true),

		StatusPending: lipgloss.NewStyle().
			Foreground(c.Pending),

		StatusCompleted: lipgloss.NewStyle().
			Foreground(c.Completed),

		PriorityHigh: lipgloss.NewStyle().
			Foreground(c.High).
			Bold(true),

		PriorityMedium: lipgloss.NewStyle().
			Foreground(c.Medium),

		PriorityLow: lipgloss.NewStyle().
			Foreground(c.Low),

		PriorityNone: lipgloss.NewStyle().
			Foreground(c.Muted),

		Help: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.Muted),

		HelpKey: lipgloss.NewStyle().
			Foreground(c.Primary).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(c.Muted),

		Footer: lipgloss.NewStyle().
			Foreground(c.Muted),

		FooterKey: lipgloss.NewStyle().
			Foreground(c.Primary).
			Bold(true),

		Dialog: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.Primary),

		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(c.Primary),

		DialogPrompt: lipgloss.NewStyle(),

		InputPrompt: lipgloss.NewStyle().
			Foreground(c.Primary).
			Bold(true),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(c.Error).
			Bold(true),

		StatusMsg: lipgloss.NewStyle().
			Foreground(c.Success),
	}
}

// StatusStyle returns the style for a given status.
func (s Styles) StatusStyle(status domain.Status) lipgloss.Style {
	if status.IsCompleted() {
		return s.StatusCompleted
	}
	return s.StatusPending
}

// PriorityStyle returns the style for a given priority.
func (s Styles) PriorityStyle(p domain.Preference) lipgloss.Style {
	switch p {
	case domain.PreferenceHigh:
		return s.PriorityHigh
	case domain.PreferenceMedium:
		return s.PriorityMedium
	case domain.PreferenceLow:
		return s.PriorityLow
	case domain.PreferenceNone:
		return s.PriorityNone
	default:
		return s.PriorityNone
	}
}

// StatusIcon returns an icon for a given status.
func StatusIcon(status domain.Status) string {
	if status.IsCompleted() {
		return "✓"
	}
	return "○"
}

// PriorityBadge returns a short fixed-width label for a priority.
func PriorityBadge(p domain.Preference) string {
	switch p {
	case domain.PreferenceHigh:
		return "!!!"
	case domain.PreferenceMedium:
		return "!! "
	case domain.PreferenceLow:
		return "!  "
	case domain.PreferenceNone:
		return "   "
	default:
		return "   "
	}
}
