// Package tui provides the terminal user interface for todo.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal     Mode = iota // Default navigation mode
	ModeConfirm                // Confirmation dialog mode
	ModeInputTitle             // Title input mode (for new task)
	ModeInputDesc              // Description input mode (for new task)
	ModeEditTitle              // Title input mode (for the selected task)
	ModeHelp                   // Help overlay mode
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeConfirm:
		return "confirm"
	case ModeInputTitle:
		return "input_title"
	case ModeInputDesc:
		return "input_desc"
	case ModeEditTitle:
		return "edit_title"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModeInputTitle, ModeInputDesc, ModeEditTitle:
		return true
	case ModeNormal, ModeConfirm, ModeHelp:
		return false
	}
	return false
}

// ConfirmAction represents the type of action requiring confirmation.
type ConfirmAction int

const (
	ConfirmNone        ConfirmAction = iota
	ConfirmDelete                    // Delete task
	ConfirmQuitUnsaved               // Quit after a failed save
)

// String returns a human-readable description of the action.
func (a ConfirmAction) String() string {
	switch a {
	case ConfirmNone:
		return ""
	case ConfirmDelete:
		return "delete"
	case ConfirmQuitUnsaved:
		return "quit"
	}
	return ""
}
