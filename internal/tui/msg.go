package tui

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgSaved is sent when a snapshot of the list was written.
type MsgSaved struct {
	Path  string
	Count int
	Rev   int // Revision of the list the snapshot was taken from
}

func (MsgSaved) sealed() {}

// MsgError is sent when an error occurs.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// MsgClearStatus is sent to clear the status message.
type MsgClearStatus struct{}

func (MsgClearStatus) sealed() {}
