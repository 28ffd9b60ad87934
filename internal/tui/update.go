package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// statusTimeout is how long the save notice stays on screen.
const statusTimeout = 3 * time.Second

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateLayoutSizes()
		return m, nil

	case MsgSaved:
		m.saving = false
		if msg.Rev > m.savedRev {
			m.savedRev = msg.Rev
		}
		if m.quitting {
			if !m.Dirty() {
				return m, tea.Quit
			}
			// Changes were made after this snapshot was taken
			return m, m.startSave()
		}
		m.status = fmt.Sprintf("Saved %d tasks to %s", msg.Count, msg.Path)
		return m, clearStatusAfter(statusTimeout)

	case MsgError:
		m.saving = false
		m.err = msg.Err
		if m.quitting {
			// The list is still in memory; let the user decide whether to drop it.
			m.quitting = false
			m.mode = ModeConfirm
			m.confirmAction = ConfirmQuitUnsaved
			return m, nil
		}
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		return m, nil

	case MsgClearStatus:
		m.status = ""
		return m, nil
	}

	return m, nil
}

// handleKeyMsg handles keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Keep the error visible while the quit-unsaved prompt explains it
	if m.err != nil && m.confirmAction != ConfirmQuitUnsaved {
		m.err = nil
	}

	switch m.mode {
	case ModeNormal:
		return m.handleNormalMode(msg)
	case ModeConfirm:
		return m.handleConfirmMode(msg)
	case ModeInputTitle:
		return m.handleInputTitleMode(msg)
	case ModeInputDesc:
		return m.handleInputDescMode(msg)
	case ModeEditTitle:
		return m.handleEditTitleMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	}

	return m, nil
}

// handleNormalMode handles keys in normal mode.
func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A save is in flight; ignore input until it reports back.
	if m.quitting {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		if !m.Dirty() && !m.saving {
			return m, tea.Quit
		}
		// A save already in flight reports back first; MsgSaved decides whether another is needed.
		m.quitting = true
		return m, m.startSave()

	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		var cmd tea.Cmd
		m.taskList, cmd = m.taskList.Update(msg)
		m.syncSelection()
		return m, cmd

	case key.Matches(msg, m.keys.PrevPage):
		m.taskList.Paginator.PrevPage()
		m.taskList.Select(m.taskList.Paginator.Page * m.taskList.Paginator.PerPage)
		m.syncSelection()
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		m.taskList.Paginator.NextPage()
		m.taskList.Select(m.taskList.Paginator.Page * m.taskList.Paginator.PerPage)
		m.syncSelection()
		return m, nil

	case key.Matches(msg, m.keys.NextFilter):
		m.filterIndex = (m.filterIndex + 1) % len(m.filters)
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.PrevFilter):
		m.filterIndex = (m.filterIndex + len(m.filters) - 1) % len(m.filters)
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.New):
		m.mode = ModeInputTitle
		m.titleInput.Reset()
		m.descInput.Reset()
		return m, m.titleInput.Focus()

	case key.Matches(msg, m.keys.Complete):
		m.completeSelected()
		return m, nil

	case key.Matches(msg, m.keys.Priority):
		m.cyclePriority()
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		entry, ok := m.SelectedTask()
		if !ok {
			return m, nil
		}
		m.mode = ModeConfirm
		m.confirmAction = ConfirmDelete
		m.confirmID = entry.Task.ID
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		entry, ok := m.SelectedTask()
		if !ok {
			return m, nil
		}
		m.mode = ModeEditTitle
		m.editID = entry.Task.ID
		m.editInput.SetValue(entry.Task.Title)
		m.editInput.CursorEnd()
		return m, m.editInput.Focus()

	case key.Matches(msg, m.keys.Save):
		return m, m.startSave()

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil
	}

	return m, nil
}

// handleConfirmMode handles keys in confirm mode.
func (m *Model) handleConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), msg.String() == "n", msg.String() == "N":
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		m.confirmID = ""
		m.err = nil
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		action := m.confirmAction
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		switch action {
		case ConfirmNone:
			// Nothing to confirm
		case ConfirmDelete:
			m.deleteTask(m.confirmID)
			m.confirmID = ""
		case ConfirmQuitUnsaved:
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleInputTitleMode handles keys in title input mode.
func (m *Model) handleInputTitleMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.titleInput.Reset()
		m.titleInput.Blur()
		return m, nil

	case msg.Type == tea.KeyEnter:
		if strings.TrimSpace(m.titleInput.Value()) == "" {
			return m, nil
		}
		m.mode = ModeInputDesc
		m.titleInput.Blur()
		return m, m.descInput.Focus()
	}

	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(msg)
	return m, cmd
}

// handleInputDescMode handles keys in description input mode.
func (m *Model) handleInputDescMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeInputTitle
		m.descInput.Reset()
		m.descInput.Blur()
		return m, m.titleInput.Focus()

	case msg.Type == tea.KeyEnter:
		title := strings.TrimSpace(m.titleInput.Value())
		desc := strings.TrimSpace(m.descInput.Value())
		m.mode = ModeNormal
		m.titleInput.Reset()
		m.descInput.Reset()
		m.descInput.Blur()
		m.createTask(title, desc)
		return m, nil
	}

	var cmd tea.Cmd
	m.descInput, cmd = m.descInput.Update(msg)
	return m, cmd
}

// handleEditTitleMode handles keys while renaming the selected task.
func (m *Model) handleEditTitleMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.editID = ""
		m.editInput.Reset()
		m.editInput.Blur()
		return m, nil

	case msg.Type == tea.KeyEnter:
		title := strings.TrimSpace(m.editInput.Value())
		if title == "" {
			return m, nil
		}
		id := m.editID
		m.mode = ModeNormal
		m.editID = ""
		m.editInput.Reset()
		m.editInput.Blur()
		m.renameTask(id, title)
		return m, nil
	}

	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return m, cmd
}

// handleHelpMode handles keys in help mode.
func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Quit):
		m.mode = ModeNormal
		return m, nil
	}

	return m, nil
}
