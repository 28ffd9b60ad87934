package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestView_Loading(t *testing.T) {
	m, _ := newTestModel(t, "a")
	m.width = 0

	assert.Equal(t, "Loading...", m.View())
}

func TestView_Main(t *testing.T) {
	m, _ := newTestModel(t, "a", "b")
	press(m, "c")

	out := m.View()

	assert.Contains(t, out, "Tasks [modified]")
	assert.Contains(t, out, "showing 2 of 2 tasks")
	assert.Contains(t, out, "All (2)")
	assert.Contains(t, out, "Pending (1)")
	assert.Contains(t, out, "Completed (1)")
	assert.Contains(t, out, "No priority (1)")
	assert.Contains(t, out, "Prioritized (0)")
	assert.Contains(t, out, `Completed "a"`)
	assert.Contains(t, out, "save & quit")
}

func TestView_FilteredCount(t *testing.T) {
	m, _ := newTestModel(t, "a", "b")
	press(m, "c")
	press(m, "tab")

	assert.Contains(t, m.View(), "showing 1 of 2 tasks")
}

func TestView_EmptyState(t *testing.T) {
	tests := []struct {
		name string
		tabs int
		want string
	}{
		{name: "all", tabs: 0, want: "No tasks yet."},
		{name: "completed", tabs: 2, want: "No tasks in this view."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t)
			for range tt.tabs {
				press(m, "tab")
			}

			out := m.View()

			assert.Contains(t, out, tt.want)
			assert.Contains(t, out, "to create a task")
		})
	}
}

func TestView_ConfirmDelete(t *testing.T) {
	m, _ := newTestModel(t, "a", "b")
	press(m, "down")
	press(m, "d")

	out := m.View()

	assert.Contains(t, out, `Delete task 1 "b"?`)
	assert.Contains(t, out, "[ y ] Confirm")
	assert.NotContains(t, out, "save & quit", "footer is hidden behind dialogs")
}

func TestView_ConfirmQuitUnsaved(t *testing.T) {
	m, store := newTestModel(t, "a")
	store.SaveErr = errors.New("disk full")
	press(m, "c")
	m.Update(press(m, "q")())

	out := m.View()

	assert.Contains(t, out, "Quit without saving?")
	assert.Contains(t, out, "disk full")
	assert.NotContains(t, out, "Error:")
}

func TestView_Inputs(t *testing.T) {
	m, _ := newTestModel(t, "a")

	press(m, "n")
	assert.Contains(t, m.View(), "Step 1 of 2")

	typeText(m, "x")
	press(m, "enter")
	assert.Contains(t, m.View(), "Step 2 of 2")

	press(m, "esc")
	press(m, "esc")
	press(m, "e")
	assert.Contains(t, m.View(), "Edit Task")
}

func TestView_Error(t *testing.T) {
	m, _ := newTestModel(t, "a")
	m.Update(MsgError{Err: errors.New("boom")})

	assert.Contains(t, m.View(), "Error: boom")
}

func TestView_Help(t *testing.T) {
	m, _ := newTestModel(t, "a")
	press(m, "?")

	out := m.View()

	assert.Contains(t, out, "KEYBOARD SHORTCUTS")
	assert.Contains(t, out, "cycle priority")
	assert.Contains(t, out, "prev view")
}

func TestView_Resize(t *testing.T) {
	m, _ := newTestModel(t, "a")

	m.Update(tea.WindowSizeMsg{Width: 30, Height: 5})

	assert.Equal(t, 30, m.width)
	assert.Equal(t, 26, m.taskList.Width())
	assert.Equal(t, 3, m.taskList.Height())
}
