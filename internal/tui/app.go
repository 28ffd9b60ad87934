package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/usecase"
)

// Model is the main bubbletea model for the TUI.
// All list mutations happen inside Update; saves work on a snapshot.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	list      *domain.TaskList
	err       error

	// State (slices)
	filters []domain.Filter

	// Components (structs with pointers)
	keys     KeyMap
	styles   Styles
	palette  Palette
	help     help.Model
	taskList list.Model

	// Input state (large structs)
	titleInput textinput.Model
	descInput  textinput.Model
	editInput  textinput.Model

	// Selection is tracked by task ID so removals and view changes cannot retarget an action.
	selectedID string
	editID     string
	confirmID  string
	status     string

	// Numeric state (smaller types last)
	mode          Mode
	confirmAction ConfirmAction
	filterIndex   int
	width         int
	height        int
	rev           int  // Incremented on every mutation
	savedRev      int  // Revision of the last successful save
	saving        bool // A save command is in flight
	quitting      bool
}

// New creates a new TUI Model editing list.
func New(c *app.Container, list *domain.TaskList) *Model {
	ti := textinput.New()
	ti.Placeholder = "Task title"
	ti.CharLimit = 200

	di := textinput.New()
	di.Placeholder = "Task description (optional)"
	di.CharLimit = 1000

	ei := textinput.New()
	ei.Placeholder = "New title"
	ei.CharLimit = 200

	cfg := c.AppConfig
	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}
	dateFormat := cfg.UI.DateFormat
	if dateFormat == "" {
		dateFormat = domain.DefaultDateFormat
	}

	palette := PaletteFor(cfg.UI.Color)
	styles := NewStyles(palette)
	delegate := newTaskDelegate(styles, dateFormat)
	taskList := newListModel(delegate)

	m := &Model{
		container:  c,
		list:       list,
		filters:    domain.AllFilters(),
		mode:       ModeNormal,
		keys:       DefaultKeyMap(),
		styles:     styles,
		palette:    palette,
		help:       help.New(),
		taskList:   taskList,
		titleInput: ti,
		descInput:  di,
		editInput:  ei,
	}
	m.refresh()
	return m
}

func newListModel(delegate taskDelegate) list.Model {
	taskList := list.New([]list.Item{}, delegate, 0, 0)
	taskList.SetShowTitle(false)
	taskList.SetShowStatusBar(false)
	taskList.SetShowHelp(false)
	taskList.SetShowPagination(false)
	taskList.SetFilteringEnabled(false)
	taskList.DisableQuitKeybindings()
	return taskList
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Filter returns the active view.
func (m *Model) Filter() domain.Filter {
	return m.filters[m.filterIndex]
}

// Dirty reports whether the list changed since the last save.
func (m *Model) Dirty() bool {
	return m.rev != m.savedRev
}

// SelectedTask returns the currently selected task and its list index.
func (m *Model) SelectedTask() (domain.Entry, bool) {
	ti, ok := m.taskList.SelectedItem().(taskItem)
	if !ok {
		return domain.Entry{}, false
	}
	index, ok := m.list.IndexOf(ti.entry.Task.ID)
	if !ok {
		return domain.Entry{}, false
	}
	task, _ := m.list.Get(index)
	return domain.Entry{Task: task, Index: index}, true
}

// refresh rebuilds the list items from the active view, keeping the selection on the same task.
func (m *Model) refresh() {
	prev := m.taskList.Index()
	entries := m.list.Entries(m.Filter())
	items := make([]list.Item, 0, len(entries))
	selected := -1
	for i, e := range entries {
		items = append(items, taskItem{entry: e})
		if e.Task.ID == m.selectedID {
			selected = i
		}
	}
	m.taskList.SetItems(items)

	switch {
	case len(items) == 0:
		m.selectedID = ""
		return
	case selected < 0:
		selected = min(prev, len(items)-1)
	}
	m.taskList.Select(selected)
	m.syncSelection()
}

// syncSelection remembers the task under the cursor.
func (m *Model) syncSelection() {
	if ti, ok := m.taskList.SelectedItem().(taskItem); ok {
		m.selectedID = ti.entry.Task.ID
	}
}

// mutated records a successful change.
func (m *Model) mutated(status string) {
	m.rev++
	m.status = status
	m.refresh()
}

// completeSelected marks the selected task as completed.
func (m *Model) completeSelected() {
	entry, ok := m.SelectedTask()
	if !ok {
		return
	}
	out, err := m.container.CompleteTaskUseCase(m.list).Execute(context.Background(), usecase.CompleteTaskInput{
		Index: entry.Index,
	})
	if err != nil {
		m.err = err
		return
	}
	m.mutated(fmt.Sprintf("Completed %q", out.Task.Title))
}

// cyclePriority moves the selected task to the next priority level.
func (m *Model) cyclePriority() {
	entry, ok := m.SelectedTask()
	if !ok {
		return
	}
	next := entry.Task.Preference.Next()
	out, err := m.container.EditTaskUseCase(m.list).Execute(context.Background(), usecase.EditTaskInput{
		Index:      entry.Index,
		Preference: &next,
	})
	if err != nil {
		m.err = err
		return
	}
	m.mutated(fmt.Sprintf("Priority of %q: %s", out.Task.Title, out.Task.Preference.Display()))
}

// deleteTask removes the task with the given ID.
func (m *Model) deleteTask(id string) {
	index, ok := m.list.IndexOf(id)
	if !ok {
		m.err = domain.ErrTaskNotFound
		return
	}
	out, err := m.container.RemoveTaskUseCase(m.list).Execute(context.Background(), usecase.RemoveTaskInput{
		Index: index,
	})
	if err != nil {
		m.err = err
		return
	}
	m.mutated(fmt.Sprintf("Deleted %q", out.Task.Title))
}

// createTask appends a task and selects it, switching to a view that shows it.
func (m *Model) createTask(title, desc string) {
	out, err := m.container.AddTaskUseCase(m.list).Execute(context.Background(), usecase.AddTaskInput{
		Title:       title,
		Description: desc,
	})
	if err != nil {
		m.err = err
		return
	}
	if !m.Filter().Match(&out.Task) {
		m.filterIndex = 0
	}
	m.selectedID = out.Task.ID
	m.mutated(fmt.Sprintf("Added %q", out.Task.Title))
}

// renameTask changes the title of the task with the given ID.
func (m *Model) renameTask(id, title string) {
	index, ok := m.list.IndexOf(id)
	if !ok {
		m.err = domain.ErrTaskNotFound
		return
	}
	out, err := m.container.EditTaskUseCase(m.list).Execute(context.Background(), usecase.EditTaskInput{
		Index: index,
		Title: &title,
	})
	if err != nil {
		m.err = err
		return
	}
	m.mutated(fmt.Sprintf("Renamed to %q", out.Task.Title))
}

// startSave issues a save unless one is already in flight.
// At most one save runs at a time so results arrive in revision order.
func (m *Model) startSave() tea.Cmd {
	if m.saving {
		return nil
	}
	m.saving = true
	return m.saveList()
}

// saveList returns a command that writes a snapshot of the list.
func (m *Model) saveList() tea.Cmd {
	snapshot := m.list.Clone()
	rev := m.rev
	uc := m.container.SaveListUseCase()
	return func() tea.Msg {
		out, err := uc.Execute(context.Background(), usecase.SaveListInput{List: snapshot})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgSaved{Path: out.Path, Count: out.Count, Rev: rev}
	}
}

// clearStatusAfter schedules the status line to be cleared.
func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return MsgClearStatus{}
	})
}

// updateLayoutSizes recalculates component sizes after a resize.
func (m *Model) updateLayoutSizes() {
	// Header, tabs, status line and footer take 7 lines; the app frame adds 2 columns per side.
	listHeight := max(m.height-7, 3)
	listWidth := max(m.width-4, 20)
	m.taskList.SetSize(listWidth, listHeight)

	inputWidth := max(min(m.width-12, 80), 20)
	m.titleInput.Width = inputWidth
	m.descInput.Width = inputWidth
	m.editInput.Width = inputWidth
}
