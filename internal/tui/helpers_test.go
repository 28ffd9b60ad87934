package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/testutil"
)

var baseTime = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

// newTestModel builds a sized model over a list with one pending task per title.
func newTestModel(t *testing.T, titles ...string) (*Model, *testutil.MockStore) {
	t.Helper()

	store := testutil.NewMockStore()
	clock := &testutil.MockClock{NowTime: baseTime.Add(time.Hour)}
	cfg := domain.NewDefaultConfig()
	cfg.UI.Color = false
	c := app.NewWithDeps(app.Config{}, cfg, store, clock, nil)

	list := domain.NewTaskList()
	for i, title := range titles {
		list.Add(domain.NewTask(title, "", baseTime.Add(time.Duration(i)*time.Minute)))
	}

	m := New(c, list)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, store
}

// press sends a single key to the model and returns the resulting command.
func press(m *Model, k string) tea.Cmd {
	_, cmd := m.Update(keyMsg(k))
	return cmd
}

// typeText sends s one rune at a time.
func typeText(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

// isQuit reports whether cmd produces tea.QuitMsg.
func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func titlesOf(list *domain.TaskList) []string {
	titles := make([]string, 0, list.Len())
	for _, task := range list.Tasks() {
		titles = append(titles, task.Title)
	}
	return titles
}

func selectedTitle(t *testing.T, m *Model) string {
	t.Helper()
	entry, ok := m.SelectedTask()
	if !ok {
		return ""
	}
	return entry.Title
}
