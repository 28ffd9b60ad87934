package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/runoshun/todo/internal/domain"
)

type taskItem struct {
	entry domain.Entry
}

func (t taskItem) FilterValue() string {
	return t.entry.Task.Title
}

// escapeNewlines replaces newline characters with spaces for single-line display.
func escapeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

type taskDelegate struct {
	styles     Styles
	dateFormat string
}

func newTaskDelegate(styles Styles, dateFormat string) taskDelegate {
	return taskDelegate{styles: styles, dateFormat: dateFormat}
}

func (d taskDelegate) Height() int {
	return 2
}

func (d taskDelegate) Spacing() int {
	return 1
}

func (d taskDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// prefixWidth is the width of "  > 999  ✓ !!!  " before the title.
const prefixWidth = 16

func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(taskItem)
	if !ok {
		return
	}
	task := ti.entry.Task
	selected := index == m.Index()

	indicator := " "
	if selected {
		indicator = d.styles.Cursor.Render(">")
	}

	maxTitleLen := m.Width() - prefixWidth - 2
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}
	title := escapeNewlines(task.Title)
	if runewidth.StringWidth(title) > maxTitleLen {
		title = runewidth.Truncate(title, maxTitleLen-3, "...")
	}

	titleStyle := d.styles.TaskTitle
	switch {
	case selected:
		titleStyle = d.styles.TaskTitleSelected
	case task.IsCompleted():
		titleStyle = d.styles.TaskTitleDone
	}

	line := "  " + indicator + " " +
		d.styles.TaskIndex.Render(fmt.Sprintf("%3d", ti.entry.Index)) + "  " +
		d.styles.StatusStyle(task.Status).Render(StatusIcon(task.Status)) + " " +
		d.styles.PriorityStyle(task.Preference).Render(PriorityBadge(task.Preference)) + "  " +
		titleStyle.Render(title)
	_, _ = fmt.Fprintln(w, line)

	detail := strings.Repeat(" ", prefixWidth) + task.CreatedAt.Local().Format(d.dateFormat)
	if task.CompletedAt != nil {
		detail += " → " + task.CompletedAt.Local().Format(d.dateFormat)
	}
	if task.Description != "" {
		detail += "  " + escapeNewlines(task.Description)
	}
	if runewidth.StringWidth(detail) > m.Width() && m.Width() > 10 {
		detail = runewidth.Truncate(detail, m.Width()-3, "...")
	}
	_, _ = fmt.Fprint(w, d.styles.TaskDesc.Render(detail))
}
