package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/todo/internal/domain"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.mode {
	case ModeHelp:
		content = m.viewHelp()
	case ModeNormal, ModeConfirm, ModeInputTitle, ModeInputDesc, ModeEditTitle:
		content = m.viewMain()
	}

	return m.styles.App.Render(content)
}

// viewMain renders the main task list view.
func (m *Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")

	if len(m.taskList.Items()) == 0 {
		b.WriteString(m.viewEmptyState())
	} else {
		b.WriteString(m.taskList.View())
	}

	// Dialogs/overlays
	switch m.mode {
	case ModeNormal, ModeHelp:
		// No overlay for these modes
	case ModeConfirm:
		b.WriteString("\n")
		b.WriteString(m.viewConfirmDialog())
	case ModeInputTitle:
		b.WriteString("\n")
		b.WriteString(m.viewTitleInput())
	case ModeInputDesc:
		b.WriteString("\n")
		b.WriteString(m.viewDescInput())
	case ModeEditTitle:
		b.WriteString("\n")
		b.WriteString(m.viewEditInput())
	}

	b.WriteString("\n")
	b.WriteString(m.viewStatusLine())
	b.WriteString("\n")
	b.WriteString(m.viewFooter())

	return b.String()
}

// viewHeader renders the title with the task counts right-aligned.
func (m *Model) viewHeader() string {
	title := m.styles.HeaderText.Render("Tasks")
	if m.Dirty() {
		title += lipgloss.NewStyle().Foreground(m.palette.Medium).Render(" [modified]")
	}

	countText := fmt.Sprintf("showing %d of %d tasks", len(m.taskList.Items()), m.list.Len())
	rightText := lipgloss.NewStyle().Foreground(m.palette.Muted).Render(countText)

	headerWidth := max(m.width-6, 40)
	spacing := max(headerWidth-lipgloss.Width(title)-lipgloss.Width(rightText), 1)

	return m.styles.Header.Render(title + strings.Repeat(" ", spacing) + rightText)
}

// viewTabs renders one tab per view with its task count.
func (m *Model) viewTabs() string {
	tabs := make([]string, 0, len(m.filters))
	for i, f := range m.filters {
		label := fmt.Sprintf("%s (%d)", f.Display(), len(m.list.Entries(f)))
		if i == m.filterIndex {
			tabs = append(tabs, m.styles.TabSelected.Render(label))
			continue
		}
		tabs = append(tabs, m.styles.Tab.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// viewEmptyState renders the placeholder for an empty view.
func (m *Model) viewEmptyState() string {
	msg := "No tasks yet."
	if m.Filter() != domain.FilterAll {
		msg = "No tasks in this view."
	}
	hint := m.styles.FooterKey.Render("n") + m.styles.Footer.Render(" to create a task")
	return m.styles.TaskDesc.Render(msg) + "\n" + hint + "\n"
}

// viewConfirmDialog renders the confirmation dialog.
func (m *Model) viewConfirmDialog() string {
	var titleText, prompt string
	color := m.palette.Error

	switch m.confirmAction {
	case ConfirmNone:
		return ""
	case ConfirmDelete:
		target := "task"
		if index, ok := m.list.IndexOf(m.confirmID); ok {
			task, _ := m.list.Get(index)
			target = fmt.Sprintf("task %d %q", index, task.Title)
		}
		titleText = fmt.Sprintf("Delete %s?", target)
		prompt = "This action cannot be undone."
	case ConfirmQuitUnsaved:
		titleText = "Quit without saving?"
		prompt = "Changes since the last save will be lost."
		if m.err != nil {
			prompt = m.err.Error() + "\n" + prompt
		}
	}

	title := m.styles.DialogTitle.Foreground(color).Render(titleText)
	yesBtn := m.styles.HelpKey.Render("[ y ] Confirm")
	noBtn := m.styles.Footer.Render("[ n ] Cancel")
	buttons := lipgloss.JoinHorizontal(lipgloss.Left, yesBtn, "  ", noBtn)

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		m.styles.DialogPrompt.Render(prompt),
		"",
		buttons,
	)

	return m.styles.Dialog.BorderForeground(color).Render(content)
}

// viewTitleInput renders the first step of the new task dialog.
func (m *Model) viewTitleInput() string {
	return m.viewInputDialog("◆ New Task", "Step 1 of 2", "Title", m.titleInput.View(), "next")
}

// viewDescInput renders the second step of the new task dialog.
func (m *Model) viewDescInput() string {
	return m.viewInputDialog("◆ New Task", "Step 2 of 2", "Description", m.descInput.View(), "create")
}

// viewEditInput renders the rename dialog.
func (m *Model) viewEditInput() string {
	return m.viewInputDialog("◆ Edit Task", "", "Title", m.editInput.View(), "save")
}

func (m *Model) viewInputDialog(heading, step, label, input, enterHint string) string {
	lines := []string{m.styles.DialogTitle.Render(heading)}
	if step != "" {
		lines = append(lines, m.styles.Footer.Render(step))
	}
	hint := m.styles.FooterKey.Render("enter") + m.styles.Footer.Render(" "+enterHint+"  ") +
		m.styles.FooterKey.Render("esc") + m.styles.Footer.Render(" cancel")
	lines = append(lines, "", m.styles.InputPrompt.Render(label), input, "", hint)

	return m.styles.Dialog.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// viewStatusLine renders the error or the last status message.
func (m *Model) viewStatusLine() string {
	switch {
	case m.err != nil && m.confirmAction != ConfirmQuitUnsaved:
		return m.styles.ErrorMsg.Render("Error: " + m.err.Error())
	case m.quitting:
		return m.styles.StatusMsg.Render("Saving...")
	case m.status != "":
		return m.styles.StatusMsg.Render(m.status)
	}
	return ""
}

// viewFooter renders the short help for normal mode.
func (m *Model) viewFooter() string {
	if m.mode != ModeNormal {
		// Hints are shown in the dialogs themselves
		return ""
	}
	return m.styles.Footer.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}

// viewHelp renders the full key reference.
func (m *Model) viewHelp() string {
	title := m.styles.HeaderText.Render("KEYBOARD SHORTCUTS")
	content := m.help.FullHelpView(m.keys.FullHelp())
	hint := m.styles.FooterKey.Render("?") + m.styles.Footer.Render(" close help")

	return m.styles.Dialog.
		BorderForeground(m.palette.Primary).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, "", content, "", hint))
}
