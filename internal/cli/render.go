package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/tui"
)

// renderer prints tasks to a writer.
// Styles degrade to plain text when the writer is not a terminal or color is disabled.
type renderer struct {
	w          io.Writer
	index      lipgloss.Style
	title      lipgloss.Style
	label      lipgloss.Style
	muted      lipgloss.Style
	status     map[domain.Status]lipgloss.Style
	preference map[domain.Preference]lipgloss.Style
	dateFormat string
}

func newRenderer(w io.Writer, cfg *domain.Config) *renderer {
	lr := lipgloss.NewRenderer(w)
	p := tui.PaletteFor(cfg.UI.Color)
	fg := func(c lipgloss.Color) lipgloss.Style { return lr.NewStyle().Foreground(c) }

	dateFormat := cfg.UI.DateFormat
	if dateFormat == "" {
		dateFormat = domain.DefaultDateFormat
	}

	return &renderer{
		w:     w,
		index: fg(p.Muted),
		title: lr.NewStyle().Bold(cfg.UI.Color),
		label: fg(p.Muted),
		muted: fg(p.Muted),
		status: map[domain.Status]lipgloss.Style{
			domain.StatusPending:   fg(p.Pending),
			domain.StatusCompleted: fg(p.Completed),
		},
		preference: map[domain.Preference]lipgloss.Style{
			domain.PreferenceHigh:   fg(p.High),
			domain.PreferenceMedium: fg(p.Medium),
			domain.PreferenceLow:    fg(p.Low),
			domain.PreferenceNone:   fg(p.Muted),
		},
		dateFormat: dateFormat,
	}
}

func (r *renderer) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.w, format, args...)
}

func (r *renderer) println(s string) {
	_, _ = fmt.Fprintln(r.w, s)
}

func (r *renderer) formatTime(t time.Time) string {
	return t.Local().Format(r.dateFormat)
}

// Entries prints each entry as a block, or a note when there are none.
func (r *renderer) Entries(entries []domain.Entry, empty string) {
	if len(entries) == 0 {
		r.println(r.muted.Render(empty))
		return
	}
	for _, e := range entries {
		r.Entry(e)
	}
}

// Entry prints one task with its list index.
func (r *renderer) Entry(e domain.Entry) {
	r.printf("%s %s\n", r.index.Render(fmt.Sprintf("%d:", e.Index)), r.title.Render(e.Title))
	r.field("Status", r.status[e.Status].Render(e.Status.Display()))
	r.field("Priority", r.preference[e.Preference].Render(e.Preference.Display()))
	r.field("Created", r.formatTime(e.CreatedAt))
	if e.CompletedAt != nil {
		r.field("Completed", r.formatTime(*e.CompletedAt))
	}
	if e.Description != "" {
		lines := strings.Split(e.Description, "\n")
		r.field("Description", lines[0])
		for _, line := range lines[1:] {
			r.printf("  %s %s\n", strings.Repeat(" ", len("Description:")), line)
		}
	}
	r.println("")
}

func (r *renderer) field(name, value string) {
	r.printf("  %s %s\n", r.label.Render(name+":"), value)
}
