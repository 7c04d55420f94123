package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/gradebook/internal/i18n"
	"github.com/riordanpawley/gradebook/internal/ui/statusbar"
)

// View renders the current state of the application
func (m Model) View() string {
	title := m.styles.Title.Render(m.localizer.Localize(i18n.KeyTitle))
	sections := []string{title, m.renderRoster()}

	// Toast sits above the status bar, right-aligned
	current, ok := m.toasts.Current()
	if ok {
		toastView := m.toastRenderer.Render(&current, m.width)
		sections = append(sections, lipgloss.PlaceHorizontal(m.width, lipgloss.Right, toastView))
	}

	sb := statusbar.New(m.mode, m.width, m.styles).
		WithHints(m.keys.Hints(m.mode, ok))
	if ok {
		sb = sb.WithToast(m.localizer.Localize(i18n.KeyToastActive))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, sections...)

	// Pin the status bar to the bottom when the body leaves room
	if gap := m.height - lipgloss.Height(body) - 1; gap > 0 {
		body += strings.Repeat("\n", gap)
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, sb.Render())
}

func (m Model) renderRoster() string {
	if len(m.roster) == 0 {
		return m.styles.Empty.Render(m.localizer.Localize(i18n.KeyEmptyRoster))
	}

	pos := m.nav.GetPosition(m.roster)
	rows := make([]string, 0, len(m.roster))
	for i, s := range m.roster {
		rows = append(rows, m.grades.RenderRow(s, pos.Valid && i == pos.Index, m.width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
