package statusbar

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/gradebook/internal/types"
	"github.com/riordanpawley/gradebook/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	mode   types.Mode
	width  int
	styles *styles.Styles
	hints  []key.Binding
	toast  string
}

// New creates a new StatusBar with the given mode, width, and styles
func New(mode types.Mode, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		mode:   mode,
		width:  width,
		styles: styles,
	}
}

// WithHints sets the key bindings listed after the mode badge
func (sb StatusBar) WithHints(hints []key.Binding) StatusBar {
	sb.hints = hints
	return sb
}

// WithToast marks that a toast is waiting, using label as the indicator text
func (sb StatusBar) WithToast(label string) StatusBar {
	sb.toast = label
	return sb
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	// Mode badge
	modeBadge := sb.styles.StatusMode.Render(" " + sb.mode.String() + " ")
	parts := []string{modeBadge}

	if sb.toast != "" {
		parts = append(parts, " ", sb.styles.StatusToast.Render("● "+sb.toast))
	}

	if len(sb.hints) > 0 {
		h := help.New()
		h.Styles.ShortKey = sb.styles.StatusHint.Bold(true)
		h.Styles.ShortDesc = sb.styles.StatusHint
		h.Styles.ShortSeparator = sb.styles.StatusHint
		separator := sb.styles.StatusHint.Render(" │ ")
		parts = append(parts, separator, h.ShortHelpView(sb.hints))
	}

	// Apply status bar style and fill width
	return sb.styles.StatusBar.Width(sb.width).Render(lipgloss.JoinHorizontal(lipgloss.Left, parts...))
}
