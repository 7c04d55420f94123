package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds all the UI styles
type Styles struct {
	// Header
	Title lipgloss.Style

	// Roster
	Row         lipgloss.Style
	RowSelected lipgloss.Style
	StudentName lipgloss.Style
	Empty       lipgloss.Style

	// Badges
	GradeBadge func(color lipgloss.Color) lipgloss.Style
	GradeLabel func(color lipgloss.Color) lipgloss.Style

	// Status bar
	StatusBar   lipgloss.Style
	StatusMode  lipgloss.Style
	StatusHint  lipgloss.Style
	StatusToast lipgloss.Style

	// Toasts
	Toast     func(color lipgloss.Color) lipgloss.Style
	ToastHint lipgloss.Style
}

// New creates a new Styles instance with Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(Lavender).
			Bold(true).
			Padding(0, 1).
			MarginBottom(1),

		Row: lipgloss.NewStyle().
			Padding(0, 1),

		RowSelected: lipgloss.NewStyle().
			Background(Surface0).
			Padding(0, 1),

		StudentName: lipgloss.NewStyle().
			Foreground(Text).
			Width(24),

		Empty: lipgloss.NewStyle().
			Foreground(Overlay0).
			Italic(true).
			Padding(0, 1),

		GradeBadge: func(color lipgloss.Color) lipgloss.Style {
			return lipgloss.NewStyle().
				Foreground(Base).
				Background(color).
				Padding(0, 1).
				Bold(true)
		},

		GradeLabel: func(color lipgloss.Color) lipgloss.Style {
			return lipgloss.NewStyle().
				Foreground(color).
				PaddingLeft(1)
		},

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		StatusToast: lipgloss.NewStyle().
			Foreground(Red).
			Bold(true),

		Toast: func(color lipgloss.Color) lipgloss.Style {
			return lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(color).
				Foreground(color).
				Padding(0, 1)
		},

		ToastHint: lipgloss.NewStyle().
			Foreground(Overlay1).
			Italic(true),
	}
}
