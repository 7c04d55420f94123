// Package gradeview renders grades as colored badges with localized labels.
package gradeview

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/gradebook/internal/domain"
	"github.com/riordanpawley/gradebook/internal/i18n"
	"github.com/riordanpawley/gradebook/internal/ui/styles"
)

// Renderer draws grades using injected color and localization lookups
type Renderer struct {
	styles    *styles.Styles
	colors    styles.ColorResolver
	localizer i18n.Localizer
}

// New creates a Renderer
func New(s *styles.Styles, colors styles.ColorResolver, localizer i18n.Localizer) *Renderer {
	return &Renderer{
		styles:    s,
		colors:    colors,
		localizer: localizer,
	}
}

// Label returns the localized description of g
func (r *Renderer) Label(g domain.Grade) string {
	return r.localizer.Localize(string(g.Description()))
}

// Render returns the badge and label for g, e.g. "[ 7 ] Good"
func (r *Renderer) Render(g domain.Grade) string {
	color := r.colors.Resolve(g.Color())
	badge := r.styles.GradeBadge(color).Render(fmt.Sprintf("%2d", g.Value()))
	label := r.styles.GradeLabel(color).Render(r.Label(g))
	return lipgloss.JoinHorizontal(lipgloss.Top, badge, label)
}

// RenderRow renders one roster line
func (r *Renderer) RenderRow(s domain.Student, selected bool, width int) string {
	name := r.styles.StudentName.Render(s.Name)
	row := lipgloss.JoinHorizontal(lipgloss.Top, name, r.Render(s.Grade))

	style := r.styles.Row
	if selected {
		style = r.styles.RowSelected
	}
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(row)
}
