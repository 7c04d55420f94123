package gradeview

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/gradebook/internal/domain"
	"github.com/riordanpawley/gradebook/internal/i18n"
	"github.com/riordanpawley/gradebook/internal/ui/styles"
	"github.com/stretchr/testify/assert"
)

// recordingPalette remembers which names were resolved
type recordingPalette struct {
	resolved []domain.ColorName
}

func (p *recordingPalette) Resolve(name domain.ColorName) lipgloss.Color {
	p.resolved = append(p.resolved, name)
	return styles.Text
}

func TestRenderer_Label(t *testing.T) {
	r := New(styles.New(), styles.DefaultPalette(), i18n.NewCatalog("en"))

	tests := []struct {
		value int
		want  string
	}{
		{0, "Ungraded"},
		{2, "Poor"},
		{5, "Fair"},
		{8, "Good"},
		{10, "Excellent"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Label(domain.NewGrade(tt.value)))
		})
	}
}

func TestRenderer_Render(t *testing.T) {
	r := New(styles.New(), styles.DefaultPalette(), i18n.NewCatalog("es"))

	result := r.Render(domain.NewGrade(9))

	assert.Contains(t, result, " 9")
	assert.Contains(t, result, "Excelente")
}

func TestRenderer_UsesInjectedCollaborators(t *testing.T) {
	palette := &recordingPalette{}
	localizer := i18n.LocalizerFunc(func(key string) string { return "<" + key + ">" })
	r := New(styles.New(), palette, localizer)

	result := r.Render(domain.NewGrade(3))

	assert.Contains(t, result, "<grade.poor>")
	assert.Equal(t, []domain.ColorName{domain.ColorRed}, palette.resolved)
}

func TestRenderer_RenderRow(t *testing.T) {
	r := New(styles.New(), styles.DefaultPalette(), i18n.NewCatalog("en"))
	s := domain.NewStudent("Ada Lovelace", 7)

	for _, selected := range []bool{false, true} {
		result := r.RenderRow(s, selected, 60)

		assert.Contains(t, result, "Ada Lovelace")
		assert.Contains(t, result, "Good")
		assert.Equal(t, 60, lipgloss.Width(result))
	}
}
