package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/gradebook/internal/domain"
)

// Catppuccin Macchiato palette
var (
	// Base colors
	Base     = lipgloss.Color("#24273a")
	Mantle   = lipgloss.Color("#1e2030")
	Surface0 = lipgloss.Color("#363a4f")
	Surface1 = lipgloss.Color("#494d64")
	Surface2 = lipgloss.Color("#5b6078")
	Overlay0 = lipgloss.Color("#6e738d")
	Overlay1 = lipgloss.Color("#8087a2")
	Subtext0 = lipgloss.Color("#a5adcb")
	Text     = lipgloss.Color("#cad3f5")

	// Accent colors
	Mauve    = lipgloss.Color("#c6a0f6")
	Red      = lipgloss.Color("#ed8796")
	Peach    = lipgloss.Color("#f5a97f")
	Yellow   = lipgloss.Color("#eed49f")
	Green    = lipgloss.Color("#a6da95")
	Blue     = lipgloss.Color("#8aadf4")
	Lavender = lipgloss.Color("#b7bdf8")
)

// ColorResolver turns a symbolic color name into a terminal color
type ColorResolver interface {
	Resolve(name domain.ColorName) lipgloss.Color
}

// Palette resolves symbolic names against a fixed table.
// Names missing from the table resolve to Fallback.
type Palette struct {
	Colors   map[domain.ColorName]lipgloss.Color
	Fallback lipgloss.Color
}

// DefaultPalette maps the grade and toast color names onto Catppuccin Macchiato
func DefaultPalette() Palette {
	return Palette{
		Colors: map[domain.ColorName]lipgloss.Color{
			domain.ColorRed:    Red,
			domain.ColorOrange: Peach,
			domain.ColorGreen:  Green,
			domain.ColorBlue:   Blue,
			domain.ColorGray:   Overlay0,
		},
		Fallback: Text,
	}
}

func (p Palette) Resolve(name domain.ColorName) lipgloss.Color {
	if c, ok := p.Colors[name]; ok {
		return c
	}
	return p.Fallback
}
