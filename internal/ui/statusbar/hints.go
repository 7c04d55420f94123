package statusbar

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/riordanpawley/gradebook/internal/types"
)

// KeyMap holds every binding the roster screen responds to
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Top     key.Binding
	Bottom  key.Binding
	Edit    key.Binding
	Inc     key.Binding
	Dec     key.Binding
	Set     key.Binding
	Done    key.Binding
	Dismiss key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j", "down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Inc: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "raise"),
		),
		Dec: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "lower"),
		),
		Set: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "set"),
		),
		Done: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "done"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "dismiss"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Hints returns the bindings shown for the given mode
func (k KeyMap) Hints(mode types.Mode, toastActive bool) []key.Binding {
	var hints []key.Binding
	switch mode {
	case types.ModeNormal:
		hints = []key.Binding{k.Down, k.Up, k.Edit, k.Quit}
	case types.ModeEdit:
		hints = []key.Binding{k.Set, k.Inc, k.Dec, k.Done}
	}
	if toastActive {
		hints = append(hints, k.Dismiss)
	}
	return hints
}
