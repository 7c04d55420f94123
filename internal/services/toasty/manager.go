// Package toasty owns the single active toast and notifies observers when it changes.
//
// A Manager is not safe for concurrent use. All calls must come from the
// goroutine that runs the Bubble Tea update loop.
package toasty

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/gradebook/internal/types"
)

// Observer is called after every slot change with the new slot contents.
// current is nil when the slot is empty.
type Observer func(current *types.ToastyMessage)

// ChangedMsg is delivered to the program when the slot changes
type ChangedMsg struct {
	Current *types.ToastyMessage
}

// DismissMsg asks the manager to clear the toast identified by Generation.
// Timers started for an earlier toast carry an older generation and are ignored.
type DismissMsg struct {
	Generation uint64
}

// Manager holds at most one active toast
type Manager struct {
	current    *types.ToastyMessage
	generation uint64
	observers  map[int]Observer
	nextID     int
	logger     *slog.Logger
}

// New creates an idle Manager
func New(logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		observers: make(map[int]Observer),
		logger:    logger,
	}
}

// Show replaces whatever toast is active. There is no queue.
func (m *Manager) Show(message string, t types.ToastyType) {
	toast := types.NewToastyMessage(message, t)
	if m.current != nil {
		m.logger.Debug("replacing toast", "previous", m.current.Message, "type", t)
	}
	m.current = &toast
	m.generation++
	m.logger.Debug("toast shown", "type", t, "generation", m.generation)
	m.notify()
}

// ShowError is Show with ToastyError
func (m *Manager) ShowError(message string) {
	m.Show(message, types.ToastyError)
}

// Dismiss clears the slot. Calling it while idle does nothing.
func (m *Manager) Dismiss() {
	if m.current == nil {
		return
	}
	m.current = nil
	m.logger.Debug("toast dismissed", "generation", m.generation)
	m.notify()
}

// HasToast reports whether a toast is active
func (m *Manager) HasToast() bool {
	return m.current != nil
}

// Current returns the active toast, if any
func (m *Manager) Current() (types.ToastyMessage, bool) {
	if m.current == nil {
		return types.ToastyMessage{}, false
	}
	return *m.current, true
}

// Generation increments on every Show
func (m *Manager) Generation() uint64 {
	return m.generation
}

// Subscribe registers fn and returns a function that removes it
func (m *Manager) Subscribe(fn Observer) func() {
	id := m.nextID
	m.nextID++
	m.observers[id] = fn
	return func() {
		delete(m.observers, id)
	}
}

// DismissAfter schedules a DismissMsg for the active toast if its type
// auto-dismisses. Returns nil when no toast is active or the type needs
// a manual dismiss.
func (m *Manager) DismissAfter() tea.Cmd {
	if m.current == nil || !m.current.Type.AutoDismiss() {
		return nil
	}
	gen := m.generation
	return tea.Tick(m.current.Type.Timeout(), func(time.Time) tea.Msg {
		return DismissMsg{Generation: gen}
	})
}

// HandleDismiss applies a DismissMsg, ignoring it when a newer toast has
// replaced the one it was scheduled for. Reports whether the slot changed.
func (m *Manager) HandleDismiss(msg DismissMsg) bool {
	if m.current == nil || msg.Generation != m.generation {
		return false
	}
	m.Dismiss()
	return true
}

// Changed returns a command that reports the current slot to the program
func (m *Manager) Changed() tea.Cmd {
	current := m.snapshot()
	return func() tea.Msg {
		return ChangedMsg{Current: current}
	}
}

func (m *Manager) notify() {
	for _, fn := range m.observers {
		fn(m.snapshot())
	}
}

// snapshot copies the slot so observers cannot mutate it
func (m *Manager) snapshot() *types.ToastyMessage {
	if m.current == nil {
		return nil
	}
	c := *m.current
	return &c
}
