// Package app contains the main application model and TEA implementation.
package app

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/gradebook/internal/config"
	"github.com/riordanpawley/gradebook/internal/domain"
	"github.com/riordanpawley/gradebook/internal/i18n"
	"github.com/riordanpawley/gradebook/internal/services/navigation"
	"github.com/riordanpawley/gradebook/internal/services/toasty"
	"github.com/riordanpawley/gradebook/internal/types"
	"github.com/riordanpawley/gradebook/internal/ui/gradeview"
	"github.com/riordanpawley/gradebook/internal/ui/statusbar"
	"github.com/riordanpawley/gradebook/internal/ui/styles"
	"github.com/riordanpawley/gradebook/internal/ui/toast"
)

// Re-export Mode type and constants for convenience
type Mode = types.Mode

const (
	ModeNormal = types.ModeNormal
	ModeEdit   = types.ModeEdit
)

// Model is the main application state
type Model struct {
	// Core data
	roster []domain.Student

	// Navigation
	nav *navigation.Service

	// UI state
	mode Mode
	keys statusbar.KeyMap

	// Toast slot, shared with the renderer through Current()
	toasts *toasty.Manager

	// Terminal size
	width  int
	height int

	// Presentation collaborators
	styles        *styles.Styles
	localizer     i18n.Localizer
	grades        *gradeview.Renderer
	toastRenderer *toast.ToastRenderer

	// Configuration
	config *config.Config

	// Logger
	logger *slog.Logger
}

// Option customizes a Model
type Option func(*options)

type options struct {
	localizer i18n.Localizer
	colors    styles.ColorResolver
	logger    *slog.Logger
}

// WithLocalizer replaces the built-in catalog
func WithLocalizer(l i18n.Localizer) Option {
	return func(o *options) { o.localizer = l }
}

// WithColors replaces the default palette
func WithColors(c styles.ColorResolver) Option {
	return func(o *options) { o.colors = c }
}

// WithLogger sets the logger used by the model and its toast manager
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New creates a new application model with the given config
func New(cfg *config.Config, opts ...Option) Model {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.localizer == nil {
		o.localizer = i18n.NewCatalog(cfg.Locale)
	}
	if o.colors == nil {
		o.colors = styles.DefaultPalette()
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	s := styles.New()

	return Model{
		roster:        cfg.Students(),
		nav:           navigation.NewService(),
		mode:          ModeNormal,
		keys:          statusbar.DefaultKeyMap(),
		toasts:        toasty.New(o.logger),
		styles:        s,
		localizer:     o.localizer,
		grades:        gradeview.New(s, o.colors, o.localizer),
		toastRenderer: toast.New(s, o.colors, o.localizer, cfg.Toast.MaxWidth),
		config:        cfg,
		logger:        o.logger,
	}
}

// Init returns the initial command for the application
func (m Model) Init() tea.Cmd {
	return nil
}

// Toasts exposes the toast manager so callers can observe it
func (m Model) Toasts() *toasty.Manager {
	return m.toasts
}

// Roster returns the current roster
func (m Model) Roster() []domain.Student {
	return m.roster
}

// Mode returns the current input mode
func (m Model) Mode() Mode {
	return m.mode
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case toasty.ChangedMsg:
		// The view owns auto-dismiss timing
		return m, m.toasts.DismissAfter()

	case toasty.DismissMsg:
		m.toasts.HandleDismiss(msg)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys (work in any mode)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// An active toast takes the dismiss key before the mode does
	if m.toasts.HasToast() && key.Matches(msg, m.keys.Dismiss) {
		m.toasts.Dismiss()
		return m, m.toasts.Changed()
	}

	switch m.mode {
	case ModeNormal:
		return m.handleNormalMode(msg)
	case ModeEdit:
		return m.handleEditMode(msg)
	default:
		return m, nil
	}
}

func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		m.nav.MoveDown(m.roster)
	case key.Matches(msg, m.keys.Up):
		m.nav.MoveUp(m.roster)
	case key.Matches(msg, m.keys.Top):
		m.nav.GetCursor().JumpToStart(m.roster)
	case key.Matches(msg, m.keys.Bottom):
		m.nav.GetCursor().JumpToEnd(m.roster)
	case key.Matches(msg, m.keys.Edit):
		if len(m.roster) == 0 {
			return m, m.showError(i18n.KeyEmptyRoster)
		}
		m.mode = ModeEdit
	}
	return m, nil
}

func (m Model) handleEditMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Done):
		m.mode = ModeNormal
	case key.Matches(msg, m.keys.Inc):
		return m.adjustGrade(1)
	case key.Matches(msg, m.keys.Dec):
		return m.adjustGrade(-1)
	case key.Matches(msg, m.keys.Set):
		return m.setGrade(int(msg.String()[0] - '0'))
	case msg.Type == tea.KeyRunes:
		return m, m.showError(i18n.KeyInvalidInput)
	}
	return m, nil
}

// adjustGrade moves the selected grade by delta. Hitting a bound leaves the
// grade alone and raises an error toast.
func (m Model) adjustGrade(delta int) (tea.Model, tea.Cmd) {
	pos := m.nav.GetPosition(m.roster)
	if !pos.Valid {
		return m, nil
	}

	current := m.roster[pos.Index].Grade
	next := current.Add(delta)
	if next == current {
		if delta > 0 {
			return m, m.showError(i18n.KeyGradeAtMax)
		}
		return m, m.showError(i18n.KeyGradeAtMin)
	}
	return m.setGrade(next.Value())
}

func (m Model) setGrade(raw int) (tea.Model, tea.Cmd) {
	pos := m.nav.GetPosition(m.roster)
	if !pos.Valid {
		return m, nil
	}

	student := m.roster[pos.Index]
	updated := student.WithGrade(domain.NewGrade(raw))
	m.roster[pos.Index] = updated
	m.logger.Debug("grade changed", "student", student.Name, "from", student.Grade.Value(), "to", updated.Grade.Value())
	return m, nil
}

// showError localizes key into the toast slot and reports the change
func (m Model) showError(messageKey string) tea.Cmd {
	m.toasts.ShowError(m.localizer.Localize(messageKey))
	return m.toasts.Changed()
}
