package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/riordanpawley/gradebook/internal/config"
	"github.com/riordanpawley/gradebook/internal/i18n"
)

// Dependencies holds all the services needed for CLI commands
type Dependencies struct {
	Config    *config.Config
	Localizer i18n.Localizer
	Logger    *slog.Logger
}

// NewDependencies creates a new Dependencies instance from config
func NewDependencies(cfg *config.Config, logger *slog.Logger) *Dependencies {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dependencies{
		Config:    cfg,
		Localizer: i18n.NewCatalog(cfg.Locale),
		Logger:    logger,
	}
}

// NewLogger builds the application logger. The TUI owns the terminal, so
// records go to cfg.File, or nowhere when it is unset. The returned close
// function is never nil.
func NewLogger(cfg config.LogConfig) (*slog.Logger, func() error, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(cfg.Level))); err != nil {
		return nil, nil, fmt.Errorf("failed to parse log level: %w", err)
	}

	if cfg.File == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})
	return slog.New(handler), f.Close, nil
}

// ListCommand prints the roster with each grade's localized label
func ListCommand(deps *Dependencies, w io.Writer) error {
	students := deps.Config.Students()
	deps.Logger.Info("listing roster", "students", len(students))

	if len(students) == 0 {
		_, err := fmt.Fprintln(w, deps.Localizer.Localize(i18n.KeyEmptyRoster))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tGRADE\tLABEL")
	fmt.Fprintln(tw, "----\t-----\t-----")

	for _, s := range students {
		label := deps.Localizer.Localize(string(s.Grade.Description()))
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Name, s.Grade, label)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write roster: %w", err)
	}
	return nil
}
