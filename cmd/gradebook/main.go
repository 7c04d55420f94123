// Package main provides the entry point for the gradebook TUI.
//
// Usage:
//
//	gradebook [-locale tag] [list]
//
// With no command the interactive roster opens. "list" prints the roster
// and exits. Settings come from .gradebook.yaml and GRADEBOOK_* variables.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/gradebook/internal/app"
	"github.com/riordanpawley/gradebook/internal/cli"
	"github.com/riordanpawley/gradebook/internal/config"
)

func main() {
	locale := flag.String("locale", "", "BCP 47 locale for labels (overrides config)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *locale != "" {
		cfg.Locale = *locale
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	logger, closeLog, err := cli.NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(cfg, flag.Args(), cli.NewDependencies(cfg, logger)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

func run(cfg *config.Config, args []string, deps *cli.Dependencies) error {
	if len(args) > 0 {
		switch args[0] {
		case "list":
			return cli.ListCommand(deps, os.Stdout)
		default:
			return fmt.Errorf("unknown command %q", args[0])
		}
	}

	model := app.New(cfg, app.WithLocalizer(deps.Localizer), app.WithLogger(deps.Logger))
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
