package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/registrar/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal UI.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	logPath := r.config.Logging.File
	if logPath == "" {
		logPath = "./tmp/registrar-tui.log"
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := r.openFileLogger(logPath)
	if err != nil {
		return err
	}
	r.SetLogger(fileLogger)
	r.registrar.SetLogger(fileLogger)

	model := ui.NewModel(r.registrar, fileLogger)
	p := tea.NewProgram(model, tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
