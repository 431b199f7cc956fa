package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/Veraticus/hashid/internal/classification"
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive identification screen and blocks until the
// user quits or ctx is canceled.
func Run(ctx context.Context, identifier *classification.Identifier, opts ...Option) error {
	if identifier == nil {
		return fmt.Errorf("identifier is required")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if cfg.Input != nil {
		programOpts = append(programOpts, tea.WithInput(cfg.Input))
	}
	if cfg.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(cfg.Output))
	}

	program := tea.NewProgram(newModel(identifier, cfg), programOpts...)
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
