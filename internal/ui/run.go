package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"todo/internal/controller"
)

// ErrInternal wraps an unexpected condition that ended the session.
var ErrInternal = errors.New("internal")

// Run shows the window until the user exits or ctx is cancelled.
// A non-nil error wrapping ErrInternal means the session ended on an
// unexpected condition; the task list was not saved.
func Run(ctx context.Context, ctl *controller.Controller, logger *slog.Logger) error {
	m := New(ctx, ctl, WithLogger(logger))
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	return sessionError(ctx, final, err, logger)
}

// sessionError turns the program's outcome into Run's result.
// Cancellation of ctx, as on SIGTERM, ends the session like an exit without
// saving.
func sessionError(ctx context.Context, final tea.Model, err error, logger *slog.Logger) error {
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			logger.Info("window closed by signal, unsaved changes discarded", "cause", ctx.Err())
			return nil
		}
		return err
	}
	if fm, ok := final.(*Model); ok && fm.Err() != nil {
		return fmt.Errorf("%w: %w", ErrInternal, fm.Err())
	}
	return nil
}
