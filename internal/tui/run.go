package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/zombietown/internal/config"
	apperrors "github.com/agbru/zombietown/internal/errors"
	"github.com/agbru/zombietown/internal/logging"
	"github.com/agbru/zombietown/internal/orchestration"
	"github.com/agbru/zombietown/internal/schedule"
)

// Run launches the interactive dashboard, drives the batch underneath it,
// and blocks until the dashboard exits. Returns the process exit code.
func Run(ctx context.Context, cfg config.AppConfig, log logging.Logger, version string) int {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ref := &programRef{}
	sink := &Sink{ref: ref}
	obs := &Observer{ref: ref}

	orch, err := orchestration.New(
		orchestration.BatchConfig{
			Houses:  cfg.Houses,
			Runs:    cfg.Simulations,
			MaxDays: cfg.MaxDays,
		},
		sink,
		schedule.NewTicker(cfg.Interval()),
		orchestration.SeededFactory(cfg.Seed),
		orchestration.WithLogger(log),
		orchestration.WithObserver(obs),
	)
	if err != nil {
		log.Error("invalid batch configuration", logging.Err(err))
		return apperrors.ExitCodeForError(err)
	}

	model := NewModel(cfg, version, cancel)
	program := tea.NewProgram(model, tea.WithContext(ctx))
	ref.SetProgram(program)

	go func() {
		if _, err := orch.Run(ctx); err != nil {
			ref.Send(BatchErrorMsg{Err: err})
		}
	}()

	finalModel, err := program.Run()
	if err != nil {
		// A killed program means the outer context (timeout or signal)
		// ended the session.
		if errors.Is(err, tea.ErrProgramKilled) || apperrors.IsContextError(err) {
			return apperrors.ExitErrorCanceled
		}
		log.Error("dashboard failed", logging.Err(err))
		return apperrors.ExitErrorGeneric
	}

	if m, ok := finalModel.(Model); ok {
		return m.ExitCode()
	}
	return apperrors.ExitSuccess
}
