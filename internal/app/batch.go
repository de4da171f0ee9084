package app

import (
	"context"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/zombietown/internal/cli"
	"github.com/agbru/zombietown/internal/config"
	apperrors "github.com/agbru/zombietown/internal/errors"
	"github.com/agbru/zombietown/internal/logging"
	"github.com/agbru/zombietown/internal/metrics"
	"github.com/agbru/zombietown/internal/orchestration"
	"github.com/agbru/zombietown/internal/schedule"
)

// runBatch executes the batch with the CLI (or null) display sink,
// optionally serving Prometheus metrics alongside it.
func (a *Application) runBatch(ctx context.Context, out io.Writer) int {
	var sink orchestration.DisplaySink
	switch a.Config.Display {
	case config.DisplayNone:
		sink = orchestration.NullSink{}
	default:
		sink = cli.NewSink(out, a.Config.Quiet)
	}

	opts := []orchestration.Option{orchestration.WithLogger(a.Logger)}

	var m *metrics.Metrics
	if a.Config.MetricsAddr != "" {
		m = metrics.New()
		opts = append(opts, orchestration.WithObserver(m))
	}

	// Per-day lines already show activity; the spinner covers the modes
	// where nothing else moves.
	var progress *cli.BatchProgress
	if a.Config.Quiet || a.Config.Display == config.DisplayNone {
		progress = cli.NewBatchProgress(a.Config.Simulations, a.ErrWriter)
		opts = append(opts, orchestration.WithObserver(progress))
	}

	orch, err := orchestration.New(
		orchestration.BatchConfig{
			Houses:  a.Config.Houses,
			Runs:    a.Config.Simulations,
			MaxDays: a.Config.MaxDays,
		},
		sink,
		schedule.NewTicker(a.Config.Interval()),
		orchestration.SeededFactory(a.Config.Seed),
		opts...,
	)
	if err != nil {
		a.Logger.Error("invalid batch configuration", logging.Err(err))
		return apperrors.ExitCodeForError(err)
	}

	if progress != nil {
		progress.Start()
		defer progress.Stop()
	}

	serveCtx, stopServe := context.WithCancel(ctx)
	defer stopServe()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer stopServe()
		_, err := orch.Run(ctx)
		return err
	})
	if m != nil {
		g.Go(func() error {
			return m.Serve(serveCtx, a.Config.MetricsAddr, a.Logger)
		})
	}

	if err := g.Wait(); err != nil {
		if apperrors.IsContextError(err) {
			a.Logger.Warn("batch interrupted", logging.Err(err))
		} else {
			a.Logger.Error("batch failed", logging.Err(err))
		}
		return apperrors.ExitCodeForError(err)
	}
	return apperrors.ExitSuccess
}
