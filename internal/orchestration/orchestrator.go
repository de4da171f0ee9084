package orchestration

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/agbru/zombietown/internal/errors"
	"github.com/agbru/zombietown/internal/logging"
	"github.com/agbru/zombietown/internal/schedule"
	"github.com/agbru/zombietown/internal/simulation"
)

// BatchConfig holds the parameters shared by every run of a batch.
type BatchConfig struct {
	// Houses is the town size for each run. Must be >= 1.
	Houses int
	// Runs is the number of simulations to execute. Must be >= 1.
	Runs int
	// MaxDays bounds a single run's day count. Zero means unbounded; a
	// bounded run that fails to reach full infection aborts the batch
	// with ErrRunBudgetExceeded.
	MaxDays int
}

// SourceFactory builds the random source for a given run index, so every
// run draws from an independent stream.
type SourceFactory func(run int) simulation.Source

// Phase identifies where the orchestrator is in its lifecycle.
type Phase int

// Orchestrator lifecycle phases. No transition skips a run and no run
// starts twice: idle -> running(0) -> running(1) -> ... -> complete.
const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseComplete
)

// String returns the phase name for logs and tests.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// State is the orchestrator's tagged lifecycle state: the phase plus the
// index of the active run while running.
type State struct {
	Phase Phase
	Run   int
}

// Orchestrator executes a batch of simulation runs strictly one after
// another, feeding each run's final day count into the aggregator and
// handing the summary to the display sink after the last run. At most one
// run is ever active: run k+1 is constructed only after run k's completion
// has been recorded.
type Orchestrator struct {
	cfg       BatchConfig
	sink      DisplaySink
	sched     schedule.Scheduler
	newSource SourceFactory
	agg       *Aggregator
	log       logging.Logger
	observers []Observer
	tracer    trace.Tracer
	state     State
}

// Option configures an Orchestrator during construction.
type Option func(*Orchestrator)

// WithLogger sets the structured logger.
func WithLogger(l logging.Logger) Option {
	return func(o *Orchestrator) { o.log = l }
}

// WithObserver registers a batch lifecycle observer. May be given several
// times; observers are notified in registration order.
func WithObserver(obs Observer) Option {
	return func(o *Orchestrator) { o.observers = append(o.observers, obs) }
}

// New creates an Orchestrator. The configuration is validated here so the
// batch can never reach Summarize with zero recorded runs. A nil sink
// renders nothing, a nil scheduler steps with no delay, and a nil source
// factory seeds an independent clock-seeded stream per run.
func New(cfg BatchConfig, sink DisplaySink, sched schedule.Scheduler, newSource SourceFactory, opts ...Option) (*Orchestrator, error) {
	if cfg.Runs < 1 {
		return nil, apperrors.ValidationError{Field: "numberOfSimulations", Message: "must be >= 1"}
	}
	if cfg.Houses < 1 {
		return nil, apperrors.ValidationError{Field: "numberOfHouses", Message: "must be >= 1"}
	}
	if cfg.MaxDays < 0 {
		return nil, apperrors.ValidationError{Field: "maxDays", Message: "must be >= 0"}
	}

	o := &Orchestrator{
		cfg:       cfg,
		sink:      sink,
		sched:     sched,
		newSource: newSource,
		agg:       NewAggregator(),
		log:       logging.Nop(),
		tracer:    otel.Tracer("zombietown/orchestration"),
		state:     State{Phase: PhaseIdle},
	}
	if o.sink == nil {
		o.sink = NullSink{}
	}
	if o.sched == nil {
		o.sched = schedule.Immediate{}
	}
	if o.newSource == nil {
		o.newSource = func(int) simulation.Source { return simulation.NewSource(0) }
	}
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

// State returns the current lifecycle state.
func (o *Orchestrator) State() State {
	return o.state
}

// Run executes the whole batch and returns its summary. Runs execute in
// sequence; a scheduler error (context cancellation) or an exhausted day
// budget aborts the batch without a summary, wrapped in a BatchError
// naming the active run.
func (o *Orchestrator) Run(ctx context.Context) (Summary, error) {
	ctx, span := o.tracer.Start(ctx, "batch",
		trace.WithAttributes(
			attribute.Int("batch.runs", o.cfg.Runs),
			attribute.Int("batch.houses", o.cfg.Houses),
		))
	defer span.End()

	o.log.Info("batch starting",
		logging.Int("runs", o.cfg.Runs),
		logging.Int("houses", o.cfg.Houses))

	for i := 0; i < o.cfg.Runs; i++ {
		o.state = State{Phase: PhaseRunning, Run: i}
		days, err := o.executeRun(ctx, i)
		if err != nil {
			o.log.Error("batch aborted", logging.Int("run", i), logging.Err(err))
			return Summary{}, apperrors.BatchError{Run: i, Cause: err}
		}

		o.agg.Record(days)
		for _, obs := range o.observers {
			obs.RunCompleted(i, days)
		}
		o.log.Info("run complete", logging.Int("run", i), logging.Int("days", days))
	}

	o.state = State{Phase: PhaseComplete, Run: o.cfg.Runs}

	summary, ok := o.agg.Summarize()
	if !ok {
		// Unreachable: Runs >= 1 is validated at construction.
		return Summary{}, apperrors.NewConfigError("no runs recorded")
	}
	o.sink.RenderSummary(summary)
	o.log.Info("batch complete",
		logging.Int("runs", summary.Count),
		logging.Float64("average_days", summary.AverageDays))
	return summary, nil
}

// executeRun drives a single simulation to completion under the scheduler
// and returns its final day count.
func (o *Orchestrator) executeRun(ctx context.Context, index int) (int, error) {
	ctx, span := o.tracer.Start(ctx, "run",
		trace.WithAttributes(attribute.Int("run.index", index)))
	defer span.End()

	for _, obs := range o.observers {
		obs.RunStarted(index)
	}

	completedDays := -1
	run := simulation.NewRun(o.cfg.Houses, o.newSource(index), func(days int) {
		completedDays = days
	})

	err := o.sched.Repeat(ctx, func() bool {
		run.AdvanceOneDay()
		o.sink.RenderDay(index, run.Day(), run.Houses())
		if run.Done() {
			return false
		}
		if o.cfg.MaxDays > 0 && run.Day() >= o.cfg.MaxDays {
			return false
		}
		return true
	})
	if err != nil {
		return 0, err
	}
	if completedDays < 0 {
		return 0, apperrors.ErrRunBudgetExceeded
	}

	span.SetAttributes(attribute.Int("run.days", completedDays))
	return completedDays, nil
}
