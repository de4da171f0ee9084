package config

import (
	"flag"
	"io"
	"time"

	apperrors "github.com/agbru/zombietown/internal/errors"
)

// EnvPrefix is prepended to every environment variable key.
const EnvPrefix = "ZOMBIETOWN_"

// Display targets accepted by the --display flag.
const (
	DisplayCLI  = "cli"
	DisplayTUI  = "tui"
	DisplayNone = "none"
)

// Default configuration values.
const (
	DefaultSimulations = 10
	DefaultHouses      = 20
	DefaultDelayMS     = 50
	DefaultTimeout     = 10 * time.Minute
)

// AppConfig holds the application configuration, resolved from CLI flags,
// environment variables and defaults (in that priority order).
type AppConfig struct {
	// Simulations is the number of runs in the batch. Must be >= 1.
	Simulations int
	// Houses is the town size per run. Must be >= 1.
	Houses int
	// DelayMS is the inter-step delay in milliseconds. Presentation only;
	// zero disables pacing entirely.
	DelayMS int
	// Seed seeds the random streams; zero derives a seed from the clock.
	Seed uint64
	// MaxDays bounds a single run's day count; zero means unbounded.
	MaxDays int
	// Display selects the display sink: cli, tui or none.
	Display string
	// Quiet suppresses per-day rendering and progress output.
	Quiet bool
	// Verbose enables debug-level logging.
	Verbose bool
	// Timeout bounds the whole batch.
	Timeout time.Duration
	// MetricsAddr, when non-empty, serves Prometheus metrics on this address.
	MetricsAddr string
}

// Interval returns the inter-step delay as a duration.
func (c AppConfig) Interval() time.Duration {
	return time.Duration(c.DelayMS) * time.Millisecond
}

// ParseConfig parses command-line arguments into an AppConfig, applies
// environment variable overrides for flags not explicitly set, and
// validates the result.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := AppConfig{
		Simulations: DefaultSimulations,
		Houses:      DefaultHouses,
		DelayMS:     DefaultDelayMS,
		Display:     DisplayCLI,
		Timeout:     DefaultTimeout,
	}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.IntVar(&cfg.Simulations, "simulations", cfg.Simulations, "Number of simulation runs in the batch")
	fs.IntVar(&cfg.Simulations, "n", cfg.Simulations, "Alias for -simulations")
	fs.IntVar(&cfg.Houses, "houses", cfg.Houses, "Number of houses per run")
	fs.IntVar(&cfg.DelayMS, "delay", cfg.DelayMS, "Inter-step delay in milliseconds (0 runs flat out)")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed (0 derives one from the clock)")
	fs.IntVar(&cfg.MaxDays, "max-days", cfg.MaxDays, "Abort a run after this many days (0 = unbounded)")
	fs.StringVar(&cfg.Display, "display", cfg.Display, "Display target: cli, tui or none")
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "Suppress per-day output")
	fs.BoolVar(&cfg.Quiet, "q", cfg.Quiet, "Alias for -quiet")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Enable debug logging")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Alias for -verbose")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Batch execution timeout")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "Serve Prometheus metrics on this address (empty disables)")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks the configuration invariants. Rejecting a batch of zero
// runs here is what keeps the aggregator's summary away from a division
// by zero.
func (c AppConfig) Validate() error {
	if c.Simulations < 1 {
		return apperrors.ValidationError{Field: "simulations", Message: "must be >= 1"}
	}
	if c.Houses < 1 {
		return apperrors.ValidationError{Field: "houses", Message: "must be >= 1"}
	}
	if c.DelayMS < 0 {
		return apperrors.ValidationError{Field: "delay", Message: "must be >= 0"}
	}
	if c.MaxDays < 0 {
		return apperrors.ValidationError{Field: "max-days", Message: "must be >= 0"}
	}
	switch c.Display {
	case DisplayCLI, DisplayTUI, DisplayNone:
	default:
		return apperrors.NewConfigError("unknown display target %q (want cli, tui or none)", c.Display)
	}
	if c.Timeout <= 0 {
		return apperrors.ValidationError{Field: "timeout", Message: "must be positive"}
	}
	return nil
}
