// Package schedule abstracts the recurring timer that drives day-steps.
// The core never owns a timer: a Scheduler is injected, so tests advance
// simulations without real time passing.
package schedule

import (
	"context"
	"time"
)

// TickFunc is invoked on every scheduler tick. Returning false stops the
// schedule; the scheduler guarantees no further invocations after that.
type TickFunc func() bool

// Scheduler repeatedly invokes a callback until the callback reports it is
// finished or the context ends. Implementations stop their underlying
// timer exactly once.
type Scheduler interface {
	// Repeat drives tick until it returns false (nil error) or ctx is
	// done (ctx.Err()).
	Repeat(ctx context.Context, tick TickFunc) error
}

// Ticker is the production scheduler, pacing ticks with a time.Ticker.
type Ticker struct {
	Interval time.Duration
}

// NewTicker creates a Ticker scheduler with the given interval. A
// non-positive interval degrades to an Immediate scheduler, since a zero
// ticker interval panics.
func NewTicker(interval time.Duration) Scheduler {
	if interval <= 0 {
		return Immediate{}
	}
	return Ticker{Interval: interval}
}

// Repeat invokes tick on every ticker tick until it reports done or the
// context is canceled. The ticker is released on return.
func (t Ticker) Repeat(ctx context.Context, tick TickFunc) error {
	ticker := time.NewTicker(t.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !tick() {
				return nil
			}
		}
	}
}

// Immediate invokes the callback back-to-back with no delay. Used for
// delay=0 configurations and by tests.
type Immediate struct{}

// Repeat invokes tick in a tight loop, checking the context between calls.
func (Immediate) Repeat(ctx context.Context, tick TickFunc) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if !tick() {
			return nil
		}
	}
}
