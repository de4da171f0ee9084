//go:generate mockgen -source=interfaces.go -destination=mock_interfaces_test.go -package=orchestration

package orchestration

// DisplaySink receives the visual state of the batch. This interface
// decouples the orchestration layer from the presentation layer: the
// orchestrator reports what happened, implementations decide how (or
// whether) to show it.
type DisplaySink interface {
	// RenderDay receives a snapshot of the town after one day-step of the
	// given run. houses is indexed by house position; true means infected.
	RenderDay(run, day int, houses []bool)

	// RenderSummary receives the final batch summary, exactly once, after
	// the last run completed.
	RenderSummary(s Summary)
}

// NullSink is a no-op DisplaySink for quiet mode and testing.
type NullSink struct{}

// RenderDay discards the snapshot.
func (NullSink) RenderDay(run, day int, houses []bool) {}

// RenderSummary discards the summary.
func (NullSink) RenderSummary(s Summary) {}

// Observer receives batch lifecycle notifications. Implementations feed
// progress spinners, metrics collectors, and dashboards without the
// orchestrator depending on any of them.
type Observer interface {
	// RunStarted fires when run (zero-based) becomes the active run.
	RunStarted(run int)
	// RunCompleted fires after the run's day count has been recorded.
	RunCompleted(run, days int)
}

// ObserverFunc adapts a pair of functions to the Observer interface.
// Either function may be nil.
type ObserverFunc struct {
	OnRunStarted   func(run int)
	OnRunCompleted func(run, days int)
}

// RunStarted calls OnRunStarted if set.
func (o ObserverFunc) RunStarted(run int) {
	if o.OnRunStarted != nil {
		o.OnRunStarted(run)
	}
}

// RunCompleted calls OnRunCompleted if set.
func (o ObserverFunc) RunCompleted(run, days int) {
	if o.OnRunCompleted != nil {
		o.OnRunCompleted(run, days)
	}
}
