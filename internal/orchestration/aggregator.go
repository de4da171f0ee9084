package orchestration

// Summary is the aggregate outcome of a batch: how many runs completed and
// the arithmetic mean of their day counts.
type Summary struct {
	// Count is the number of recorded runs.
	Count int
	// AverageDays is the mean day count across recorded runs.
	AverageDays float64
}

// Aggregator collects the day count at which each run completed, in run
// completion order. The sequence only ever grows; it is appended to from
// the single batch control flow, so no locking is required.
type Aggregator struct {
	days []int
}

// NewAggregator creates an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Record appends one run's final day count.
func (a *Aggregator) Record(days int) {
	a.days = append(a.days, days)
}

// Count returns the number of recorded runs.
func (a *Aggregator) Count() int {
	return len(a.days)
}

// Summarize computes the summary over all recorded runs. ok is false when
// nothing has been recorded; configuration validation guarantees at least
// one run upstream, so callers hitting ok=false have broken the contract.
func (a *Aggregator) Summarize() (s Summary, ok bool) {
	if len(a.days) == 0 {
		return Summary{}, false
	}
	sum := 0
	for _, d := range a.days {
		sum += d
	}
	return Summary{
		Count:       len(a.days),
		AverageDays: float64(sum) / float64(len(a.days)),
	}, true
}
