package simulation

// DoneFunc receives the final day counter when a run reaches full infection.
// It is invoked exactly once per run.
type DoneFunc func(days int)

// Run owns one town of houses and advances it day by day until every house
// is infected. A run starts with one zombie and all houses clean; each
// day-step every zombie visits one uniformly random house, infecting it if
// it was clean. Every house infected during a step turns into a zombie for
// the following steps, so the zombie count never decreases.
//
// Run is not safe for concurrent use; the sequencing policy guarantees a
// single driver.
type Run struct {
	houses   []bool
	infected int
	zombies  int
	day      int
	done     bool
	src      Source
	onDone   DoneFunc
}

// NewRun creates a run with the given number of houses, all clean, one
// zombie and a day counter of zero. onDone may be nil. houses must be >= 1;
// configuration validation guarantees this upstream.
func NewRun(houses int, src Source, onDone DoneFunc) *Run {
	return &Run{
		houses:  make([]bool, houses),
		zombies: 1,
		src:     src,
		onDone:  onDone,
	}
}

// AdvanceOneDay performs one day-step: every current zombie visits one
// uniformly random house (with replacement, so several zombies may hit the
// same house), clean houses hit become infected, and the newly infected
// join the zombie population for subsequent days. When the last clean house
// falls, the run becomes terminal and the completion callback fires with
// the final day counter.
//
// Calling AdvanceOneDay on a terminal run is a no-op.
func (r *Run) AdvanceOneDay() {
	if r.done {
		return
	}

	r.day++
	newlyInfected := 0
	for z := 0; z < r.zombies; z++ {
		idx := r.src.IntN(len(r.houses))
		if !r.houses[idx] {
			r.houses[idx] = true
			newlyInfected++
		}
	}
	r.infected += newlyInfected
	r.zombies += newlyInfected

	if r.infected == len(r.houses) {
		r.done = true
		if r.onDone != nil {
			r.onDone(r.day)
		}
	}
}

// Done reports whether every house is infected.
func (r *Run) Done() bool { return r.done }

// Day returns the current day counter.
func (r *Run) Day() int { return r.day }

// Zombies returns the current zombie count.
func (r *Run) Zombies() int { return r.zombies }

// InfectedCount returns the number of infected houses.
func (r *Run) InfectedCount() int { return r.infected }

// Houses returns a snapshot of the town's infection states, indexed by
// house position. The slice is a copy; mutating it does not affect the run.
func (r *Run) Houses() []bool {
	snapshot := make([]bool, len(r.houses))
	copy(snapshot, r.houses)
	return snapshot
}
