package simulation

import (
	"math/rand/v2"
	"time"
)

// Source supplies uniform random house indexes. Production runs use a
// PCG-backed source; tests substitute deterministic implementations.
type Source interface {
	// IntN returns a uniform random int in [0, n). n must be > 0.
	IntN(n int) int
}

// seedMix decorrelates the two PCG stream words derived from one seed.
const seedMix = 0x9e3779b97f4a7c15

// NewSource returns a PCG-backed Source. A zero seed derives one from the
// wall clock, so unseeded batches differ between invocations.
func NewSource(seed uint64) Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^seedMix))
}
