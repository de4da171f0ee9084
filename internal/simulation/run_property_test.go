package simulation

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// runToCompletion drives a run until done, bailing out past a generous
// bound so a broken implementation fails instead of hanging the suite.
func runToCompletion(r *Run, maxSteps int) bool {
	for steps := 0; steps < maxSteps; steps++ {
		r.AdvanceOneDay()
		if r.Done() {
			return true
		}
	}
	return false
}

// TestTermination_PropertyBased verifies that for all N >= 1 a run with a
// real uniform source terminates after a finite number of day-steps.
// Termination is guaranteed because the zombie count only grows, so the
// probability of covering every house rises each step.
func TestTermination_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("run terminates for any town size", prop.ForAll(
		func(houses int, seed uint64) bool {
			if seed == 0 {
				seed = 1
			}
			r := NewRun(houses, NewSource(seed), nil)
			return runToCompletion(r, 1_000_000)
		},
		gen.IntRange(1, 64),
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

// TestMonotonicity_PropertyBased verifies the step invariants over random
// towns and seeds: day +1 per step, zombies non-decreasing, infected count
// non-decreasing and equal to N exactly at and after completion.
func TestMonotonicity_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("step invariants hold until completion", prop.ForAll(
		func(houses int, seed uint64) bool {
			if seed == 0 {
				seed = 1
			}
			r := NewRun(houses, NewSource(seed), nil)

			prevDay, prevZombies, prevInfected := 0, 1, 0
			for steps := 0; steps < 1_000_000; steps++ {
				r.AdvanceOneDay()
				if r.Day() != prevDay+1 {
					return false
				}
				if r.Zombies() < prevZombies || r.InfectedCount() < prevInfected {
					return false
				}
				if (r.InfectedCount() == houses) != r.Done() {
					return false
				}
				if r.Done() {
					return true
				}
				prevDay, prevZombies, prevInfected = r.Day(), r.Zombies(), r.InfectedCount()
			}
			return false
		},
		gen.IntRange(1, 48),
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

// TestCompletionDays_PropertyBased verifies that the day count delivered by
// the completion callback matches the run's final day counter.
func TestCompletionDays_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("callback carries the final day counter", prop.ForAll(
		func(houses int, seed uint64) bool {
			if seed == 0 {
				seed = 1
			}
			reported := -1
			r := NewRun(houses, NewSource(seed), func(days int) { reported = days })
			if !runToCompletion(r, 1_000_000) {
				return false
			}
			return reported == r.Day() && reported >= 1
		},
		gen.IntRange(1, 32),
		gen.UInt64(),
	))

	properties.TestingRun(t)
}
