// Package simulation implements the zombie infection core: a town of
// houses advanced one day at a time until every house is infected.
// Scheduling and presentation are injected by callers, so the core runs
// without real time passing.
package simulation
