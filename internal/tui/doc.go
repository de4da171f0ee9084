// Package tui implements the live bubbletea dashboard: a town grid
// updated per day-step, run progress, and the final batch summary.
package tui
