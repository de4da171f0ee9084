package tui

import (
	"time"

	"github.com/agbru/zombietown/internal/orchestration"
	"github.com/agbru/zombietown/internal/sysmon"
)

// DayMsg carries one day-step snapshot from the orchestrator goroutine.
type DayMsg struct {
	Run    int
	Day    int
	Houses []bool
}

// RunStartedMsg signals that a run became active.
type RunStartedMsg struct {
	Run int
}

// RunCompletedMsg signals that a run completed with its final day count.
type RunCompletedMsg struct {
	Run  int
	Days int
}

// SummaryMsg carries the final batch summary.
type SummaryMsg struct {
	Summary orchestration.Summary
}

// BatchErrorMsg signals that the batch aborted.
type BatchErrorMsg struct {
	Err error
}

// sysmonTickMsg triggers a system stats refresh.
type sysmonTickMsg time.Time

// sysmonStatsMsg carries a fresh sample.
type sysmonStatsMsg sysmon.Stats
