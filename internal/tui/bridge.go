package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/zombietown/internal/orchestration"
)

// programRef is a shared reference to the tea.Program.
// Because bubbletea copies the model on every Update, we need a pointer
// that survives copies so the bridge goroutines can send messages.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

// SetProgram sets the tea.Program reference (thread-safe).
func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send sends a message to the bubbletea program (thread-safe).
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// Sink implements orchestration.DisplaySink by forwarding snapshots as
// bubbletea messages.
type Sink struct {
	ref *programRef
}

// Verify interface compliance.
var _ orchestration.DisplaySink = (*Sink)(nil)

// RenderDay sends a DayMsg to the dashboard.
func (s *Sink) RenderDay(run, day int, houses []bool) {
	s.ref.Send(DayMsg{Run: run, Day: day, Houses: houses})
}

// RenderSummary sends the final summary to the dashboard.
func (s *Sink) RenderSummary(sum orchestration.Summary) {
	s.ref.Send(SummaryMsg{Summary: sum})
}

// Observer implements orchestration.Observer by forwarding run lifecycle
// events as bubbletea messages.
type Observer struct {
	ref *programRef
}

// Verify interface compliance.
var _ orchestration.Observer = (*Observer)(nil)

// RunStarted sends a RunStartedMsg to the dashboard.
func (o *Observer) RunStarted(run int) {
	o.ref.Send(RunStartedMsg{Run: run})
}

// RunCompleted sends a RunCompletedMsg to the dashboard.
func (o *Observer) RunCompleted(run, days int) {
	o.ref.Send(RunCompletedMsg{Run: run, Days: days})
}
