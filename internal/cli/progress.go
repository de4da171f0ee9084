package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/zombietown/internal/orchestration"
)

// SpinnerRefreshRate defines the refresh frequency of the batch spinner.
const SpinnerRefreshRate = 200 * time.Millisecond

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This allows the batch progress display to be decoupled from a specific
// spinner implementation, facilitating easier testing. It defines the
// essential controls: starting, stopping, and updating the status message.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner is a wrapper for the spinner.Spinner that implements the
// Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() {
	rs.s.Start()
}

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

// UpdateSuffix sets the text that is displayed after the spinner.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], SpinnerRefreshRate, options...)
	return &realSpinner{s}
}

// BatchProgress shows a spinner with the active run while a batch executes.
// It implements orchestration.Observer.
type BatchProgress struct {
	sp    Spinner
	total int
}

// Verify that BatchProgress implements orchestration.Observer.
var _ orchestration.Observer = (*BatchProgress)(nil)

// NewBatchProgress creates a spinner-backed progress display for a batch of
// total runs, writing to out.
func NewBatchProgress(total int, out io.Writer) *BatchProgress {
	return &BatchProgress{
		sp:    newSpinner(spinner.WithWriter(out)),
		total: total,
	}
}

// Start begins the spinner animation.
func (p *BatchProgress) Start() {
	p.sp.UpdateSuffix(fmt.Sprintf(" run 0/%d", p.total))
	p.sp.Start()
}

// Stop halts the spinner animation.
func (p *BatchProgress) Stop() {
	p.sp.Stop()
}

// RunStarted updates the spinner with the newly active run.
func (p *BatchProgress) RunStarted(run int) {
	p.sp.UpdateSuffix(fmt.Sprintf(" run %d/%d", run+1, p.total))
}

// RunCompleted updates the spinner with the completed run's day count.
func (p *BatchProgress) RunCompleted(run, days int) {
	p.sp.UpdateSuffix(fmt.Sprintf(" run %d/%d done in %d days", run+1, p.total, days))
}
