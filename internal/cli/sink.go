package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/agbru/zombietown/internal/format"
	"github.com/agbru/zombietown/internal/orchestration"
	"github.com/agbru/zombietown/internal/ui"
)

// House cells as rendered in the terminal.
const (
	infectedCell = "▓"
	cleanCell    = "░"
)

// Sink renders the town to a terminal: one line per day-step showing every
// house as an infected or clean cell, and a final summary sentence.
type Sink struct {
	out   io.Writer
	quiet bool
}

// Verify that Sink implements orchestration.DisplaySink.
var _ orchestration.DisplaySink = (*Sink)(nil)

// NewSink creates a CLI sink. When quiet is set, per-day rendering is
// suppressed and only the summary is written.
func NewSink(out io.Writer, quiet bool) *Sink {
	return &Sink{out: out, quiet: quiet}
}

// RenderDay writes one line with the run number, day counter and the full
// house row.
func (s *Sink) RenderDay(run, day int, houses []bool) {
	if s.quiet {
		return
	}

	var row strings.Builder
	for _, infected := range houses {
		if infected {
			row.WriteString(ui.ColorInfected())
			row.WriteString(infectedCell)
		} else {
			row.WriteString(ui.ColorClean())
			row.WriteString(cleanCell)
		}
	}
	row.WriteString(ui.ColorReset())

	fmt.Fprintf(s.out, "%srun %d  day %d%s  %s\n",
		ui.ColorSecondary(), run+1, day, ui.ColorReset(), row.String())
}

// RenderSummary writes the final batch summary sentence.
func (s *Sink) RenderSummary(sum orchestration.Summary) {
	fmt.Fprintf(s.out, "%sSimulation ran %d times. Town lifespan expectancy is %s days.%s\n",
		ui.ColorBold(), sum.Count, format.Days(sum.AverageDays), ui.ColorReset())
}
