package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/zombietown/internal/config"
	apperrors "github.com/agbru/zombietown/internal/errors"
	"github.com/agbru/zombietown/internal/format"
	"github.com/agbru/zombietown/internal/orchestration"
	"github.com/agbru/zombietown/internal/sysmon"
)

// sysmonInterval paces system stat refreshes.
const sysmonInterval = time.Second

// Model is the root bubbletea model for the simulation dashboard.
type Model struct {
	cfg     config.AppConfig
	version string
	keymap  KeyMap
	cancel  context.CancelFunc

	width  int
	height int

	startTime time.Time
	endTime   time.Time

	run       int
	day       int
	houses    []bool
	completed []int
	summary   *orchestration.Summary
	err       error
	stats     sysmon.Stats

	done     bool
	exitCode int
}

// NewModel creates a dashboard model. cancel aborts the orchestrator when
// the user quits mid-batch.
func NewModel(cfg config.AppConfig, version string, cancel context.CancelFunc) Model {
	return Model{
		cfg:       cfg,
		version:   version,
		keymap:    DefaultKeyMap(),
		cancel:    cancel,
		startTime: time.Now(),
		exitCode:  apperrors.ExitSuccess,
	}
}

// ExitCode returns the exit code to report after the program finishes.
func (m Model) ExitCode() int { return m.exitCode }

func sysmonTick() tea.Cmd {
	return tea.Tick(sysmonInterval, func(t time.Time) tea.Msg {
		return sysmonTickMsg(t)
	})
}

func sampleSysmon() tea.Msg {
	return sysmonStatsMsg(sysmon.Sample())
}

// Init starts the system stats loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(sampleSysmon, sysmonTick())
}

// Update handles dashboard messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.Quit) {
			if !m.done {
				m.cancel()
				m.exitCode = apperrors.ExitErrorCanceled
			}
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case DayMsg:
		m.run, m.day, m.houses = msg.Run, msg.Day, msg.Houses

	case RunStartedMsg:
		m.run, m.day, m.houses = msg.Run, 0, nil

	case RunCompletedMsg:
		m.completed = append(m.completed, msg.Days)

	case SummaryMsg:
		s := msg.Summary
		m.summary = &s
		m.done = true
		m.endTime = time.Now()

	case BatchErrorMsg:
		m.err = msg.Err
		m.done = true
		m.endTime = time.Now()
		m.exitCode = apperrors.ExitCodeForError(msg.Err)

	case sysmonTickMsg:
		return m, tea.Batch(sampleSysmon, sysmonTick())

	case sysmonStatsMsg:
		m.stats = sysmon.Stats(msg)
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	var b strings.Builder

	header := headerStyle.Render(fmt.Sprintf("zombietown %s", m.version))
	stats := statsStyle.Render(fmt.Sprintf("elapsed %s  CPU %.0f%%  MEM %.0f%%  goroutines %d",
		format.FormatExecutionDuration(m.elapsed()),
		m.stats.CPUPercent, m.stats.MemPercent, m.stats.Goroutines))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, header, " ", stats))
	b.WriteString("\n\n")

	b.WriteString(townStyle.Render(m.renderTown()))
	b.WriteString("\n")

	b.WriteString(statusStyle.Render(m.renderStatus()))
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("batch failed: %v", m.err)))
		b.WriteString("\n")
	case m.summary != nil:
		b.WriteString(summaryStyle.Render(fmt.Sprintf(
			"Simulation ran %d times. Town lifespan expectancy is %s days.",
			m.summary.Count, format.Days(m.summary.AverageDays))))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("q: quit"))
	return b.String()
}

// elapsed returns the batch wall-clock time, frozen once the batch ends.
func (m Model) elapsed() time.Duration {
	if m.done {
		return m.endTime.Sub(m.startTime)
	}
	return time.Since(m.startTime)
}

// renderTown draws the house cells, wrapped to the terminal width.
func (m Model) renderTown() string {
	if len(m.houses) == 0 {
		return "waiting for the outbreak..."
	}

	perRow := m.width - 6
	if perRow < 10 {
		perRow = 10
	}

	var rows []string
	var row strings.Builder
	for i, infected := range m.houses {
		if infected {
			row.WriteString(infectedStyle.Render("▓"))
		} else {
			row.WriteString(cleanStyle.Render("░"))
		}
		if (i+1)%perRow == 0 {
			rows = append(rows, row.String())
			row.Reset()
		}
	}
	if row.Len() > 0 {
		rows = append(rows, row.String())
	}
	return strings.Join(rows, "\n")
}

// renderStatus summarizes the active run and past completions.
func (m Model) renderStatus() string {
	infected := 0
	for _, h := range m.houses {
		if h {
			infected++
		}
	}

	status := fmt.Sprintf("run %d/%d  day %d  infected %d/%d",
		m.run+1, m.cfg.Simulations, m.day, infected, len(m.houses))

	if len(m.completed) > 0 {
		parts := make([]string, len(m.completed))
		for i, d := range m.completed {
			parts[i] = fmt.Sprintf("%d", d)
		}
		status += "  |  done: " + strings.Join(parts, ", ")
	}
	return status
}
