package host

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spacehole-rogue/particle_globe/internal/game"
	"github.com/spacehole-rogue/particle_globe/internal/pipeline"
)

var (
	reportTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("205"))

	reportLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("244")).
				Width(18)

	reportValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252"))

	reportBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1)
)

// Report summarises a headless run.
type Report struct {
	Scene   string
	Hz      int
	Ticks   uint64
	Frames  uint64
	Elapsed time.Duration
	Totals  pipeline.Counters
	Last    game.Snapshot
}

func (r Report) finish(drv *game.Driver, ticks uint64, started time.Time) Report {
	r.Ticks = ticks
	r.Frames = drv.Frames()
	r.Elapsed = time.Since(started)
	r.Totals = drv.Totals()
	r.Last = drv.Diagnostics().Snapshot
	return r
}

// perFrame averages a total over the drawn frames.
func (r Report) perFrame(total int) float64 {
	if r.Frames == 0 {
		return 0
	}
	return float64(total) / float64(r.Frames)
}

// FrameTime is the mean wall time spent per frame.
func (r Report) FrameTime() time.Duration {
	if r.Frames == 0 {
		return 0
	}
	return r.Elapsed / time.Duration(r.Frames)
}

// Render formats the report for a terminal.
func (r Report) Render() string {
	rows := [][2]string{
		{"frames", fmt.Sprintf("%d of %d ticks", r.Frames, r.Ticks)},
		{"wall time", fmt.Sprintf("%s (%s/frame)", r.Elapsed.Round(time.Millisecond), r.FrameTime().Round(time.Microsecond))},
		{"rendered/frame", fmt.Sprintf("%.1f", r.perFrame(r.Totals.Rendered))},
		{"culled/frame", fmt.Sprintf("%.1f", r.perFrame(r.Totals.Culled))},
		{"style sets/frame", fmt.Sprintf("%.1f", r.perFrame(r.Totals.StyleSets))},
		{"switches/frame", fmt.Sprintf("%.1f", r.perFrame(r.Totals.StyleSwitches))},
	}
	for dec := pipeline.CullBackFace; dec <= pipeline.CullSatelliteHidden; dec++ {
		rows = append(rows, [2]string{"  " + dec.String(), fmt.Sprintf("%.1f", r.perFrame(r.Totals.ByDecision[dec]))})
	}
	if r.Totals.Rendered > 0 {
		rows = append(rows, [2]string{"lightness", fmt.Sprintf("%.1f..%.1f", r.Totals.MinLightness, r.Totals.MaxLightness)})
	}

	var b strings.Builder
	b.WriteString(reportTitleStyle.Render(fmt.Sprintf("scene %s @ %d Hz", r.Scene, r.Hz)))
	for _, row := range rows {
		b.WriteString("\n")
		b.WriteString(reportLabelStyle.Render(row[0]))
		b.WriteString(reportValueStyle.Render(row[1]))
	}
	return reportBoxStyle.Render(b.String())
}
