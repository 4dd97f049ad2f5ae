package tui

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/picalc/internal/format"
	"github.com/agbru/picalc/internal/orchestration"
	"github.com/agbru/picalc/internal/series"
	"github.com/agbru/picalc/internal/supervisor"
)

const (
	displayWidth = format.DisplayWidth
	// maxDigits is the precision ceiling of a float64 approximation.
	maxDigits     = 16
	digitsHistory = 40
	// panelWidth fits the "digits NN.N " label followed by the trend.
	panelWidth = digitsHistory + 16
)

// DisplayModel renders the four-line character display and a trend of
// correct decimals underneath.
type DisplayModel struct {
	lines  [4]string
	snap   supervisor.Snapshot
	digits *Trend
}

// NewDisplayModel creates the display showing the stopped screen.
func NewDisplayModel() DisplayModel {
	d := DisplayModel{digits: NewTrend(digitsHistory)}
	d.lines = format.DisplayLines(supervisor.Snapshot{}, 0)
	return d
}

// Update replaces the frame. The digits trend only grows while running.
func (d *DisplayModel) Update(v orchestration.View) {
	if v.Snapshot.State == supervisor.Running &&
		(v.Snapshot.Algorithm != d.snap.Algorithm || v.Snapshot.Iteration < d.snap.Iteration) {
		d.digits.Clear()
	}
	d.snap = v.Snapshot
	d.lines = format.DisplayLines(v.Snapshot, v.Elapsed)
	if v.Snapshot.State == supervisor.Running {
		d.digits.Push(correctDigits(v.Snapshot.Value) * 100 / maxDigits)
	}
}

// Lines returns the current display text.
func (d DisplayModel) Lines() [4]string { return d.lines }

// View renders the panel.
func (d DisplayModel) View() string {
	rows := make([]string, 0, 6)
	for i, l := range d.lines {
		if i == len(d.lines)-1 {
			rows = append(rows, lcdLegendStyle.Render(l))
			continue
		}
		rows = append(rows, lcdStyle.Render(l))
	}
	if d.digits.Len() > 0 {
		trend := digitsStyle.Render(Sparkline(d.digits.Values()))
		label := metricLabelStyle.Render("digits ")
		value := metricValueStyle.Render(fmt.Sprintf("%.1f", correctDigits(d.snap.Value)))
		rows = append(rows, "", label+value+" "+trend)
	}
	return panelStyle.Width(panelWidth).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// correctDigits returns the number of decimals v shares with pi, clamped to
// [0, maxDigits].
func correctDigits(v float64) float64 {
	e := math.Abs(v - series.Pi)
	if e == 0 {
		return maxDigits
	}
	d := -math.Log10(e)
	if d < 0 {
		return 0
	}
	if d > maxDigits {
		return maxDigits
	}
	return d
}
