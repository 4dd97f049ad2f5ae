package format

import (
	"fmt"
	"time"

	"github.com/agbru/picalc/internal/supervisor"
	"github.com/agbru/picalc/internal/timebase"
)

// Fixed display text.
const (
	DisplayTitle  = "Calculate PI"
	DisplayLegend = "START STOP RST CHNG"
	// DisplayWidth is the character width of one display line.
	DisplayWidth = 20
)

// DisplayLines renders the four-line character display. While running it
// shows the value and the time readout; while stopped, the selected
// algorithm.
func DisplayLines(s supervisor.Snapshot, elapsed time.Duration) [4]string {
	lines := [4]string{0: DisplayTitle, 3: DisplayLegend}
	if s.State == supervisor.Running {
		lines[1] = ValueLine(s.Value)
		lines[2] = timebase.Format(elapsed)
		return lines
	}
	name := s.Name
	if name == "" {
		name = "None"
	}
	lines[1] = "Current: " + name
	return lines
}

// ValueLine formats an approximation with eight decimals.
func ValueLine(v float64) string {
	return fmt.Sprintf("PI: %0.8f", v)
}

// Summary is the one-line report printed when a headless run ends.
func Summary(s supervisor.Snapshot, elapsed, wall time.Duration) string {
	return fmt.Sprintf("%s %s iterations=%d terms=%d converged=%t %s wall=%s",
		s.Name, ValueLine(s.Value), s.Iteration, s.Terms, s.Converged,
		timebase.Format(elapsed), FormatExecutionDuration(wall))
}
