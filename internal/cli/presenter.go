package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/agbru/picalc/internal/format"
	"github.com/agbru/picalc/internal/orchestration"
	"github.com/agbru/picalc/internal/supervisor"
	"github.com/agbru/picalc/internal/ui"
)

// Presenter shows the live value and time readout as a spinner suffix.
type Presenter struct {
	spin Spinner

	mu     sync.Mutex
	last   orchestration.View
	frames uint64
}

// Verify interface compliance.
var _ orchestration.Presenter = (*Presenter)(nil)

// NewPresenter creates a presenter animating on out.
func NewPresenter(out io.Writer) *Presenter {
	return &Presenter{spin: newSpinner(out)}
}

// Start begins the animation.
func (p *Presenter) Start() { p.spin.Start() }

// Stop halts the animation.
func (p *Presenter) Stop() { p.spin.Stop() }

// Present implements orchestration.Presenter.
func (p *Presenter) Present(v orchestration.View) {
	p.mu.Lock()
	p.last = v
	p.frames++
	p.mu.Unlock()
	p.spin.UpdateSuffix(" " + suffix(v))
}

// Last returns the most recent view and the number of views presented.
func (p *Presenter) Last() (orchestration.View, uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last, p.frames
}

// suffix joins the non-static display lines.
func suffix(v orchestration.View) string {
	lines := format.DisplayLines(v.Snapshot, v.Elapsed)
	if lines[2] == "" {
		return lines[1]
	}
	return lines[1] + "  " + lines[2]
}

// PrintSummary writes the end-of-run report.
func PrintSummary(out io.Writer, s supervisor.Snapshot, elapsed, wall time.Duration) {
	c := ui.Active().Codes
	status := ui.Colorize(c.Warning, "not converged")
	if s.Converged {
		status = ui.Colorize(c.Success, "converged")
	}
	fmt.Fprintf(out, "%s %s\n", ui.Colorize(c.Bold, "Result:"), format.Summary(s, elapsed, wall))
	fmt.Fprintf(out, "%s %s after %s\n",
		ui.Colorize(c.Primary, s.Name), status, format.FormatExecutionDuration(elapsed))
}
