package cli

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/agbru/picalc/internal/button"
	"github.com/agbru/picalc/internal/logging"
	"github.com/agbru/picalc/internal/orchestration"
	"github.com/agbru/picalc/internal/sim"
	"github.com/agbru/picalc/internal/supervisor"
)

// DefaultStopWait bounds how long a headless run waits for the stop press to
// take effect once the run duration has elapsed.
const DefaultStopWait = 2 * time.Second

// Config describes a headless run.
type Config struct {
	// Deps are the task collaborators. Their Presenter is replaced.
	Deps       orchestration.Deps
	Buttons    sim.Presser
	Thresholds button.Thresholds
	// Duration is how long the computation runs between the start and stop
	// presses. Zero runs until ctx is done.
	Duration time.Duration
	StopWait time.Duration
	Out      io.Writer
}

// Run drives the panel without a terminal: it presses START, lets the
// computation run for Duration, presses STOP and prints the summary. It
// returns the final snapshot. A ctx cancellation ends the run early and is
// returned as the error.
func Run(ctx context.Context, cfg Config) (supervisor.Snapshot, error) {
	if cfg.Out == nil {
		cfg.Out = io.Discard
	}
	if cfg.StopWait <= 0 {
		cfg.StopWait = DefaultStopWait
	}
	logger := cfg.Deps.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	comp := cfg.Deps.Computation

	presenter := NewPresenter(cfg.Out)
	deps := cfg.Deps
	deps.Presenter = presenter

	tasksCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	tasksDone := make(chan error, 1)
	go func() { tasksDone <- orchestration.Run(tasksCtx, deps) }()

	wallStart := time.Now()
	presenter.Start()
	cfg.Buttons.Press(orchestration.LineStart, sim.ShortPress(cfg.Thresholds))

	var runErr error
	var deadline <-chan time.Time
	if cfg.Duration > 0 {
		timer := time.NewTimer(cfg.Duration)
		defer timer.Stop()
		deadline = timer.C
	}
	select {
	case <-ctx.Done():
		runErr = ctx.Err()
	case err := <-tasksDone:
		tasksDone <- err
		runErr = err
	case <-deadline:
		cfg.Buttons.Press(orchestration.LineStop, sim.ShortPress(cfg.Thresholds))
		if !waitStopped(ctx, comp, cfg.StopWait, deps.PollPeriod) {
			logger.Info("stop press not observed before the deadline",
				logging.String("wait", cfg.StopWait.String()))
		}
	}
	cancel()
	presenter.Stop()

	tasksErr := <-tasksDone
	if runErr == nil && tasksErr != nil && !errors.Is(tasksErr, context.Canceled) {
		runErr = tasksErr
	}

	snap := comp.Observe()
	PrintSummary(cfg.Out, snap, deps.Clock.Elapsed(), time.Since(wallStart))
	return snap, runErr
}

// waitStopped polls until comp reports Stopped or wait elapses.
func waitStopped(ctx context.Context, comp orchestration.Computation, wait, poll time.Duration) bool {
	if poll <= 0 {
		poll = orchestration.DefaultPollPeriod
	}
	deadline := time.NewTimer(wait)
	defer deadline.Stop()
	ticker := time.NewTicker(poll)
	defer ticker.Stop()

	for {
		if comp.Observe().State == supervisor.Stopped {
			return true
		}
		select {
		case <-ctx.Done():
			return false
		case <-deadline.C:
			return false
		case <-ticker.C:
		}
	}
}
