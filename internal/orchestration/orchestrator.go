package orchestration

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/picalc/internal/logging"
)

// Default cadences of the periodic tasks.
const (
	DefaultSamplePeriod  = 10 * time.Millisecond
	DefaultPollPeriod    = 10 * time.Millisecond
	DefaultRefreshPeriod = 500 * time.Millisecond
)

// Deps are the collaborators driven by Run.
type Deps struct {
	Sampler     Sampler
	Clock       TimeSource
	Computation Computation
	Controller  *Controller
	// Presenter is optional; no refresh task runs without one.
	Presenter Presenter
	Logger    logging.Logger

	SamplePeriod  time.Duration
	PollPeriod    time.Duration
	RefreshPeriod time.Duration
	// Settle delays the first controller poll. Presses completed during the
	// delay are still latched and dispatched afterwards unless they go stale.
	Settle time.Duration
}

func (d *Deps) withDefaults() {
	if d.SamplePeriod <= 0 {
		d.SamplePeriod = DefaultSamplePeriod
	}
	if d.PollPeriod <= 0 {
		d.PollPeriod = DefaultPollPeriod
	}
	if d.RefreshPeriod <= 0 {
		d.RefreshPeriod = DefaultRefreshPeriod
	}
	if d.Logger == nil {
		d.Logger = logging.NewNopLogger()
	}
}

// Run starts the sampler, time base, stepping, controller and refresh tasks
// in one errgroup and blocks until ctx is done or a task fails. It returns
// the first task error, which is ctx.Err() on a normal shutdown.
func Run(ctx context.Context, d Deps) error {
	if d.Sampler == nil || d.Clock == nil || d.Computation == nil || d.Controller == nil {
		return errors.New("orchestration: sampler, clock, computation and controller are required")
	}
	d.withDefaults()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return sampleLoop(ctx, d.Sampler, d.Clock, d.SamplePeriod) })
	g.Go(func() error { return d.Clock.Run(ctx) })
	g.Go(func() error { return d.Computation.Run(ctx) })
	g.Go(func() error { return controlLoop(ctx, d.Controller, d.PollPeriod, d.Settle) })
	if d.Presenter != nil {
		g.Go(func() error { return refreshLoop(ctx, d.Presenter, d.Computation, d.Clock, d.RefreshPeriod) })
	}

	d.Logger.Info("tasks started",
		logging.String("sample_period", d.SamplePeriod.String()),
		logging.String("refresh_period", d.RefreshPeriod.String()))
	err := g.Wait()
	d.Logger.Debug("tasks stopped", logging.Err(err))
	return err
}

// sampleLoop is the periodic tick: one debounce scan and one time-base
// interrupt per period.
func sampleLoop(ctx context.Context, s Sampler, clock TimeSource, period time.Duration) error {
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.Scan()
			clock.Interrupt()
		}
	}
}

func controlLoop(ctx context.Context, c *Controller, period, settle time.Duration) error {
	if settle > 0 {
		timer := time.NewTimer(settle)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			c.Poll(ctx)
		}
	}
}

func refreshLoop(ctx context.Context, p Presenter, comp Computation, clock TimeSource, period time.Duration) error {
	present := func() { p.Present(CurrentView(comp, clock)) }
	present()
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			present()
		}
	}
}

// CurrentView returns a view of comp and clock outside the refresh task.
func CurrentView(comp Computation, clock TimeSource) View {
	return View{Snapshot: comp.Observe(), Elapsed: clock.Elapsed()}
}
