package orchestration

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agbru/picalc/internal/button"
	"github.com/agbru/picalc/internal/series"
	"github.com/agbru/picalc/internal/sim"
	"github.com/agbru/picalc/internal/supervisor"
	"github.com/agbru/picalc/internal/timebase"
)

type rig struct {
	port  *sim.Port
	deb   *button.Debouncer
	clock *timebase.Clock
	sup   *supervisor.Supervisor
	deps  Deps
}

func newRig(t *testing.T) *rig {
	t.Helper()
	th := button.NewThresholds(time.Millisecond, 3*time.Millisecond, 20*time.Millisecond, time.Second)
	port := sim.NewPort(4, true)
	deb := button.New(port, th)
	for i := 0; i < port.Lines(); i++ {
		require.NoError(t, deb.Configure(button.LineID(i), port.IdleHigh()))
	}
	clock := timebase.New(time.Millisecond, 0)
	sup, err := supervisor.New(series.NewDefaultFactory(), series.Leibniz, supervisor.WithTimeBase(clock))
	require.NoError(t, err)
	return &rig{
		port:  port,
		deb:   deb,
		clock: clock,
		sup:   sup,
		deps: Deps{
			Sampler:       deb,
			Clock:         clock,
			Computation:   sup,
			Controller:    NewController(deb, sup),
			SamplePeriod:  time.Millisecond,
			PollPeriod:    time.Millisecond,
			RefreshPeriod: 5 * time.Millisecond,
		},
	}
}

func (r *rig) press(line button.LineID) {
	r.port.Press(line, sim.ShortPress(r.deb.Thresholds()))
}

func TestRun_RequiresCollaborators(t *testing.T) {
	t.Parallel()
	assert.Error(t, Run(context.Background(), Deps{}))
}

func TestRun_ButtonsDriveComputation(t *testing.T) {
	t.Parallel()
	r := newRig(t)

	var mu sync.Mutex
	var views []View
	r.deps.Presenter = PresenterFunc(func(v View) {
		mu.Lock()
		views = append(views, v)
		mu.Unlock()
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, r.deps) }()

	r.press(LineStart)
	require.Eventually(t, func() bool {
		s := r.sup.Observe()
		return s.State == supervisor.Running && s.Iteration > 0
	}, 5*time.Second, time.Millisecond)
	require.Eventually(t, func() bool { return r.clock.Elapsed() > 0 }, 5*time.Second, time.Millisecond)

	r.press(LineStop)
	require.Eventually(t, func() bool { return r.sup.State() == supervisor.Stopped }, 5*time.Second, time.Millisecond)
	frozen := r.sup.Observe()
	elapsed := r.clock.Elapsed()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, frozen, r.sup.Observe())
	assert.Equal(t, elapsed, r.clock.Elapsed(), "time readout halts on stop")

	r.press(LineChange)
	require.Eventually(t, func() bool { return r.sup.Algorithm() == series.Nilakantha }, 5*time.Second, time.Millisecond)

	r.press(LineReset)
	require.Eventually(t, func() bool { return r.clock.Elapsed() == 0 }, 5*time.Second, time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.NotEmpty(t, views, "presenter must be refreshed")
}

func TestRun_SettleDelaysPolling(t *testing.T) {
	t.Parallel()
	r := newRig(t)
	r.deps.Settle = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = Run(ctx, r.deps) }()

	start := time.Now()
	r.press(LineStart)
	require.Eventually(t, func() bool { return r.sup.State() == supervisor.Running }, 5*time.Second, time.Millisecond)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestCurrentView(t *testing.T) {
	t.Parallel()
	r := newRig(t)
	v := CurrentView(r.sup, r.clock)
	assert.Equal(t, series.Leibniz, v.Snapshot.Algorithm)
	assert.Zero(t, v.Elapsed)
}
