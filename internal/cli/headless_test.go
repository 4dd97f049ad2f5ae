package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agbru/picalc/internal/button"
	"github.com/agbru/picalc/internal/orchestration"
	"github.com/agbru/picalc/internal/series"
	"github.com/agbru/picalc/internal/sim"
	"github.com/agbru/picalc/internal/supervisor"
	"github.com/agbru/picalc/internal/timebase"
)

func newHeadlessConfig(t *testing.T, d time.Duration, out *bytes.Buffer) Config {
	t.Helper()
	th := button.NewThresholds(time.Millisecond, 3*time.Millisecond, 20*time.Millisecond, time.Second)
	port := sim.NewPort(4, true)
	deb := button.New(port, th)
	for i := 0; i < port.Lines(); i++ {
		require.NoError(t, deb.Configure(button.LineID(i), port.IdleHigh()))
	}
	clock := timebase.New(time.Millisecond, 0)
	sup, err := supervisor.New(series.NewDefaultFactory(), series.Nilakantha, supervisor.WithTimeBase(clock))
	require.NoError(t, err)
	return Config{
		Deps: orchestration.Deps{
			Sampler:       deb,
			Clock:         clock,
			Computation:   sup,
			Controller:    orchestration.NewController(deb, sup),
			SamplePeriod:  time.Millisecond,
			PollPeriod:    time.Millisecond,
			RefreshPeriod: 5 * time.Millisecond,
		},
		Buttons:    port,
		Thresholds: th,
		Duration:   d,
		Out:        out,
	}
}

func TestRun_PressesStartAndStop(t *testing.T) {
	useMockSpinner(t)
	var out bytes.Buffer
	cfg := newHeadlessConfig(t, 100*time.Millisecond, &out)

	snap, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, supervisor.Stopped, snap.State)
	assert.Positive(t, snap.Iteration)
	assert.Equal(t, "Nilakantha", snap.Name)
	assert.Contains(t, out.String(), "Result: Nilakantha")
	assert.Positive(t, cfg.Deps.Clock.Elapsed())
}

func TestRun_CancelledEarly(t *testing.T) {
	useMockSpinner(t)
	var out bytes.Buffer
	cfg := newHeadlessConfig(t, time.Hour, &out)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	start := time.Now()
	_, err := Run(ctx, cfg)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
	assert.Contains(t, out.String(), "Result:")
}
