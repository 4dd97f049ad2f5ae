package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agbru/picalc/internal/button"
)

func levels(p *Port, id button.LineID, n int) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = p.ReadLevel(id)
	}
	return out
}

func TestPort_ReplaysPresses(t *testing.T) {
	t.Parallel()
	p := NewPort(2, true)
	p.Press(0, 2)
	p.Idle(0, 1)
	p.Press(0, 1)

	assert.Equal(t, uint64(6), p.Pending(0))
	assert.Equal(t, []bool{false, false, true, true, false, true, true}, levels(p, 0, 7))
	assert.Zero(t, p.Pending(0))
	assert.Equal(t, []bool{true, true}, levels(p, 1, 2), "untouched line stays idle")
}

func TestPort_IdleLow(t *testing.T) {
	t.Parallel()
	p := NewPort(1, false)
	p.Press(0, 1)
	assert.Equal(t, []bool{true, false, false}, levels(p, 0, 3))
	assert.False(t, p.IdleHigh())
}

func TestPort_IgnoresUnknownLinesAndEmptyPresses(t *testing.T) {
	t.Parallel()
	p := NewPort(0, true)
	assert.Equal(t, 1, p.Lines())

	p.Press(5, 10)
	p.Idle(5, 10)
	p.Press(0, 0)
	assert.Zero(t, p.Pending(5))
	assert.Zero(t, p.Pending(0))
	assert.True(t, p.ReadLevel(5))
}

func TestPressLengths_ClassifyThroughDebouncer(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		th   button.Thresholds
	}{
		{"defaults", button.DefaultThresholds()},
		{"tight", button.Thresholds{ShortTicks: 2, LongTicks: 4, TimeoutTicks: 10}},
		{"adjacent", button.Thresholds{ShortTicks: 2, LongTicks: 3, TimeoutTicks: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := NewPort(1, true)
			d := button.New(p, tt.th)
			require.NoError(t, d.Configure(0, p.IdleHigh()))

			run := func(ticks uint32) button.Classification {
				p.Press(0, ticks)
				for p.Pending(0) > 0 {
					d.Scan()
				}
				return d.Read(0, true)
			}

			want := button.Short
			if !HasShortPress(tt.th) {
				want = button.Long
			}
			assert.Equal(t, want, run(ShortPress(tt.th)))
			assert.Equal(t, button.Long, run(LongPress(tt.th)))
		})
	}
}

func TestPressLengths_Saturate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		th        button.Thresholds
		short     uint32
		long      uint32
		shortOnly bool
	}{
		{"wide", button.Thresholds{ShortTicks: 2, LongTicks: 10}, 6, 11, true},
		{"adjacent", button.Thresholds{ShortTicks: 2, LongTicks: 3}, 3, 4, false},
		{"inverted", button.Thresholds{ShortTicks: 5, LongTicks: 2}, 6, 6, false},
		{"max long", button.Thresholds{ShortTicks: 2, LongTicks: math.MaxUint32}, 2 + 1 + (math.MaxUint32-3)/2, math.MaxUint32, true},
		{"both max", button.Thresholds{ShortTicks: math.MaxUint32, LongTicks: math.MaxUint32}, math.MaxUint32, math.MaxUint32, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.shortOnly, HasShortPress(tt.th))
			assert.Equal(t, tt.short, ShortPress(tt.th))
			assert.Equal(t, tt.long, LongPress(tt.th))
		})
	}
}
