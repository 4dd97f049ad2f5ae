package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrend(t *testing.T) {
	tr := NewTrend(3)
	assert.Zero(t, tr.Last())
	assert.Nil(t, tr.Values())

	for _, v := range []float64{1, 2, 3, 4} {
		tr.Push(v)
	}
	assert.Equal(t, []float64{2, 3, 4}, tr.Values(), "oldest sample is dropped")
	assert.Equal(t, 4.0, tr.Last())
	assert.Equal(t, 3, tr.Len())

	vals := tr.Values()
	vals[0] = 99
	assert.Equal(t, 2.0, tr.Values()[0], "Values returns a copy")

	tr.Clear()
	assert.Zero(t, tr.Len())
	tr.Push(7)
	assert.Equal(t, []float64{7}, tr.Values())

	assert.Equal(t, 1, NewTrend(0).Limit())
}

func TestSparkline(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   string
	}{
		{"empty", nil, ""},
		{"floor", []float64{0, 0}, "▁▁"},
		{"ceiling", []float64{100}, "█"},
		{"clamped", []float64{-10, 150}, "▁█"},
		{"mid", []float64{50}, "▄"},
		{"ramp", []float64{0, 15, 29, 43, 58, 72, 86, 100}, "▁▂▃▄▅▆▇█"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sparkline(tt.values))
		})
	}
}
