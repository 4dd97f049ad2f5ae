package tui

import "strings"

// sparkBlocks are the eight bar heights, lowest first.
const sparkBlocks = "▁▂▃▄▅▆▇█"

// Trend keeps the most recent samples of a percentage series, oldest first.
type Trend struct {
	limit   int
	samples []float64
}

// NewTrend returns a trend remembering at most limit samples.
func NewTrend(limit int) *Trend {
	limit = max(limit, 1)
	return &Trend{limit: limit, samples: make([]float64, 0, limit)}
}

// Push appends v, dropping the oldest sample once the limit is reached.
func (t *Trend) Push(v float64) {
	if len(t.samples) == t.limit {
		copy(t.samples, t.samples[1:])
		t.samples = t.samples[:t.limit-1]
	}
	t.samples = append(t.samples, v)
}

// Len reports how many samples are held.
func (t *Trend) Len() int { return len(t.samples) }

// Limit reports the maximum number of samples.
func (t *Trend) Limit() int { return t.limit }

// Last returns the newest sample, or 0 when empty.
func (t *Trend) Last() float64 {
	if len(t.samples) == 0 {
		return 0
	}
	return t.samples[len(t.samples)-1]
}

// Values returns a copy of the samples, oldest first.
func (t *Trend) Values() []float64 {
	if len(t.samples) == 0 {
		return nil
	}
	return append([]float64(nil), t.samples...)
}

// Clear drops every sample.
func (t *Trend) Clear() { t.samples = t.samples[:0] }

// Sparkline draws one bar per value, scaling 0..100 onto the eight block
// heights. Out-of-range values are clamped.
func Sparkline(values []float64) string {
	blocks := []rune(sparkBlocks)
	var b strings.Builder
	for _, v := range values {
		v = min(max(v, 0), 100)
		b.WriteRune(blocks[min(int(v*7/100), len(blocks)-1)])
	}
	return b.String()
}
