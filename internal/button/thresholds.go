package button

import (
	"math"
	"time"
)

// Default timings, in wall-clock units. They are converted to sample ticks
// with TicksFromDuration.
const (
	// DefaultSamplePeriod is the cadence at which lines are sampled.
	DefaultSamplePeriod = 10 * time.Millisecond
	// DefaultShortPress is the minimum press length that can be classified.
	DefaultShortPress = 80 * time.Millisecond
	// DefaultLongPress is the press length from which a press is Long.
	DefaultLongPress = 500 * time.Millisecond
	// DefaultClassificationTimeout is how long an unread classification
	// stays latched before it silently reverts to Idle.
	DefaultClassificationTimeout = DefaultLongPress
)

// Thresholds holds the process-wide debounce thresholds, all expressed in
// sample ticks.
type Thresholds struct {
	// ShortTicks is the press length that must be exceeded (strictly) for a
	// release to commit any classification.
	ShortTicks uint32
	// LongTicks is the press length at or above which a release commits Long.
	LongTicks uint32
	// TimeoutTicks is the number of ticks a committed classification stays
	// latched when nobody reads it.
	TimeoutTicks uint32
	// SamplePeriod is the duration of one tick.
	SamplePeriod time.Duration
}

// DefaultThresholds returns the thresholds built from the default timings.
func DefaultThresholds() Thresholds {
	return NewThresholds(DefaultSamplePeriod, DefaultShortPress, DefaultLongPress, DefaultClassificationTimeout)
}

// NewThresholds converts wall-clock timings into tick thresholds.
func NewThresholds(period, short, long, timeout time.Duration) Thresholds {
	return Thresholds{
		ShortTicks:   TicksFromDuration(short, period),
		LongTicks:    TicksFromDuration(long, period),
		TimeoutTicks: TicksFromDuration(timeout, period),
		SamplePeriod: period,
	}
}

// TicksFromDuration converts d into a whole number of sample periods.
// The conversion floors so that a timeout is never extended beyond the
// caller's intent, and saturates instead of wrapping: non-positive inputs
// yield 0 and values beyond the uint32 range yield math.MaxUint32.
func TicksFromDuration(d, period time.Duration) uint32 {
	if d <= 0 || period <= 0 {
		return 0
	}
	ticks := d / period
	if ticks > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(ticks)
}

// Duration converts a tick count back into wall-clock time.
func (t Thresholds) Duration(ticks uint32) time.Duration {
	return time.Duration(ticks) * t.SamplePeriod
}
