package timebase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

const (
	// DefaultPeriod is the tick granularity of the readout.
	DefaultPeriod = 10 * time.Millisecond
	// DefaultBuffer is the number of ticks Interrupt can queue before
	// dropping.
	DefaultBuffer = 64
)

// Clock counts ticks while started. It implements supervisor.TimeBase.
type Clock struct {
	period time.Duration
	tickQ  chan struct{}

	mu      sync.Mutex
	running bool
	ticks   uint64

	drops atomic.Uint64 // Interrupt drop counter
}

// New returns a stopped clock. Non-positive arguments select the defaults.
func New(period time.Duration, buffer int) *Clock {
	if period <= 0 {
		period = DefaultPeriod
	}
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Clock{
		period: period,
		tickQ:  make(chan struct{}, buffer),
	}
}

// Interrupt hands one tick to the consumer. It never blocks: when the queue
// is full the tick is dropped and counted.
func (c *Clock) Interrupt() {
	select {
	case c.tickQ <- struct{}{}:
	default:
		c.drops.Add(1)
	}
}

// Run consumes ticks until ctx is done and returns ctx.Err().
func (c *Clock) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c.tickQ:
			c.tick()
		}
	}
}

func (c *Clock) tick() {
	c.mu.Lock()
	if c.running && c.ticks < ^uint64(0) {
		c.ticks++
	}
	c.mu.Unlock()
}

// Reset zeroes the counter without changing the running flag.
func (c *Clock) Reset() {
	c.mu.Lock()
	c.ticks = 0
	c.mu.Unlock()
}

// Start resumes counting.
func (c *Clock) Start() {
	c.mu.Lock()
	c.running = true
	c.mu.Unlock()
}

// Stop halts counting; the readout keeps its value.
func (c *Clock) Stop() {
	c.mu.Lock()
	c.running = false
	c.mu.Unlock()
}

// Running reports whether ticks are being counted.
func (c *Clock) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// Ticks returns the number of ticks counted since the last reset.
func (c *Clock) Ticks() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ticks
}

// Elapsed converts the tick count to a duration.
func (c *Clock) Elapsed() time.Duration {
	return time.Duration(c.Ticks()) * c.period
}

// Drops returns how many ticks Interrupt discarded.
func (c *Clock) Drops() uint64 { return c.drops.Load() }

// Period returns the tick granularity.
func (c *Clock) Period() time.Duration { return c.period }

// Format renders d as the display readout, e.g. "Time: 12.340s".
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	ms := d.Milliseconds()
	return fmt.Sprintf("Time: %d.%03ds", ms/1000, ms%1000)
}
