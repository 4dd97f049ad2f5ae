package sim

import (
	"math"
	"sync"

	"github.com/agbru/picalc/internal/button"
)

type segment struct {
	active bool
	ticks  uint32
}

// Port is a simulated input port. Lines with an empty queue read as their
// idle level.
type Port struct {
	mu       sync.Mutex
	idleHigh bool
	queues   [][]segment
}

// Presser injects button presses.
type Presser interface {
	Press(id button.LineID, ticks uint32)
}

// Verify interface compliance.
var (
	_ button.InputPort = (*Port)(nil)
	_ Presser          = (*Port)(nil)
)

// NewPort returns a port with n lines that all idle at the given level.
func NewPort(n int, idleHigh bool) *Port {
	if n < 1 {
		n = 1
	}
	return &Port{idleHigh: idleHigh, queues: make([][]segment, n)}
}

// IdleHigh reports the idle level of every line.
func (p *Port) IdleHigh() bool { return p.idleHigh }

// Lines returns the number of simulated lines.
func (p *Port) Lines() int { return len(p.queues) }

// ReadLevel returns the next queued sample for id.
func (p *Port) ReadLevel(id button.LineID) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if int(id) >= len(p.queues) {
		return p.idleHigh
	}
	q := p.queues[id]
	if len(q) == 0 {
		return p.idleHigh
	}
	head := &q[0]
	level := p.idleHigh
	if head.active {
		level = !p.idleHigh
	}
	head.ticks--
	if head.ticks == 0 {
		p.queues[id] = q[1:]
	}
	return level
}

// Press queues a press lasting ticks samples followed by one idle sample, so
// that consecutive presses are released in between. Zero ticks or an unknown
// line is ignored.
func (p *Port) Press(id button.LineID, ticks uint32) {
	if ticks == 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if int(id) >= len(p.queues) {
		return
	}
	p.queues[id] = append(p.queues[id], segment{active: true, ticks: ticks}, segment{ticks: 1})
}

// Idle queues ticks idle samples on id, delaying any press queued after it.
func (p *Port) Idle(id button.LineID, ticks uint32) {
	if ticks == 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if int(id) >= len(p.queues) {
		return
	}
	p.queues[id] = append(p.queues[id], segment{ticks: ticks})
}

// Pending returns the number of samples still queued on id.
func (p *Port) Pending(id button.LineID) uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if int(id) >= len(p.queues) {
		return 0
	}
	var n uint64
	for _, s := range p.queues[id] {
		n += uint64(s.ticks)
	}
	return n
}

// ShortPress returns a press length classified as Short under th, the middle
// of the open range (ShortTicks, LongTicks). When LongTicks is less than two
// ticks above ShortTicks that range is empty and no length classifies as
// Short; the result is then ShortTicks+1, which classifies as Long.
func ShortPress(th button.Thresholds) uint32 {
	if HasShortPress(th) {
		return th.ShortTicks + 1 + (th.LongTicks-th.ShortTicks-1)/2
	}
	return satInc(th.ShortTicks)
}

// LongPress returns a press length classified as Long under th.
func LongPress(th button.Thresholds) uint32 {
	if th.LongTicks <= th.ShortTicks {
		return satInc(th.ShortTicks)
	}
	return satInc(th.LongTicks)
}

// HasShortPress reports whether any press length classifies as Short.
func HasShortPress(th button.Thresholds) bool {
	return th.LongTicks > th.ShortTicks && th.LongTicks-th.ShortTicks >= 2
}

func satInc(n uint32) uint32 {
	if n == math.MaxUint32 {
		return n
	}
	return n + 1
}
