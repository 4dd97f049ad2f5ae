//go:generate mockgen -destination=../mocks/mock_button.go -package=mocks github.com/agbru/picalc/internal/button InputPort,Observer

package button

import (
	"math"
	"sync"
	"time"

	apperrors "github.com/agbru/picalc/internal/errors"
	"github.com/agbru/picalc/internal/logging"
)

// DefaultLines is the number of lines on the four-button panel.
const DefaultLines = 4

// LineID identifies a button line.
type LineID uint8

// Classification is the debounced state of a button line.
type Classification uint8

const (
	// Idle means no unread press is latched.
	Idle Classification = iota
	// Short is a press longer than the short threshold and below the long one.
	Short
	// Long is a press at or above the long threshold.
	Long
)

// String returns the lower-case name of the classification.
func (c Classification) String() string {
	switch c {
	case Idle:
		return "idle"
	case Short:
		return "short"
	case Long:
		return "long"
	default:
		return "unknown"
	}
}

// InputPort exposes the raw digital level of each line. It is owned by the
// caller; the debouncer only samples it.
type InputPort interface {
	ReadLevel(id LineID) bool
}

// Observer is notified of classification changes. Calls are made while the
// debouncer's state lock is held, so implementations must not call back into
// the debouncer.
type Observer interface {
	// Classified is called when a release commits a classification.
	Classified(id LineID, c Classification)
	// Stale is called when an unread classification times out to Idle.
	Stale(id LineID, c Classification)
}

type nopObserver struct{}

func (nopObserver) Classified(LineID, Classification) {}
func (nopObserver) Stale(LineID, Classification)      {}

type line struct {
	configured bool
	idleLevel  bool
	press      uint32
	state      Classification
	timeout    uint32
}

// Debouncer turns raw level samples into latched press classifications.
// All line state lives behind a single mutex, taken once per Scan and once
// per read.
type Debouncer struct {
	mu       sync.Mutex
	port     InputPort
	th       Thresholds
	lines    []line
	stale    uint64
	observer Observer
	logger   logging.Logger
}

// Option configures a Debouncer during construction.
type Option func(*Debouncer)

// WithLines sets the number of addressable lines.
func WithLines(n int) Option {
	return func(d *Debouncer) {
		if n > 0 && n <= math.MaxUint8+1 {
			d.lines = make([]line, n)
		}
	}
}

// WithObserver registers an observer for classification events.
func WithObserver(o Observer) Option {
	return func(d *Debouncer) {
		if o != nil {
			d.observer = o
		}
	}
}

// WithLogger sets the logger used for configuration events.
func WithLogger(l logging.Logger) Option {
	return func(d *Debouncer) {
		if l != nil {
			d.logger = l
		}
	}
}

// New creates a debouncer sampling port with the given thresholds.
func New(port InputPort, th Thresholds, opts ...Option) *Debouncer {
	d := &Debouncer{
		port:     port,
		th:       th,
		lines:    make([]line, DefaultLines),
		observer: nopObserver{},
		logger:   logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Configure registers a line with its idle electrical level and clears any
// previous state for it.
func (d *Debouncer) Configure(id LineID, idleLevel bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if int(id) >= len(d.lines) {
		return apperrors.UnconfiguredLineError{Line: int(id)}
	}
	d.lines[id] = line{configured: true, idleLevel: idleLevel}
	d.logger.Debug("button configured", logging.Int("line", int(id)), logging.Bool("idle_level", idleLevel))
	return nil
}

// Configured reports whether id has been registered.
func (d *Debouncer) Configured(id LineID) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return int(id) < len(d.lines) && d.lines[id].configured
}

// Thresholds returns the active thresholds.
func (d *Debouncer) Thresholds() Thresholds {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.th
}

// SetTimeout changes how long an unread classification stays latched.
// Countdowns already running keep their current value.
func (d *Debouncer) SetTimeout(timeout time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.th.TimeoutTicks = TicksFromDuration(timeout, d.th.SamplePeriod)
}

// Scan processes one sample tick for every configured line.
func (d *Debouncer) Scan() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.lines {
		if d.lines[i].configured {
			d.sample(LineID(i), &d.lines[i])
		}
	}
}

// sample runs the per-line state machine. Caller holds d.mu.
func (d *Debouncer) sample(id LineID, l *line) {
	if l.timeout > 0 {
		l.timeout--
		if l.timeout == 0 && l.state != Idle {
			prev := l.state
			l.state = Idle
			if d.stale < math.MaxUint64 {
				d.stale++
			}
			d.observer.Stale(id, prev)
		}
	}

	if d.port.ReadLevel(id) == l.idleLevel {
		if l.press > d.th.ShortTicks {
			if l.press < d.th.LongTicks {
				l.state = Short
			} else {
				l.state = Long
			}
			l.timeout = d.th.TimeoutTicks
			d.observer.Classified(id, l.state)
		}
		l.press = 0
		return
	}

	if l.press < math.MaxUint32 {
		l.press++
	}
}

// Read returns the classification of id, clearing it to Idle when reset is
// true. Unknown lines read Idle.
func (d *Debouncer) Read(id LineID, reset bool) Classification {
	c, _ := d.ReadChecked(id, reset)
	return c
}

// ReadChecked is Read with an UnconfiguredLineError for lines that were
// never configured.
func (d *Debouncer) ReadChecked(id LineID, reset bool) (Classification, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if int(id) >= len(d.lines) || !d.lines[id].configured {
		return Idle, apperrors.UnconfiguredLineError{Line: int(id)}
	}
	l := &d.lines[id]
	c := l.state
	if reset {
		l.state = Idle
	}
	return c, nil
}

// StaleReverts returns how many classifications timed out unread.
func (d *Debouncer) StaleReverts() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stale
}
