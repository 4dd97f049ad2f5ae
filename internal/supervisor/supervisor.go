//go:generate mockgen -destination=../mocks/mock_supervisor.go -package=mocks -mock_names=Observer=MockSupervisorObserver github.com/agbru/picalc/internal/supervisor TimeBase,Observer

package supervisor

import (
	"context"
	"math"
	"runtime"
	"sync"
	"sync/atomic"

	apperrors "github.com/agbru/picalc/internal/errors"
	"github.com/agbru/picalc/internal/logging"
	"github.com/agbru/picalc/internal/series"
)

// State is the computation state owned by the supervisor.
type State uint8

const (
	// Stopped means no step is scheduled; the last value stays readable.
	Stopped State = iota
	// Running means the stepping loop advances the worker continuously.
	Running
)

// String returns the lower-case state name.
func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Command names reported in InvalidTransitionError and to observers.
const (
	OpStart  = "start"
	OpStop   = "stop"
	OpReset  = "reset"
	OpSwitch = "switch"
)

// TimeBase is the external elapsed-time readout driven alongside the
// computation. Implementations are called with the supervisor lock held and
// must neither block nor call back into the supervisor.
type TimeBase interface {
	Reset()
	Start()
	Stop()
}

// Observer receives supervisor events. Like TimeBase, it is called with the
// supervisor lock held.
type Observer interface {
	// Transitioned is called after an accepted command.
	Transitioned(op string, s Snapshot)
	// Rejected is called when a command is refused in the current state.
	Rejected(op string, state State)
	// Stepped is called after every completed step.
	Stepped(s Snapshot)
	// Converged is called when a step first brings the value within tolerance.
	Converged(s Snapshot)
}

// Snapshot is an immutable copy of the supervisor's observable state. It
// always reflects a step boundary.
type Snapshot struct {
	Algorithm series.Kind
	Name      string
	Value     float64
	Iteration uint64
	Terms     uint64
	Converged bool
	State     State
}

type nopTimeBase struct{}

func (nopTimeBase) Reset() {}
func (nopTimeBase) Start() {}
func (nopTimeBase) Stop()  {}

type nopObserver struct{}

func (nopObserver) Transitioned(string, Snapshot) {}
func (nopObserver) Rejected(string, State)        {}
func (nopObserver) Stepped(Snapshot)              {}
func (nopObserver) Converged(Snapshot)            {}

// Supervisor owns the active series worker and serializes every step with
// every observation: Step and Observe share one mutex, so a snapshot can
// never see a step half-applied.
type Supervisor struct {
	mu        sync.Mutex
	factory   series.Factory
	worker    series.Worker
	state     State
	iteration uint64
	converged bool

	ceiling   uint64
	target    float64
	epsilon   float64
	stopTimer bool

	timeBase TimeBase
	observer Observer
	logger   logging.Logger

	wake    chan struct{}
	readers atomic.Int32
}

// Option configures a Supervisor during construction.
type Option func(*Supervisor)

// WithTimeBase sets the time readout reset on start and halted on stop.
func WithTimeBase(tb TimeBase) Option {
	return func(s *Supervisor) {
		if tb != nil {
			s.timeBase = tb
		}
	}
}

// WithObserver registers an event observer.
func WithObserver(o Observer) Option {
	return func(s *Supervisor) {
		if o != nil {
			s.observer = o
		}
	}
}

// WithLogger sets the logger used for transitions.
func WithLogger(l logging.Logger) Option {
	return func(s *Supervisor) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTarget sets the convergence target and tolerance.
func WithTarget(target, epsilon float64) Option {
	return func(s *Supervisor) {
		s.target = target
		s.epsilon = epsilon
	}
}

// WithIterationCeiling sets the value past which the iteration counter wraps
// to zero. Zero keeps the default of math.MaxUint64.
func WithIterationCeiling(n uint64) Option {
	return func(s *Supervisor) {
		if n > 0 {
			s.ceiling = n
		}
	}
}

// WithStopTimerOnConvergence halts the time base when tolerance is reached.
func WithStopTimerOnConvergence(enabled bool) Option {
	return func(s *Supervisor) { s.stopTimer = enabled }
}

// New creates a stopped supervisor running the series of the given kind.
func New(factory series.Factory, kind series.Kind, opts ...Option) (*Supervisor, error) {
	worker, err := factory.New(kind)
	if err != nil {
		return nil, err
	}
	s := &Supervisor{
		factory:  factory,
		worker:   worker,
		ceiling:  math.MaxUint64,
		target:   series.Pi,
		epsilon:  series.DefaultEpsilon,
		timeBase: nopTimeBase{},
		observer: nopObserver{},
		logger:   logging.NewNopLogger(),
		wake:     make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Start resets the worker to its first term and begins stepping.
func (s *Supervisor) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Stopped {
		return s.rejectLocked(OpStart)
	}
	s.restartLocked()
	s.state = Running
	s.timeBase.Reset()
	s.timeBase.Start()
	s.acceptLocked(OpStart)

	select {
	case s.wake <- struct{}{}:
	default:
	}
	return nil
}

// Stop prevents further steps. The accumulated value stays readable.
func (s *Supervisor) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Running {
		return s.rejectLocked(OpStop)
	}
	s.state = Stopped
	s.timeBase.Stop()
	s.acceptLocked(OpStop)
	return nil
}

// Reset reinitializes the worker while stopped.
func (s *Supervisor) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Stopped {
		return s.rejectLocked(OpReset)
	}
	s.restartLocked()
	s.timeBase.Reset()
	s.acceptLocked(OpReset)
	return nil
}

// SwitchAlgorithm replaces the worker with a fresh one of the given kind
// while stopped. The previous worker and its value are discarded.
func (s *Supervisor) SwitchAlgorithm(kind series.Kind) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.switchLocked(kind)
}

// NextAlgorithm switches to the kind following the current one in the
// factory's order and returns it.
func (s *Supervisor) NextAlgorithm() (series.Kind, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Stopped {
		return s.worker.Kind(), s.rejectLocked(OpSwitch)
	}
	next, err := series.Next(s.factory, s.worker.Kind())
	if err != nil {
		return s.worker.Kind(), err
	}
	return next, s.switchLocked(next)
}

func (s *Supervisor) switchLocked(kind series.Kind) error {
	if s.state != Stopped {
		return s.rejectLocked(OpSwitch)
	}
	worker, err := s.factory.New(kind)
	if err != nil {
		return err
	}
	s.worker = worker
	s.iteration = 0
	s.converged = false
	s.acceptLocked(OpSwitch)
	return nil
}

// Step advances the worker by one refinement. It reports false, without
// touching any state, when the supervisor is stopped.
func (s *Supervisor) Step() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Running {
		return false
	}
	s.worker.AdvanceOneTerm()

	if s.iteration >= s.ceiling {
		// Wrapping restarts convergence tracking; the worker value is kept.
		s.iteration = 0
		s.converged = false
	} else {
		s.iteration++
		if !s.converged && s.worker.HasReachedTolerance(s.target, s.epsilon) {
			s.converged = true
			if s.stopTimer {
				s.timeBase.Stop()
			}
			s.observer.Converged(s.snapshotLocked())
		}
	}
	s.observer.Stepped(s.snapshotLocked())
	return true
}

// Run is the stepping loop. It steps while running, parks while stopped and
// returns the context error once ctx is done. An in-flight step is never
// interrupted.
func (s *Supervisor) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if s.Step() {
			if s.readers.Load() > 0 {
				runtime.Gosched()
			}
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.wake:
		}
	}
}

// Observe returns a consistent snapshot. It waits at most for the step in
// progress to complete.
func (s *Supervisor) Observe() Snapshot {
	s.readers.Add(1)
	s.mu.Lock()
	s.readers.Add(-1)
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// State returns the current computation state.
func (s *Supervisor) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Algorithm returns the kind of the active worker.
func (s *Supervisor) Algorithm() series.Kind {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.worker.Kind()
}

func (s *Supervisor) restartLocked() {
	s.worker.Initialize()
	s.iteration = 0
	s.converged = false
}

func (s *Supervisor) snapshotLocked() Snapshot {
	return Snapshot{
		Algorithm: s.worker.Kind(),
		Name:      s.worker.Name(),
		Value:     s.worker.CurrentValue(),
		Iteration: s.iteration,
		Terms:     s.worker.Terms(),
		Converged: s.converged,
		State:     s.state,
	}
}

func (s *Supervisor) acceptLocked(op string) {
	snap := s.snapshotLocked()
	s.logger.Info("supervisor transition",
		logging.String("op", op),
		logging.String("state", snap.State.String()),
		logging.String("algorithm", string(snap.Algorithm)))
	s.observer.Transitioned(op, snap)
}

func (s *Supervisor) rejectLocked(op string) error {
	s.logger.Debug("supervisor transition rejected",
		logging.String("op", op),
		logging.String("state", s.state.String()))
	s.observer.Rejected(op, s.state)
	return apperrors.InvalidTransitionError{Op: op, State: s.state.String()}
}
