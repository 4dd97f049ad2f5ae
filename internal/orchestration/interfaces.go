package orchestration

import (
	"context"
	"time"

	"github.com/agbru/picalc/internal/button"
	"github.com/agbru/picalc/internal/series"
	"github.com/agbru/picalc/internal/supervisor"
)

// View is one frame handed to a presenter.
type View struct {
	Snapshot supervisor.Snapshot
	// Elapsed is the time readout, counted by the time base while running.
	Elapsed time.Duration
}

// Presenter renders views. Present is called from the refresh task only and
// must not block for long; it never calls back into the supervisor.
type Presenter interface {
	Present(v View)
}

// PresenterFunc is a function adapter that implements Presenter.
type PresenterFunc func(v View)

// Present calls the underlying function.
func (f PresenterFunc) Present(v View) { f(v) }

// NullPresenter discards every view.
type NullPresenter struct{}

// Present does nothing.
func (NullPresenter) Present(View) {}

// Computation is the subset of the supervisor the controller and the task
// group depend on. *supervisor.Supervisor implements it.
type Computation interface {
	Start() error
	Stop() error
	Reset() error
	NextAlgorithm() (series.Kind, error)
	Observe() supervisor.Snapshot
	Run(ctx context.Context) error
}

// ButtonReader reads debounced classifications. *button.Debouncer
// implements it.
type ButtonReader interface {
	Read(id button.LineID, reset bool) button.Classification
}

// Sampler processes one debounce tick.
type Sampler interface {
	Scan()
}

// TimeSource is the tick-driven elapsed-time readout. *timebase.Clock
// implements it.
type TimeSource interface {
	Interrupt()
	Run(ctx context.Context) error
	Elapsed() time.Duration
}

var (
	_ Computation  = (*supervisor.Supervisor)(nil)
	_ ButtonReader = (*button.Debouncer)(nil)
	_ Sampler      = (*button.Debouncer)(nil)
)
