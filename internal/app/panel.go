package app

import (
	"github.com/agbru/picalc/internal/button"
	"github.com/agbru/picalc/internal/config"
	"github.com/agbru/picalc/internal/logging"
	"github.com/agbru/picalc/internal/metrics"
	"github.com/agbru/picalc/internal/orchestration"
	"github.com/agbru/picalc/internal/series"
	"github.com/agbru/picalc/internal/sim"
	"github.com/agbru/picalc/internal/supervisor"
	"github.com/agbru/picalc/internal/timebase"
)

// panel is the wired device: a simulated four-button port, its debouncer,
// the time base and the supervised computation.
type panel struct {
	port       *sim.Port
	debouncer  *button.Debouncer
	clock      *timebase.Clock
	supervisor *supervisor.Supervisor
	recorder   *metrics.Recorder
	thresholds button.Thresholds
	deps       orchestration.Deps
}

func newPanel(cfg config.AppConfig, factory series.Factory, logger logging.Logger) (*panel, error) {
	kind, err := orchestration.SelectAlgorithm(cfg.Algo, factory)
	if err != nil {
		return nil, err
	}

	th := cfg.ToThresholds()
	rec := metrics.NewRecorder()
	// Buttons pull their line high when released.
	port := sim.NewPort(button.DefaultLines, true)
	deb := button.New(port, th,
		button.WithLines(port.Lines()),
		button.WithObserver(rec),
		button.WithLogger(logger))
	for i := 0; i < port.Lines(); i++ {
		if err := deb.Configure(button.LineID(i), port.IdleHigh()); err != nil {
			return nil, err
		}
	}

	clock := timebase.New(th.SamplePeriod, timebase.DefaultBuffer)
	sup, err := supervisor.New(factory, kind,
		supervisor.WithTimeBase(clock),
		supervisor.WithObserver(rec),
		supervisor.WithLogger(logger),
		supervisor.WithTarget(series.Pi, cfg.Epsilon),
		supervisor.WithStopTimerOnConvergence(cfg.StopTimer))
	if err != nil {
		return nil, err
	}

	return &panel{
		port:       port,
		debouncer:  deb,
		clock:      clock,
		supervisor: sup,
		recorder:   rec,
		thresholds: th,
		deps: orchestration.Deps{
			Sampler:       deb,
			Clock:         clock,
			Computation:   sup,
			Controller:    orchestration.NewController(deb, sup, orchestration.WithControllerLogger(logger)),
			Logger:        logger,
			SamplePeriod:  th.SamplePeriod,
			PollPeriod:    th.SamplePeriod,
			RefreshPeriod: cfg.Refresh,
			Settle:        cfg.Settle,
		},
	}, nil
}

// view is the server's snapshot source.
func (p *panel) view() orchestration.View {
	return orchestration.CurrentView(p.supervisor, p.clock)
}
