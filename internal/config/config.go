package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/agbru/picalc/internal/button"
	apperrors "github.com/agbru/picalc/internal/errors"
	"github.com/agbru/picalc/internal/series"
)

// EnvPrefix is prepended to every environment variable override.
const EnvPrefix = "PICALC_"

// Defaults for every option.
const (
	DefaultAlgo         = string(series.Leibniz)
	DefaultShortPress   = button.DefaultShortPress
	DefaultLongPress    = button.DefaultLongPress
	DefaultPressTimeout = button.DefaultClassificationTimeout
	DefaultSamplePeriod = button.DefaultSamplePeriod
	DefaultEpsilon      = series.DefaultEpsilon
	DefaultRefresh      = 500 * time.Millisecond
	DefaultDuration     = 5 * time.Second
)

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// Algo is the series selected at startup.
	Algo string
	// ShortPress is the minimum hold for a short press; holds at or below it
	// are treated as bounce.
	ShortPress time.Duration
	// LongPress is the hold at which a press becomes long.
	LongPress time.Duration
	// PressTimeout is how long an unread classification stays latched.
	// Zero keeps it until read.
	PressTimeout time.Duration
	// SamplePeriod is the debounce and time-base tick.
	SamplePeriod time.Duration
	// Epsilon is the convergence tolerance around pi.
	Epsilon float64
	// StopTimer halts the time readout when the value first converges.
	StopTimer bool
	// Refresh is the display refresh interval.
	Refresh time.Duration
	// Settle delays the first button poll after startup.
	Settle time.Duration
	// Headless runs a scripted session without the TUI.
	Headless bool
	// Duration is how long a headless session computes. Zero runs until
	// interrupted.
	Duration time.Duration
	// MetricsAddr enables the HTTP metrics server when non-empty.
	MetricsAddr string
	// LogFile receives plain-text logs while the TUI owns the terminal.
	LogFile string
	Verbose bool
	NoColor bool
}

// DefaultConfig returns the configuration used when no flag or environment
// variable is set.
func DefaultConfig() AppConfig {
	return AppConfig{
		Algo:         DefaultAlgo,
		ShortPress:   DefaultShortPress,
		LongPress:    DefaultLongPress,
		PressTimeout: DefaultPressTimeout,
		SamplePeriod: DefaultSamplePeriod,
		Epsilon:      DefaultEpsilon,
		StopTimer:    true,
		Refresh:      DefaultRefresh,
		Duration:     DefaultDuration,
	}
}

// ParseConfig parses args (without the program name) into an AppConfig,
// applies environment overrides for flags left unset and validates the
// result. Usage and parse errors are written to errorOutput. A --help
// request returns flag.ErrHelp.
func ParseConfig(programName string, args []string, errorOutput io.Writer, availableAlgos []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorOutput)

	cfg := DefaultConfig()
	fs.StringVar(&cfg.Algo, "algo", cfg.Algo, fmt.Sprintf("series to compute (%s)", strings.Join(availableAlgos, ", ")))
	fs.DurationVar(&cfg.ShortPress, "short-press", cfg.ShortPress, "minimum hold for a short press")
	fs.DurationVar(&cfg.LongPress, "long-press", cfg.LongPress, "hold at which a press becomes long")
	fs.DurationVar(&cfg.PressTimeout, "press-timeout", cfg.PressTimeout, "how long an unread press stays latched (0 = until read)")
	fs.DurationVar(&cfg.SamplePeriod, "sample-period", cfg.SamplePeriod, "debounce and time-base tick")
	fs.Float64Var(&cfg.Epsilon, "epsilon", cfg.Epsilon, "convergence tolerance around pi")
	fs.BoolVar(&cfg.StopTimer, "stop-timer", cfg.StopTimer, "halt the time readout on convergence")
	fs.DurationVar(&cfg.Refresh, "refresh", cfg.Refresh, "display refresh interval")
	fs.DurationVar(&cfg.Settle, "settle", cfg.Settle, "delay before the first button poll")
	fs.BoolVar(&cfg.Headless, "headless", cfg.Headless, "run a scripted session without the TUI")
	fs.DurationVar(&cfg.Duration, "duration", cfg.Duration, "headless computation time (0 = until interrupted)")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "serve /metrics and /snapshot on this address")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write TUI-mode logs to this file")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "shorthand for --verbose")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable debug logging")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable colored output")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	applyEnvOverrides(&cfg, fs)
	cfg.Algo = strings.ToLower(strings.TrimSpace(cfg.Algo))

	if err := cfg.Validate(availableAlgos); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for consistency. It returns a
// ConfigError describing the first problem found.
func (c AppConfig) Validate(availableAlgos []string) error {
	switch {
	case c.SamplePeriod <= 0:
		return apperrors.NewConfigError("sample period must be positive, got %s", c.SamplePeriod)
	case c.ShortPress < 0:
		return apperrors.NewConfigError("short press must not be negative, got %s", c.ShortPress)
	case c.LongPress <= c.ShortPress:
		return apperrors.NewConfigError("long press (%s) must exceed short press (%s)", c.LongPress, c.ShortPress)
	case c.PressTimeout < 0:
		return apperrors.NewConfigError("press timeout must not be negative, got %s", c.PressTimeout)
	case c.Epsilon <= 0:
		return apperrors.NewConfigError("epsilon must be positive, got %g", c.Epsilon)
	case c.Refresh <= 0:
		return apperrors.NewConfigError("refresh interval must be positive, got %s", c.Refresh)
	case c.Settle < 0:
		return apperrors.NewConfigError("settle delay must not be negative, got %s", c.Settle)
	case c.Duration < 0:
		return apperrors.NewConfigError("duration must not be negative, got %s", c.Duration)
	}

	th := c.ToThresholds()
	if th.LongTicks < th.ShortTicks || th.LongTicks-th.ShortTicks < 2 {
		return apperrors.NewConfigError("short and long press are less than two sample periods apart (%d and %d ticks)",
			th.ShortTicks, th.LongTicks)
	}

	if len(availableAlgos) > 0 && !slices.Contains(availableAlgos, c.Algo) {
		return apperrors.NewConfigError("unknown algorithm %q (available: %s)", c.Algo, strings.Join(availableAlgos, ", "))
	}
	return nil
}

// ToThresholds converts the press durations to debounce ticks.
func (c AppConfig) ToThresholds() button.Thresholds {
	return button.NewThresholds(c.SamplePeriod, c.ShortPress, c.LongPress, c.PressTimeout)
}
