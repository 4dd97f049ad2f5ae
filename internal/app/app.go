package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/agbru/picalc/internal/cli"
	"github.com/agbru/picalc/internal/config"
	apperrors "github.com/agbru/picalc/internal/errors"
	"github.com/agbru/picalc/internal/logging"
	"github.com/agbru/picalc/internal/series"
	"github.com/agbru/picalc/internal/server"
	"github.com/agbru/picalc/internal/tui"
	"github.com/agbru/picalc/internal/ui"
)

// Application represents the picalc application instance.
type Application struct {
	Config    config.AppConfig
	Factory   series.Factory
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom series factory for the application.
func WithFactory(f series.Factory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = series.NewDefaultFactory()
	}

	programName := "picalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, kindNames(app.Factory))
	if err != nil {
		var cfgErr apperrors.ConfigError
		// The flag package has already printed its own parse errors.
		if errors.As(err, &cfgErr) {
			fmt.Fprintf(errWriter, "Error: %v\n", err)
		}
		return nil, err
	}
	app.Config = cfg
	return app, nil
}

// Run executes the application in the configured mode and returns the
// process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(a.Config.NoColor)
	logger, closeLog, err := a.newLogger()
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	defer closeLog()

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	p, err := newPanel(a.Config, a.Factory, logger)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitCodeFor(err, false)
	}

	srvCtx, stopServer := context.WithCancel(ctx)
	defer stopServer()
	srvDone := make(chan error, 1)
	if a.Config.MetricsAddr != "" {
		srv := server.New(a.Config.MetricsAddr, p.recorder, p.view, server.WithLogger(logger))
		go func() { srvDone <- srv.Serve(srvCtx) }()
	} else {
		srvDone <- nil
	}

	if a.Config.Headless {
		err = a.runHeadless(ctx, p, out)
	} else {
		err = a.runTUI(ctx, p)
	}

	stopServer()
	if srvErr := <-srvDone; srvErr != nil {
		logger.Error("metrics server failed", srvErr)
		if err == nil {
			err = apperrors.WrapError(srvErr, "metrics server")
		}
	}

	code := apperrors.ExitCodeFor(err, true)
	if code != apperrors.ExitSuccess {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
	}
	return code
}

// runHeadless runs the scripted session and prints its summary to out.
func (a *Application) runHeadless(ctx context.Context, p *panel, out io.Writer) error {
	_, err := cli.Run(ctx, cli.Config{
		Deps:       p.deps,
		Buttons:    p.port,
		Thresholds: p.thresholds,
		Duration:   a.Config.Duration,
		Out:        out,
	})
	return err
}

// runTUI launches the interactive display.
func (a *Application) runTUI(ctx context.Context, p *panel) error {
	return tui.Run(ctx, tui.Config{
		Deps:       p.deps,
		Buttons:    p.port,
		Thresholds: p.thresholds,
		Version:    Version,
	})
}

// newLogger builds the session logger. The TUI owns the terminal, so it
// only logs errors unless verbose output was requested, or sends plain text
// to the configured log file.
func (a *Application) newLogger() (logging.Logger, func(), error) {
	session := uuid.NewString()
	if !a.Config.Headless && a.Config.LogFile != "" {
		f, err := tea.LogToFile(a.Config.LogFile, "picalc")
		if err != nil {
			return nil, nil, apperrors.NewConfigError("cannot open log file %q: %v", a.Config.LogFile, err)
		}
		log.Printf("session %s started", session)
		return logging.NewStdLoggerAdapter(log.Default()), func() { _ = f.Close() }, nil
	}

	level := zerolog.InfoLevel
	switch {
	case a.Config.Verbose:
		level = zerolog.DebugLevel
	case !a.Config.Headless:
		level = zerolog.ErrorLevel
	}
	logger := logging.NewLogger(a.ErrWriter, "picalc").
		Level(level).
		With(logging.String("session", session))
	return logger, func() {}, nil
}

// kindNames lists the factory's kinds as strings for flag validation.
func kindNames(f series.Factory) []string {
	kinds := f.List()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return names
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// ExitCodeForParseError maps an error returned by New to an exit code.
func ExitCodeForParseError(err error) int {
	if IsHelpError(err) {
		return apperrors.ExitSuccess
	}
	return apperrors.ExitErrorConfig
}
