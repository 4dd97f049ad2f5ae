package orchestration

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/picalc/internal/button"
	apperrors "github.com/agbru/picalc/internal/errors"
	"github.com/agbru/picalc/internal/logging"
	"github.com/agbru/picalc/internal/series"
)

const tracerName = "github.com/agbru/picalc/internal/orchestration"

// Command is a supervisor operation triggered by a button.
type Command uint8

const (
	CommandNone Command = iota
	CommandStart
	CommandStop
	CommandReset
	CommandNext
)

// String returns the lower-case command name.
func (c Command) String() string {
	switch c {
	case CommandStart:
		return "start"
	case CommandStop:
		return "stop"
	case CommandReset:
		return "reset"
	case CommandNext:
		return "next"
	default:
		return "none"
	}
}

// Lines of the four-button panel, labelled "START STOP RST CHNG".
const (
	LineStart button.LineID = iota
	LineStop
	LineReset
	LineChange
)

// Binding maps one classification on one line to a command.
type Binding struct {
	Line    button.LineID
	Press   button.Classification
	Command Command
}

// DefaultBindings binds a short press on each panel line. Long presses are
// left unbound.
func DefaultBindings() []Binding {
	return []Binding{
		{Line: LineStart, Press: button.Short, Command: CommandStart},
		{Line: LineStop, Press: button.Short, Command: CommandStop},
		{Line: LineReset, Press: button.Short, Command: CommandReset},
		{Line: LineChange, Press: button.Short, Command: CommandNext},
	}
}

// Controller polls the debouncer and dispatches bound commands to the
// computation.
type Controller struct {
	buttons  ButtonReader
	comp     Computation
	bindings []Binding
	lines    []button.LineID
	logger   logging.Logger
	tracer   trace.Tracer
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithBindings replaces the default bindings.
func WithBindings(b []Binding) ControllerOption {
	return func(c *Controller) {
		c.bindings = append([]Binding(nil), b...)
	}
}

// WithControllerLogger sets the controller logger.
func WithControllerLogger(l logging.Logger) ControllerOption {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTracer sets the tracer used for command spans. The global provider's
// tracer is used otherwise.
func WithTracer(t trace.Tracer) ControllerOption {
	return func(c *Controller) {
		if t != nil {
			c.tracer = t
		}
	}
}

// NewController returns a controller using DefaultBindings unless overridden.
func NewController(buttons ButtonReader, comp Computation, opts ...ControllerOption) *Controller {
	c := &Controller{
		buttons:  buttons,
		comp:     comp,
		bindings: DefaultBindings(),
		logger:   logging.NewNopLogger(),
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	seen := make(map[button.LineID]bool, len(c.bindings))
	for _, b := range c.bindings {
		if !seen[b.Line] {
			seen[b.Line] = true
			c.lines = append(c.lines, b.Line)
		}
	}
	return c
}

// Poll reads every bound line once, clearing its classification, and
// dispatches the matching commands. It returns the commands that were
// accepted.
func (c *Controller) Poll(ctx context.Context) []Command {
	var accepted []Command
	for _, id := range c.lines {
		class := c.buttons.Read(id, true)
		if class == button.Idle {
			continue
		}
		cmd := c.lookup(id, class)
		if cmd == CommandNone {
			c.logger.Debug("unbound press",
				logging.Int("line", int(id)),
				logging.String("press", class.String()))
			continue
		}
		if err := c.Dispatch(ctx, cmd); err == nil {
			accepted = append(accepted, cmd)
		}
	}
	return accepted
}

func (c *Controller) lookup(id button.LineID, class button.Classification) Command {
	for _, b := range c.bindings {
		if b.Line == id && b.Press == class {
			return b.Command
		}
	}
	return CommandNone
}

// Dispatch runs one command against the computation inside a span. Commands
// refused in the current state are logged at debug level and returned.
func (c *Controller) Dispatch(ctx context.Context, cmd Command) error {
	_, span := c.tracer.Start(ctx, "picalc.command",
		trace.WithAttributes(attribute.String("command", cmd.String())))
	defer span.End()

	var err error
	switch cmd {
	case CommandStart:
		err = c.comp.Start()
	case CommandStop:
		err = c.comp.Stop()
	case CommandReset:
		err = c.comp.Reset()
	case CommandNext:
		var kind series.Kind
		if kind, err = c.comp.NextAlgorithm(); err == nil {
			span.SetAttributes(attribute.String("algorithm", string(kind)))
		}
	default:
		err = fmt.Errorf("unknown command %d", cmd)
	}

	switch {
	case err == nil:
		c.logger.Debug("command dispatched", logging.String("command", cmd.String()))
	case errors.Is(err, apperrors.ErrInvalidTransition):
		span.SetAttributes(attribute.Bool("rejected", true))
		c.logger.Debug("command rejected", logging.String("command", cmd.String()), logging.Err(err))
	default:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.Error("command failed", err, logging.String("command", cmd.String()))
	}
	return err
}
