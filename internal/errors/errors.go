package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the run deadline was exceeded.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// Sentinel errors matched by the structured types below through errors.Is.
var (
	// ErrInvalidTransition is matched by every InvalidTransitionError.
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrUnconfiguredLine is matched by every UnconfiguredLineError.
	ErrUnconfiguredLine = errors.New("unconfigured line")
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// InvalidTransitionError reports a supervisor command issued from a state
// that forbids it. The command is not applied and the supervisor keeps its
// prior state; the condition is never fatal.
type InvalidTransitionError struct {
	// Op is the rejected command (e.g., "start").
	Op string
	// State is the supervisor state at the time of the command.
	State string
}

// Error returns a formatted message describing the rejected transition.
func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition: %s while %s", e.Op, e.State)
}

// Is reports whether target is ErrInvalidTransition.
func (e InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// UnconfiguredLineError reports access to a button line that was never
// configured or lies outside the debouncer's line range. Such lines always
// read as Idle.
type UnconfiguredLineError struct {
	// Line is the offending line identifier.
	Line int
}

// Error returns a formatted message naming the line.
func (e UnconfiguredLineError) Error() string {
	return fmt.Sprintf("button line %d is not configured", e.Line)
}

// Is reports whether target is ErrUnconfiguredLine.
func (e UnconfiguredLineError) Is(target error) bool {
	return target == ErrUnconfiguredLine
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCodeFor maps an error returned by a run to a process exit code.
// A nil error and a plain cancellation (the user quit) both map to success
// when graceful is true.
func ExitCodeFor(err error, graceful bool) int {
	var cfgErr ConfigError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &cfgErr):
		return ExitErrorConfig
	case errors.Is(err, context.DeadlineExceeded):
		if graceful {
			return ExitSuccess
		}
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		if graceful {
			return ExitSuccess
		}
		return ExitErrorCanceled
	default:
		return ExitErrorGeneric
	}
}
