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
	ExitErrorCounters = 2   // Indicates performance counters could not be opened.
	ExitErrorCapacity = 3   // Indicates the physical memory capacity query failed.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the process was interrupted (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as an invalid
// environment override. The application cannot start with it.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// CounterError reports that a performance counter could not be enumerated,
// opened or released. At startup it is fatal: there is no degraded mode.
type CounterError struct {
	// Path is the counter path (or object name for enumeration failures).
	Path string
	// Cause is the underlying platform error.
	Cause error
}

// Error returns a formatted message naming the counter.
func (e CounterError) Error() string {
	return fmt.Sprintf("counter %q: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying platform error.
func (e CounterError) Unwrap() error { return e.Cause }

// CapacityError reports that total physical memory could not be determined.
type CapacityError struct {
	// Cause is the underlying platform error.
	Cause error
}

// Error returns a formatted message describing the capacity failure.
func (e CapacityError) Error() string {
	return fmt.Sprintf("physical memory capacity: %v", e.Cause)
}

// Unwrap returns the underlying platform error.
func (e CapacityError) Unwrap() error { return e.Cause }

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// ErrNoCapacity is the cause used when the platform reports zero bytes of
// physical memory.
var ErrNoCapacity = errors.New("platform reported zero physical memory")

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// It returns nil if err is nil.
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

// ExitCode maps an error returned during startup or shutdown to the process
// exit status.
func ExitCode(err error) int {
	var (
		counterErr  CounterError
		capacityErr CapacityError
		configErr   ConfigError
		validErr    ValidationError
	)
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &counterErr):
		return ExitErrorCounters
	case errors.As(err, &capacityErr):
		return ExitErrorCapacity
	case errors.As(err, &configErr), errors.As(err, &validErr):
		return ExitErrorConfig
	case IsContextError(err):
		return ExitErrorCanceled
	}
	return ExitErrorGeneric
}
