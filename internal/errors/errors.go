// Package errors provides structured error types and exit codes for the orchestrator.
package errors

import (
	"errors"
	"fmt"
)

// Exit codes returned by the CLI.
const (
	ExitSuccess      = 0 // Success
	ExitRuntimeError = 1 // Runtime error (build failed, operation cancelled, etc.)
	ExitConfigError  = 2 // Configuration error (invalid config, bad flag combination, etc.)
	ExitLaunchError  = 3 // Launch error (cargo binary missing, bad working directory, etc.)
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindConfig
	KindValidation
	// KindLaunch means the external toolchain process could not be started at
	// all. It is a hard failure of the operation: no build result exists.
	KindLaunch
	// KindCancelled means the caller abandoned the operation (context cancel
	// or deadline). Distinct from a failed build: no build result exists.
	KindCancelled
)

// OrchestratorError is the base error type for the orchestrator.
type OrchestratorError struct {
	Kind    ErrorKind
	Message string
	Command string // Cargo subcommand if applicable (e.g., "build", "clippy")
	Cause   error  // Underlying error
}

func (e *OrchestratorError) Error() string {
	msg := e.Message
	if e.Command != "" {
		msg = fmt.Sprintf("cargo %s: %s", e.Command, msg)
	}
	if e.Cause != nil && e.Cause.Error() != e.Message {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *OrchestratorError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *OrchestratorError) ExitCode() int {
	switch e.Kind {
	case KindConfig, KindValidation:
		return ExitConfigError
	case KindLaunch:
		return ExitLaunchError
	default:
		return ExitRuntimeError
	}
}

// New creates a new runtime error.
func New(message string) *OrchestratorError {
	return &OrchestratorError{
		Kind:    KindRuntime,
		Message: message,
	}
}

// Newf creates a new runtime error with formatting.
func Newf(format string, args ...interface{}) *OrchestratorError {
	return New(fmt.Sprintf(format, args...))
}

// Config creates a new configuration error.
func Config(message string) *OrchestratorError {
	return &OrchestratorError{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *OrchestratorError {
	return Config(fmt.Sprintf(format, args...))
}

// Launch creates a launch error for a cargo subcommand.
func Launch(command string, cause error) *OrchestratorError {
	return &OrchestratorError{
		Kind:    KindLaunch,
		Message: cause.Error(),
		Command: command,
		Cause:   cause,
	}
}

// Cancelled creates a cancellation error wrapping the context error, so that
// errors.Is(err, context.Canceled) keeps working for callers.
func Cancelled(command string, cause error) *OrchestratorError {
	return &OrchestratorError{
		Kind:    KindCancelled,
		Message: "operation cancelled",
		Command: command,
		Cause:   cause,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *OrchestratorError {
	return &OrchestratorError{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// IsLaunch returns true if the error is or wraps a launch error.
func IsLaunch(err error) bool {
	var oe *OrchestratorError
	return errors.As(err, &oe) && oe.Kind == KindLaunch
}

// IsCancelled returns true if the error is or wraps a cancellation error.
func IsCancelled(err error) bool {
	var oe *OrchestratorError
	return errors.As(err, &oe) && oe.Kind == KindCancelled
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var oe *OrchestratorError
	if errors.As(err, &oe) {
		return oe.ExitCode()
	}
	return ExitRuntimeError
}
