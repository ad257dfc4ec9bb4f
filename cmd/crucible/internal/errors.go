package internal

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/crucible/dijkstra"
	"github.com/katalvlaran/crucible/grid"
	"github.com/katalvlaran/crucible/internal/config"
)

// Exit code constants for the CLI
const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitError indicates a general error
	ExitError = 1
	// ExitUsageError indicates invalid flags or arguments
	ExitUsageError = 2
	// ExitCancelled indicates the operation was cancelled
	ExitCancelled = 4
	// ExitConfigError indicates a configuration error
	ExitConfigError = 10
	// ExitInputError indicates an unreadable or malformed grid
	ExitInputError = 11
)

// CLIError represents a CLI-specific error with an exit code
type CLIError struct {
	Code    int
	Message string
	Cause   error
}

// Error implements the error interface
func (e *CLIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause error
func (e *CLIError) Unwrap() error {
	return e.Cause
}

// WrapError creates a new CLIError wrapping an existing error
func WrapError(code int, message string, err error) *CLIError {
	return &CLIError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// NewCLIError creates a new CLIError with the given code and message
func NewCLIError(code int, message string) *CLIError {
	return &CLIError{
		Code:    code,
		Message: message,
	}
}

// ExitCode classifies err without printing it.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var cliErr *CLIError
	switch {
	case errors.Is(err, context.Canceled):
		return ExitCancelled
	case errors.As(err, &cliErr):
		return cliErr.Code
	case errors.Is(err, config.ErrInvalidConfig), errors.Is(err, dijkstra.ErrBadRunWindow):
		return ExitConfigError
	case errors.Is(err, grid.ErrEmptyGrid),
		errors.Is(err, grid.ErrNonRectangular),
		errors.Is(err, grid.ErrNotDigit),
		errors.Is(err, grid.ErrCellRange):
		return ExitInputError
	}

	return ExitError
}

// HandleError prints err to the command's error output and returns the
// exit code for it.
func HandleError(cmd *cobra.Command, err error) int {
	code := ExitCode(err)
	switch code {
	case ExitSuccess:
		return code
	case ExitCancelled:
		cmd.PrintErrln("Operation cancelled")
	default:
		cmd.PrintErrln("Error:", err)
	}

	return code
}
