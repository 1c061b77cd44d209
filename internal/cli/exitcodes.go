package cli

import (
	"errors"

	"github.com/thenoetrevino/kanban/internal/backend"
	"github.com/thenoetrevino/kanban/internal/engine"
	"github.com/thenoetrevino/kanban/internal/models"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, network errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Board, column or card not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Unparseable dates or tags.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty names or titles, invalid priorities, negative WIP limits.
	ExitValidation = 5
)

// ErrInvalidInput marks flag values that could not be parsed
var ErrInvalidInput = errors.New("invalid input")

// UsageError is returned when the command line itself is wrong
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// ExitCode maps an error returned by a command onto an exit code
func ExitCode(err error) int {
	var usage *UsageError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &usage):
		return ExitUsage
	case errors.Is(err, models.ErrValidation):
		return ExitValidation
	case isNotFound(err):
		return ExitNotFound
	case errors.Is(err, ErrInvalidInput):
		return ExitDataErr
	default:
		return ExitError
	}
}

// errorCode is the machine-readable code printed with an error
func errorCode(err error) string {
	switch ExitCode(err) {
	case ExitUsage:
		return "USAGE_ERROR"
	case ExitValidation:
		return "VALIDATION_ERROR"
	case ExitNotFound:
		return "NOT_FOUND"
	case ExitDataErr:
		return "INVALID_INPUT"
	default:
		return "ERROR"
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, backend.ErrNotFound) ||
		errors.Is(err, engine.ErrNoBoard) ||
		errors.Is(err, engine.ErrColumnNotFound) ||
		errors.Is(err, engine.ErrCardNotFound)
}
