package cli

import (
	stderrors "errors"
	"fmt"

	"birthdays/internal/config"
	"birthdays/internal/errors"
	"birthdays/internal/logging"
)

// Process exit codes
const (
	ExitOK      = 0
	ExitFailure = 1 // anything not classified below, including cobra usage errors
	ExitConfig  = 2 // invalid flag, environment value or configuration
	ExitInput   = 3 // birthday file missing, unreadable or malformed
	ExitSource  = 4 // database query failed or a record could not be printed
)

// ErrorHandler provides centralized error handling for the command
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// handledError carries the message shown to the user while keeping the
// original error reachable for ExitCode
type handledError struct {
	msg   string
	cause error
}

func (e *handledError) Error() string { return e.msg }
func (e *handledError) Unwrap() error { return e.cause }

// Handle provides user-friendly error messages for configuration and application errors
func (eh *ErrorHandler) Handle(operation string, err error) error {
	var configErr *config.ConfigError
	if stderrors.As(err, &configErr) {
		return &handledError{
			msg:   fmt.Sprintf("failed to %s: invalid configuration %s", operation, configErr.Error()),
			cause: err,
		}
	}

	if appErr, ok := errors.AsAppError(err); ok {
		if errors.ShouldLogError(err) {
			logging.Debugf("%s [%s]: %v\n", operation, appErr.Code, err)
		}
		return &handledError{
			msg:   fmt.Sprintf("failed to %s: %s", operation, errors.GetUserMessage(err)),
			cause: err,
		}
	}

	// Fallback for unknown errors
	return fmt.Errorf("failed to %s: %w", operation, err)
}

// ExitCode maps an error returned by the root command to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var configErr *config.ConfigError
	if stderrors.As(err, &configErr) {
		return ExitConfig
	}

	switch errors.GetErrorCode(err) {
	case errors.CodeInvalidInput:
		return ExitConfig
	case errors.CodeFileOpen, errors.CodeRowParse:
		return ExitInput
	case errors.CodeSource, errors.CodeMissingDate:
		return ExitSource
	default:
		return ExitFailure
	}
}
