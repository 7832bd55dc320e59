package cli

import (
	"errors"
	"testing"

	"birthdays/internal/config"
	apperrors "birthdays/internal/errors"
)

func TestErrorHandler_Handle(t *testing.T) {
	eh := NewErrorHandler()

	tests := []struct {
		name      string
		operation string
		err       error
		expected  string
	}{
		{
			name:      "Row parse error",
			operation: "read birthdays",
			err:       apperrors.NewRowParseError(3, "birthdate", errors.New("month out of range")),
			expected:  "failed to read birthdays: row 3: invalid birthdate: month out of range",
		},
		{
			name:      "File open error",
			operation: "read birthdays",
			err:       apperrors.NewFileOpenError("x.csv", errors.New("no such file or directory")),
			expected:  "failed to read birthdays: cannot open birthday file x.csv: no such file or directory",
		},
		{
			name:      "Missing date error",
			operation: "print birthdays",
			err:       apperrors.NewMissingDateError("Ann Lee"),
			expected:  "failed to print birthdays: missing birthdate for Ann Lee",
		},
		{
			name:      "Config error",
			operation: "load configuration",
			err:       &config.ConfigError{Field: "source.path", Message: "birthday file is required"},
			expected:  "failed to load configuration: invalid configuration source.path: birthday file is required",
		},
		{
			name:      "Regular error",
			operation: "process",
			err:       errors.New("regular error"),
			expected:  "failed to process: regular error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := eh.Handle(tt.operation, tt.err)
			if result.Error() != tt.expected {
				t.Errorf("ErrorHandler.Handle() = %v, want %v", result.Error(), tt.expected)
			}
			if !errors.Is(result, tt.err) {
				t.Errorf("ErrorHandler.Handle() should keep %v in the chain", tt.err)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	eh := NewErrorHandler()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"No error", nil, ExitOK},
		{"Config error", eh.Handle("load configuration", &config.ConfigError{Field: "source.path", Message: "required"}), ExitConfig},
		{"Invalid flag value", eh.Handle("read flags", apperrors.NewInvalidInputError("timeout", "0s", "must be positive")), ExitConfig},
		{"Missing file", eh.Handle("open birthdays", apperrors.NewFileOpenError("x.csv", nil)), ExitInput},
		{"Bad row", eh.Handle("read birthdays", apperrors.NewRowParseError(3, "birthdate", nil)), ExitInput},
		{"Query failure", eh.Handle("read birthdays", apperrors.NewSourceError("query birthdays", errors.New("locked"))), ExitSource},
		{"Missing date", eh.Handle("print birthdays", apperrors.NewMissingDateError("Ann")), ExitSource},
		{"Regular error", errors.New(`unknown command "extra" for "bd"`), ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.expected {
				t.Errorf("ExitCode() = %d, want %d", got, tt.expected)
			}
		})
	}
}
