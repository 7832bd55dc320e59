package errors

import (
	"errors"
	"testing"
)

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		name      string
		errorType ErrorType
		expected  string
	}{
		{"FileOpen", ErrorTypeFileOpen, "file_open"},
		{"RowParse", ErrorTypeRowParse, "row_parse"},
		{"MissingDate", ErrorTypeMissingDate, "missing_date"},
		{"InvalidInput", ErrorTypeInvalidInput, "invalid_input"},
		{"Source", ErrorTypeSource, "source"},
		{"Unknown", ErrorType(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.errorType.String()
			if result != tt.expected {
				t.Errorf("ErrorType.String() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		expected string
	}{
		{
			name: "Error without cause",
			appError: &AppError{
				Type:    ErrorTypeMissingDate,
				Message: "missing birthdate for Ann",
			},
			expected: "missing_date: missing birthdate for Ann",
		},
		{
			name: "Error with cause",
			appError: &AppError{
				Type:    ErrorTypeRowParse,
				Message: "row 3: invalid birthdate",
				Cause:   errors.New("month out of range"),
			},
			expected: "row_parse: row 3: invalid birthdate: month out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.appError.Error()
			if result != tt.expected {
				t.Errorf("AppError.Error() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("permission denied")
	appError := NewFileOpenError("people.csv", cause)

	if appError.Unwrap() != cause {
		t.Errorf("AppError.Unwrap() = %v, want %v", appError.Unwrap(), cause)
	}
	if !errors.Is(appError, cause) {
		t.Errorf("errors.Is should find the cause through Unwrap")
	}
}

func TestAppError_Is(t *testing.T) {
	line3 := NewRowParseError(3, "birthdate", nil)
	line9 := NewRowParseError(9, "", nil)
	fileErr := NewFileOpenError("x.csv", nil)

	tests := []struct {
		name     string
		err      *AppError
		target   error
		expected bool
	}{
		{"Same type at another location", line3, line9, true},
		{"Different type", line3, fileErr, false},
		{"Regular error", line3, errors.New("regular error"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.err.Is(tt.target)
			if result != tt.expected {
				t.Errorf("AppError.Is() = %v, want %v", result, tt.expected)
			}
		})
	}
}
