package errors

import (
	"errors"
	"fmt"
)

// NewFileOpenError creates an error for a birthday file that cannot be opened
func NewFileOpenError(path string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeFileOpen,
		Code:    CodeFileOpen,
		Message: fmt.Sprintf("cannot open birthday file %s", path),
		Cause:   cause,
		Where:   Location{Path: path},
	}
}

// NewRowParseError creates an error for a row that could not be turned into a record.
// Line is the 1-based line (or row id) of the offending row.
func NewRowParseError(line int, field string, cause error) *AppError {
	msg := fmt.Sprintf("row %d is malformed", line)
	if field != "" {
		msg = fmt.Sprintf("row %d: invalid %s", line, field)
	}
	return &AppError{
		Type:    ErrorTypeRowParse,
		Code:    CodeRowParse,
		Message: msg,
		Cause:   cause,
		Where:   Location{Line: line, Field: field},
	}
}

// NewMissingDateError creates an error for a record that reached output without a birthdate
func NewMissingDateError(name string) *AppError {
	return &AppError{
		Type:    ErrorTypeMissingDate,
		Code:    CodeMissingDate,
		Message: fmt.Sprintf("missing birthdate for %s", name),
	}
}

// NewInvalidInputError creates an error for a flag or setting with an unusable value
func NewInvalidInputError(field string, value interface{}, reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidInput,
		Code:    CodeInvalidInput,
		Message: fmt.Sprintf("invalid input for %s %q: %s", field, fmt.Sprint(value), reason),
		Where:   Location{Field: field},
	}
}

// NewSourceError creates an error for a record source that failed while being read
func NewSourceError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeSource,
		Code:    CodeSource,
		Message: fmt.Sprintf("reading birthdays failed: %s", operation),
		Cause:   cause,
	}
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// GetUserMessage returns a user-friendly error message.
// Parse and open failures keep their cause so the bad input can be located.
func GetUserMessage(err error) string {
	appErr, ok := AsAppError(err)
	if !ok {
		return err.Error()
	}
	switch appErr.Type {
	case ErrorTypeFileOpen, ErrorTypeRowParse, ErrorTypeSource:
		if appErr.Cause != nil {
			return fmt.Sprintf("%s: %v", appErr.Message, appErr.Cause)
		}
		return appErr.Message
	case ErrorTypeMissingDate, ErrorTypeInvalidInput:
		return appErr.Message
	default:
		return "An unexpected error occurred."
	}
}

// GetErrorCode returns the code of the first AppError in err's chain
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return CodeUnknown
}

// ShouldLogError reports whether err is worth a debug line on top of the
// message shown to the user. Bad input is already fully described there.
func ShouldLogError(err error) bool {
	appErr, ok := AsAppError(err)
	if !ok {
		return true
	}
	switch appErr.Type {
	case ErrorTypeRowParse, ErrorTypeInvalidInput, ErrorTypeFileOpen:
		return false
	default:
		return true
	}
}
