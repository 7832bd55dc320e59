package errors

import (
	"fmt"
)

// ErrorType says which stage of reading or printing birthdays failed
type ErrorType int

const (
	ErrorTypeFileOpen     ErrorType = iota // birthday file missing or unreadable
	ErrorTypeRowParse                      // header, column count or birthdate
	ErrorTypeMissingDate                   // record reached output without a date
	ErrorTypeInvalidInput                  // flag or environment value
	ErrorTypeSource                        // database query or scan
)

var errorTypeNames = map[ErrorType]string{
	ErrorTypeFileOpen:     "file_open",
	ErrorTypeRowParse:     "row_parse",
	ErrorTypeMissingDate:  "missing_date",
	ErrorTypeInvalidInput: "invalid_input",
	ErrorTypeSource:       "source",
}

// String returns the snake_case name of the error type
func (et ErrorType) String() string {
	if name, ok := errorTypeNames[et]; ok {
		return name
	}
	return "unknown"
}

// Stable codes, one per error type
const (
	CodeFileOpen     = "FILE_OPEN_FAILED"
	CodeRowParse     = "ROW_PARSE_FAILED"
	CodeMissingDate  = "MISSING_DATE"
	CodeInvalidInput = "INVALID_INPUT"
	CodeSource       = "SOURCE_FAILED"
	CodeUnknown      = "UNKNOWN_ERROR"
)

// Location points at the input an error is about. Unset fields are zero.
type Location struct {
	Path  string // birthday file or database
	Line  int    // CSV line or SQLite rowid
	Field string // column, flag or setting name
}

// AppError is a failure while reading, filtering or printing birthdays
type AppError struct {
	Type    ErrorType
	Code    string
	Message string
	Cause   error
	Where   Location
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Type, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches another AppError with the same type and code, wherever it points
func (e *AppError) Is(target error) bool {
	other, ok := target.(*AppError)
	return ok && e.Type == other.Type && e.Code == other.Code
}
