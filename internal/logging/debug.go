package logging

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
)

var (
	verbose atomic.Bool

	// output is where debug lines go; stdout is reserved for birthday lines.
	output io.Writer = os.Stderr
)

// DebugEnabled returns true if debug mode is enabled via the BD_DEBUG
// environment variable or the --verbose flag
func DebugEnabled() bool {
	return verbose.Load() || os.Getenv("BD_DEBUG") != ""
}

// SetVerbose turns debug output on or off regardless of BD_DEBUG
func SetVerbose(enabled bool) {
	verbose.Store(enabled)
}

// SetOutput redirects debug output and returns the previous writer
func SetOutput(w io.Writer) io.Writer {
	prev := output
	output = w
	return prev
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		fmt.Fprintf(output, format, args...)
	}
}

