package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"
	"unicode/utf8"
)

// Config holds all configuration options for the birthday reminder
type Config struct {
	Source      SourceConfig
	Window      WindowConfig
	Display     DisplayConfig
	Application ApplicationConfig
}

// SourceConfig describes where birthdays are read from and how
type SourceConfig struct {
	Path       string `env:"BD_BIRTHDAY_FILE"`
	Delimiter  rune   `env:"BD_DELIMITER"`
	DateFormat string `env:"BD_DATE_FORMAT"`
	Table      string `env:"BD_TABLE"`
}

// WindowConfig holds the look-ahead window and urgency threshold
type WindowConfig struct {
	Days         int  `env:"BD_DAYS"`
	UrgentWithin int  `env:"BD_URGENT_DAYS"`
	WrapYear     bool `env:"BD_WRAP"`
}

// DisplayConfig holds output formatting configuration
type DisplayConfig struct {
	NoColor bool `env:"BD_NO_COLOR"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"BD_TIMEOUT"`
	Verbose bool          `env:"BD_VERBOSE"`
}

const (
	DefaultDays       = 7
	DefaultDelimiter  = ';'
	DefaultDateFormat = "2-1-2006"
	DefaultTable      = "birthdays"
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Source: SourceConfig{
			Delimiter:  DefaultDelimiter,
			DateFormat: DefaultDateFormat,
			Table:      DefaultTable,
		},
		Window: WindowConfig{
			Days:         DefaultDays,
			UrgentWithin: 2,
			WrapYear:     false,
		},
		Display: DisplayConfig{
			NoColor: false,
		},
		Application: ApplicationConfig{
			Timeout: 30 * time.Second,
			Verbose: false,
		},
	}
}

// LoadFromEnvironment loads configuration from environment variables.
// Values that do not parse are ignored and the current setting is kept.
func (c *Config) LoadFromEnvironment() error {
	// Source configuration
	if path := os.Getenv("BD_BIRTHDAY_FILE"); path != "" {
		c.Source.Path = path
	}
	if delim := os.Getenv("BD_DELIMITER"); delim != "" {
		if r, err := ParseDelimiter(delim); err == nil {
			c.Source.Delimiter = r
		}
	}
	if format := os.Getenv("BD_DATE_FORMAT"); format != "" {
		c.Source.DateFormat = format
	}
	if table := os.Getenv("BD_TABLE"); table != "" {
		c.Source.Table = table
	}

	// Window configuration
	if days := os.Getenv("BD_DAYS"); days != "" {
		c.Window.Days = ParseIntWithFallback(days, c.Window.Days)
	}
	if urgent := os.Getenv("BD_URGENT_DAYS"); urgent != "" {
		c.Window.UrgentWithin = ParseIntWithFallback(urgent, c.Window.UrgentWithin)
	}
	if wrap := os.Getenv("BD_WRAP"); wrap != "" {
		c.Window.WrapYear = ParseBoolWithFallback(wrap, c.Window.WrapYear)
	}

	// Display configuration
	if noColor := os.Getenv("BD_NO_COLOR"); noColor != "" {
		c.Display.NoColor = ParseBoolWithFallback(noColor, c.Display.NoColor)
	}

	// Application configuration
	if timeout := os.Getenv("BD_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if verbose := os.Getenv("BD_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate source configuration
	if c.Source.Path == "" {
		return &ConfigError{Field: "source.path", Message: "birthday file is required"}
	}
	if !validDelimiter(c.Source.Delimiter) {
		return &ConfigError{Field: "source.delimiter", Message: fmt.Sprintf("%q cannot be used as a delimiter", c.Source.Delimiter)}
	}
	if c.Source.DateFormat == "" {
		return &ConfigError{Field: "source.date_format", Message: "date format cannot be empty"}
	}
	if !tableNamePattern.MatchString(c.Source.Table) {
		return &ConfigError{Field: "source.table", Message: "table name must be a plain identifier"}
	}

	// Validate window configuration
	if c.Window.UrgentWithin < 0 {
		return &ConfigError{Field: "window.urgent_within", Message: "urgent days cannot be negative"}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}

// ParseDelimiter turns a flag or environment value into a CSV delimiter.
// "tab" and `\t` both mean a tab character.
func ParseDelimiter(s string) (rune, error) {
	switch s {
	case "tab", `\t`:
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r == utf8.RuneError {
		return 0, &ConfigError{Field: "source.delimiter", Message: "delimiter must be a single character"}
	}
	if !validDelimiter(r) {
		return 0, &ConfigError{Field: "source.delimiter", Message: fmt.Sprintf("%q cannot be used as a delimiter", r)}
	}
	return r, nil
}

// validDelimiter mirrors the restrictions encoding/csv places on Comma
func validDelimiter(r rune) bool {
	return r != 0 && r != '"' && r != '\r' && r != '\n' && utf8.ValidRune(r) && r != utf8.RuneError
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}
