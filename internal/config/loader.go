package config

import (
	"strconv"
	"time"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with environment variables
//
// The result is not validated: the birthday file usually arrives as a flag.
func (l *Loader) Load() (*Config, error) {
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}
	return l.config, nil
}

// LoadWithOverrides loads configuration, applies command line overrides
// and validates the result
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigOverrides holds command line flag overrides. A nil field means
// the flag was not given.
type ConfigOverrides struct {
	// Source overrides
	Path       *string
	Delimiter  *rune
	DateFormat *string
	Table      *string

	// Window overrides
	Days         *int
	UrgentWithin *int
	WrapYear     *bool

	// Display overrides
	NoColor *bool

	// Application overrides
	Timeout *time.Duration
	Verbose *bool
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	// Source overrides
	if overrides.Path != nil {
		config.Source.Path = *overrides.Path
	}
	if overrides.Delimiter != nil {
		config.Source.Delimiter = *overrides.Delimiter
	}
	if overrides.DateFormat != nil {
		config.Source.DateFormat = *overrides.DateFormat
	}
	if overrides.Table != nil {
		config.Source.Table = *overrides.Table
	}

	// Window overrides
	if overrides.Days != nil {
		config.Window.Days = *overrides.Days
	}
	if overrides.UrgentWithin != nil {
		config.Window.UrgentWithin = *overrides.UrgentWithin
	}
	if overrides.WrapYear != nil {
		config.Window.WrapYear = *overrides.WrapYear
	}

	// Display overrides
	if overrides.NoColor != nil {
		config.Display.NoColor = *overrides.NoColor
	}

	// Application overrides
	if overrides.Timeout != nil {
		config.Application.Timeout = *overrides.Timeout
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}
