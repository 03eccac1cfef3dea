package config

import (
	"time"

	perrors "github.com/sambeau/ddl/pkg/ddl/errors"
)

// Config represents the complete ddlcheck configuration
type Config struct {
	BaseDir     string            `yaml:"-"` // Directory containing config file, for resolving relative paths
	Diagnostics DiagnosticsConfig `yaml:"diagnostics"`
	Logging     LoggingConfig     `yaml:"logging"`
	Watch       WatchConfig       `yaml:"watch"`
}

// DiagnosticsConfig controls how recorded diagnostics are filtered and promoted
type DiagnosticsConfig struct {
	WarningsAsErrors bool  `yaml:"warnings_as_errors"`
	Ignore           []int `yaml:"ignore"` // Diagnostic codes that are never recorded (e.g., [4002])
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
	Output string `yaml:"output"` // "stderr" (default), "stdout" or a file path
}

// WatchConfig holds settings for watch mode
type WatchConfig struct {
	Extensions []string      `yaml:"extensions"` // File extensions that trigger a re-check
	Debounce   time.Duration `yaml:"debounce"`   // Quiet period before re-checking a changed file
}

// Defaults returns a Config with sensible default values
func Defaults() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
		Watch: WatchConfig{
			Extensions: []string{".mdddl", ".ddl", ".md"},
			Debounce:   200 * time.Millisecond,
		},
	}
}

// Policy converts the diagnostics settings into a sink policy.
func (c *Config) Policy() perrors.Policy {
	p := perrors.Policy{WarningsAsErrors: c.Diagnostics.WarningsAsErrors}
	for _, code := range c.Diagnostics.Ignore {
		p.Ignore = append(p.Ignore, perrors.Code(code))
	}
	return p
}
