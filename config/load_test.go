package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	perrors "github.com/sambeau/ddl/pkg/ddl/errors"
)

func noEnv(string) string { return "" }

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, []string{".mdddl", ".ddl", ".md"}, cfg.Watch.Extensions)
	assert.Equal(t, 200*time.Millisecond, cfg.Watch.Debounce)
	assert.False(t, cfg.Diagnostics.WarningsAsErrors)
	require.NoError(t, Validate(cfg))
}

func TestInterpolateEnv(t *testing.T) {
	getenv := func(key string) string {
		switch key {
		case "DDL_LEVEL":
			return "debug"
		case "DDL_FORMAT":
			return "json"
		default:
			return ""
		}
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple substitution",
			input:    "level: ${DDL_LEVEL}",
			expected: "level: debug",
		},
		{
			name:     "with default (env set)",
			input:    "level: ${DDL_LEVEL:-warn}",
			expected: "level: debug",
		},
		{
			name:     "with default (env not set)",
			input:    "level: ${UNSET_VAR:-warn}",
			expected: "level: warn",
		},
		{
			name:     "multiple substitutions",
			input:    "${DDL_LEVEL}/${DDL_FORMAT}",
			expected: "debug/json",
		},
		{
			name:     "no substitution needed",
			input:    "static: value",
			expected: "static: value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(interpolateEnv([]byte(tt.input), getenv)))
		})
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
diagnostics:
  warnings_as_errors: true
  ignore: [4002]
logging:
  level: ${LEVEL:-warn}
  format: json
watch:
  extensions: [".ddl"]
  debounce: 50ms
`)
	cfg, err := Parse(data, noEnv)
	require.NoError(t, err)

	assert.True(t, cfg.Diagnostics.WarningsAsErrors)
	assert.Equal(t, []int{4002}, cfg.Diagnostics.Ignore)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "stderr", cfg.Logging.Output, "unset keys keep their defaults")
	assert.Equal(t, []string{".ddl"}, cfg.Watch.Extensions)
	assert.Equal(t, 50*time.Millisecond, cfg.Watch.Debounce)

	p := cfg.Policy()
	assert.True(t, p.WarningsAsErrors)
	assert.Equal(t, []perrors.Code{perrors.WarnUndefinedStyle}, p.Ignore)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{"bad level", func(c *Config) { c.Logging.Level = "verbose" }, "invalid log level"},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "invalid log format"},
		{"unknown code", func(c *Config) { c.Diagnostics.Ignore = []int{9999} }, "unknown diagnostic code 9999"},
		{"no extensions", func(c *Config) { c.Watch.Extensions = nil }, "at least one extension"},
		{"extension without dot", func(c *Config) { c.Watch.Extensions = []string{"ddl"} }, "must start with a dot"},
		{"negative debounce", func(c *Config) { c.Watch.Debounce = -time.Second }, "must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.modify(cfg)
			err := Validate(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("logging: [unclosed"), noEnv)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoadWithPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ddlcheck.yaml")
	content := `
logging:
  level: debug
  output: logs/ddl.log
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, resolved, err := LoadWithPath(path, noEnv)
	require.NoError(t, err)
	assert.Equal(t, path, resolved)
	assert.Equal(t, dir, cfg.BaseDir)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, filepath.Join(dir, "logs", "ddl.log"), cfg.Logging.Output)
}

func TestLoad_FromEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  format: json\n"), 0o644))

	getenv := func(key string) string {
		if key == "DDLCHECK_CONFIG" {
			return path
		}
		return ""
	}
	cfg, err := Load("", getenv)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), noEnv)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")

	getenv := func(key string) string {
		if key == "DDLCHECK_CONFIG" {
			return "/does/not/exist.yaml"
		}
		return ""
	}
	_, err = Load("", getenv)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DDLCHECK_CONFIG file not found")
}
