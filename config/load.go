package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	perrors "github.com/sambeau/ddl/pkg/ddl/errors"
)

// Load returns the configuration for ddlcheck. With an empty configPath
// the usual locations are searched; finding no file yields Defaults().
func Load(configPath string, getenv func(string) string) (*Config, error) {
	cfg, _, err := LoadWithPath(configPath, getenv)
	return cfg, err
}

// LoadWithPath is Load that also reports the absolute path of the file it
// read, or "" for the defaults.
func LoadWithPath(configPath string, getenv func(string) string) (*Config, string, error) {
	path, err := resolveConfigPath(configPath, getenv)
	if err != nil {
		return nil, "", err
	}
	if path == "" {
		return Defaults(), "", nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to resolve config path: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Parse(data, getenv)
	if err != nil {
		return nil, "", err
	}
	cfg.BaseDir = filepath.Dir(absPath)

	// log files are relative to the config file
	if out := cfg.Logging.Output; out != "" && out != "stderr" && out != "stdout" && !filepath.IsAbs(out) {
		cfg.Logging.Output = filepath.Join(cfg.BaseDir, out)
	}

	return cfg, absPath, nil
}

// Parse decodes YAML configuration over the defaults and validates it.
func Parse(data []byte, getenv func(string) string) (*Config, error) {
	data = interpolateEnv(data, getenv)

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// configFile is looked up in the working directory and then in the
// user's config directory.
const configFile = "ddlcheck.yaml"

// resolveConfigPath returns the file to load, or "" to use the defaults.
// A path named by the flag or by DDLCHECK_CONFIG must exist.
func resolveConfigPath(explicit string, getenv func(string) string) (string, error) {
	named := []struct{ source, path string }{
		{"config file", explicit},
		{"DDLCHECK_CONFIG file", getenv("DDLCHECK_CONFIG")},
	}
	for _, n := range named {
		if n.path == "" {
			continue
		}
		if _, err := os.Stat(n.path); err != nil {
			return "", fmt.Errorf("%s not found: %s", n.source, n.path)
		}
		return n.path, nil
	}

	candidates := []string{configFile}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "ddlcheck", configFile))
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c, nil
		}
	}
	return "", nil
}

// envRef matches ${NAME} and ${NAME:-fallback}.
var envRef = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// interpolateEnv expands environment references in raw YAML. An unset or
// empty variable expands to its fallback, or to nothing.
func interpolateEnv(data []byte, getenv func(string) string) []byte {
	return envRef.ReplaceAllFunc(data, func(ref []byte) []byte {
		m := envRef.FindSubmatch(ref)
		if v := getenv(string(m[1])); v != "" {
			return []byte(v)
		}
		return m[2]
	})
}

// Validate checks the configuration for errors.
func Validate(cfg *Config) error {
	var errs []string

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		errs = append(errs, fmt.Sprintf("invalid log level: %s (must be debug, info, warn, or error)", cfg.Logging.Level))
	}

	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[cfg.Logging.Format] {
		errs = append(errs, fmt.Sprintf("invalid log format: %s (must be json or text)", cfg.Logging.Format))
	}

	for i, code := range cfg.Diagnostics.Ignore {
		if _, ok := perrors.Catalog[perrors.Code(code)]; !ok {
			errs = append(errs, fmt.Sprintf("diagnostics.ignore[%d]: unknown diagnostic code %d", i, code))
		}
	}

	if len(cfg.Watch.Extensions) == 0 {
		errs = append(errs, "watch.extensions: at least one extension is required")
	}
	for i, ext := range cfg.Watch.Extensions {
		if !strings.HasPrefix(ext, ".") {
			errs = append(errs, fmt.Sprintf("watch.extensions[%d]: %q must start with a dot", i, ext))
		}
	}
	if cfg.Watch.Debounce < 0 {
		errs = append(errs, fmt.Sprintf("watch.debounce: %s must not be negative", cfg.Watch.Debounce))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}
