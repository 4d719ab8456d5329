// Package config loads axname settings with Viper from .axname.yml, the
// AXNAME_ environment variables and command-line flags bound by cmd.
//
// Every section has defaults, so running without a config file is normal.
// Load validates the merged result and returns a config error when a value
// cannot be used.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	axerrors "github.com/conneroisu/axname/internal/errors"
)

// Supported output formats and log levels.
var (
	OutputFormats = []string{"table", "json", "yaml"}
	LogLevels     = []string{"debug", "info", "warn", "error"}
	LogFormats    = []string{"text", "json"}
)

type Config struct {
	Inspect InspectConfig `mapstructure:"inspect" yaml:"inspect"`
	Query   QueryConfig   `mapstructure:"query"   yaml:"query"`
	Audit   AuditConfig   `mapstructure:"audit"   yaml:"audit"`
	Watch   WatchConfig   `mapstructure:"watch"   yaml:"watch"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

type InspectConfig struct {
	IncludeHidden bool     `mapstructure:"include_hidden" yaml:"include_hidden"`
	Roles         []string `mapstructure:"roles"          yaml:"roles"`
	Format        string   `mapstructure:"format"         yaml:"format"`
}

type QueryConfig struct {
	Exact bool `mapstructure:"exact" yaml:"exact"`
}

type AuditConfig struct {
	Rules         []string `mapstructure:"rules"          yaml:"rules"`
	ExcludeRules  []string `mapstructure:"exclude_rules"  yaml:"exclude_rules"`
	MaxViolations int      `mapstructure:"max_violations" yaml:"max_violations"`
	WCAGLevel     string   `mapstructure:"wcag_level"     yaml:"wcag_level"`
	Severity      string   `mapstructure:"severity"       yaml:"severity"`
}

type WatchConfig struct {
	Paths      []string      `mapstructure:"paths"      yaml:"paths"`
	Extensions []string      `mapstructure:"extensions" yaml:"extensions"`
	Ignore     []string      `mapstructure:"ignore"     yaml:"ignore"`
	Debounce   time.Duration `mapstructure:"debounce"   yaml:"debounce"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"   yaml:"level"`
	Format string `mapstructure:"format"  yaml:"format"`
	Dir    string `mapstructure:"dir"     yaml:"dir"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Inspect: InspectConfig{Format: "table"},
		Audit: AuditConfig{
			WCAGLevel: "AA",
			Severity:  "info",
		},
		Watch: WatchConfig{
			Paths:      []string{"."},
			Extensions: []string{".html", ".htm"},
			Ignore:     []string{"node_modules", ".git"},
			Debounce:   300 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// SetDefaults registers the defaults on v so that IsSet, env overrides and
// Unmarshal all see the same keys.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("inspect.include_hidden", d.Inspect.IncludeHidden)
	v.SetDefault("inspect.roles", d.Inspect.Roles)
	v.SetDefault("inspect.format", d.Inspect.Format)
	v.SetDefault("query.exact", d.Query.Exact)
	v.SetDefault("audit.rules", d.Audit.Rules)
	v.SetDefault("audit.exclude_rules", d.Audit.ExcludeRules)
	v.SetDefault("audit.max_violations", d.Audit.MaxViolations)
	v.SetDefault("audit.wcag_level", d.Audit.WCAGLevel)
	v.SetDefault("audit.severity", d.Audit.Severity)
	v.SetDefault("watch.paths", d.Watch.Paths)
	v.SetDefault("watch.extensions", d.Watch.Extensions)
	v.SetDefault("watch.ignore", d.Watch.Ignore)
	v.SetDefault("watch.debounce", d.Watch.Debounce)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.dir", d.Logging.Dir)
}

// BindEnv maps AXNAME_<SECTION>_<KEY> variables onto the config keys.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix("AXNAME")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads the global viper instance.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom unmarshals v over the defaults and validates the result.
func LoadFrom(v *viper.Viper) (*Config, error) {
	config := Default()
	if err := v.Unmarshal(config); err != nil {
		return nil, axerrors.WrapConfig(err, axerrors.ErrCodeConfigInvalid, "cannot decode configuration")
	}

	// Comma separated env values arrive as a single element.
	config.Inspect.Roles = splitList(config.Inspect.Roles)
	config.Audit.Rules = splitList(config.Audit.Rules)
	config.Audit.ExcludeRules = splitList(config.Audit.ExcludeRules)
	config.Watch.Paths = splitList(config.Watch.Paths)
	config.Watch.Extensions = splitList(config.Watch.Extensions)
	config.Watch.Ignore = splitList(config.Watch.Ignore)

	if err := validateConfig(config); err != nil {
		return nil, axerrors.WrapConfig(err, axerrors.ErrCodeConfigInvalid, "invalid configuration")
	}

	return config, nil
}

func splitList(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// validateConfig returns the first hard error. ValidateConfigWithDetails
// reports everything at once.
func validateConfig(config *Config) error {
	result := ValidateConfigWithDetails(config)
	if result.HasErrors() {
		first := result.Errors[0]
		return &first
	}
	return nil
}

// validatePath rejects empty paths and parent directory traversal.
func validatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("empty path")
	}

	cleanPath := filepath.Clean(path)
	for _, part := range strings.Split(filepath.ToSlash(cleanPath), "/") {
		if part == ".." {
			return fmt.Errorf("path contains traversal: %s", path)
		}
	}

	if strings.ContainsRune(path, 0) {
		return fmt.Errorf("path contains NUL byte")
	}

	return nil
}

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return true
		}
	}
	return false
}
