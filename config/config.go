// SPDX-License-Identifier: MIT

// Package config loads famplex2bel settings from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/famplex/source"
)

// ErrInvalidConfig indicates a config file that parses but holds unusable values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Default values for unset fields.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
	DefaultTimeout   = 60 * time.Second
)

// Config is the famplex2bel configuration file.
type Config struct {
	// Table locations; http(s) URLs or file paths.
	RelationsURL    string `yaml:"relations_url,omitempty"`
	EquivalencesURL string `yaml:"equivalences_url,omitempty"`

	// Output is the BEL destination path; empty or "-" means standard output.
	Output string `yaml:"output,omitempty"`

	LogLevel  string `yaml:"log_level,omitempty"`  // debug, info, warn, error
	LogFormat string `yaml:"log_format,omitempty"` // console or json

	// Timeout bounds each HTTP fetch. Format: Go duration string (e.g. "30s").
	// Default: 60s
	Timeout string `yaml:"timeout,omitempty"`

	Strict    bool `yaml:"strict,omitempty"`
	Normalize bool `yaml:"normalize,omitempty"`
	Enrich    bool `yaml:"enrich,omitempty"`
	Check     bool `yaml:"check,omitempty"`
	Trace     bool `yaml:"trace,omitempty"`
}

// Load reads and validates the YAML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML bytes. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks field values that cannot be repaired by defaults.
func (c *Config) Validate() error {
	if c.Timeout != "" {
		d, err := time.ParseDuration(c.Timeout)
		if err != nil {
			return fmt.Errorf("%w: timeout %q: %v", ErrInvalidConfig, c.Timeout, err)
		}
		if d < 0 {
			return fmt.Errorf("%w: timeout %q is negative", ErrInvalidConfig, c.Timeout)
		}
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	switch c.LogFormat {
	case "", "console", "json":
	default:
		return fmt.Errorf("%w: log_format %q", ErrInvalidConfig, c.LogFormat)
	}

	return nil
}

// GetRelationsURL returns the relations table location or the FamPlex default.
func (c *Config) GetRelationsURL() string {
	if c == nil || c.RelationsURL == "" {
		return source.RelationsURL
	}
	return c.RelationsURL
}

// GetEquivalencesURL returns the equivalences table location or the FamPlex default.
func (c *Config) GetEquivalencesURL() string {
	if c == nil || c.EquivalencesURL == "" {
		return source.EquivalencesURL
	}
	return c.EquivalencesURL
}

// GetLogLevel returns the log level or DefaultLogLevel.
func (c *Config) GetLogLevel() string {
	if c == nil || c.LogLevel == "" {
		return DefaultLogLevel
	}
	return c.LogLevel
}

// GetLogFormat returns the log format or DefaultLogFormat.
func (c *Config) GetLogFormat() string {
	if c == nil || c.LogFormat == "" {
		return DefaultLogFormat
	}
	return c.LogFormat
}

// GetTimeout parses the timeout string and returns a duration.
// Returns DefaultTimeout if not set or invalid.
func (c *Config) GetTimeout() time.Duration {
	if c == nil || c.Timeout == "" {
		return DefaultTimeout
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return DefaultTimeout
	}
	return d
}

// WritesStdout reports whether output goes to standard output.
func (c *Config) WritesStdout() bool {
	return c == nil || c.Output == "" || c.Output == "-"
}
