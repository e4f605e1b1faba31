// Package config loads evalbridge settings from YAML, .env files, and the
// process environment. It is the only package that reads environment
// variables; everything downstream receives plain values.
package config

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/germanamz/evalbridge/pkg/providers/openrouter"
	"gopkg.in/yaml.v3"
)

// Config is the top-level evalbridge configuration.
type Config struct {
	Model    string            `yaml:"model"`
	BaseURL  string            `yaml:"base_url"`
	APIKey   string            `yaml:"api_key"` //nolint:gosec // configuration field, not a hardcoded secret
	Headers  map[string]string `yaml:"headers"`
	Timeout  string            `yaml:"timeout"`   // Duration string (e.g. "2m"). Empty keeps the client default.
	LogLevel string            `yaml:"log_level"` // debug, info, warn or error.
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Model:    openrouter.DefaultModel,
		BaseURL:  openrouter.DefaultBaseURL,
		LogLevel: "info",
	}
}

// Load reads a YAML file on top of Default and returns the result.
// Environment variables referenced as ${VAR} or $VAR in the YAML are expanded
// before parsing, so the key can stay in the environment
// (api_key: ${OPENROUTER_API_KEY}).
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if err != nil {
		return Config{}, fmt.Errorf("config: load: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is internally consistent.
// A missing API key is not an error: it surfaces at the first request.
func (c Config) Validate() error {
	if c.Timeout != "" {
		d, err := time.ParseDuration(c.Timeout)
		if err != nil {
			return fmt.Errorf("config: timeout %q: %w", c.Timeout, err)
		}
		if d < 0 {
			return fmt.Errorf("config: timeout %q: must not be negative", c.Timeout)
		}
	}

	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}

	for k := range c.Headers {
		if strings.TrimSpace(k) == "" {
			return fmt.Errorf("config: header name is required")
		}
	}

	return nil
}

// Level returns the slog level named by LogLevel, defaulting to info.
func (c Config) Level() slog.Level {
	l, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

// Options converts the configuration into adapter options.
func (c Config) Options() ([]openrouter.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	opts := []openrouter.Option{
		openrouter.WithModel(c.Model),
		openrouter.WithBaseURL(c.BaseURL),
	}

	if len(c.Headers) > 0 {
		opts = append(opts, openrouter.WithHeaders(c.Headers))
	}

	if c.Timeout != "" {
		d, _ := time.ParseDuration(c.Timeout)
		opts = append(opts, openrouter.WithHTTPClient(&http.Client{Timeout: d}))
	}

	return opts, nil
}

// NewAdapter builds an OpenRouter adapter from the configuration.
func (c Config) NewAdapter() (*openrouter.Adapter, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}

	return openrouter.New(c.APIKey, opts...), nil
}

func parseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}

	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("config: log_level %q: %w", s, err)
	}

	return l, nil
}
