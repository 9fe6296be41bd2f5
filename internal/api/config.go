package api

import (
	"fmt"
	"net/url"
	"os"
	"time"
)

// Config holds backend API client configuration.
type Config struct {
	// BaseURL is the root of the homework backend, without a trailing slash.
	BaseURL string

	// Timeout is the maximum duration for a single request. Submissions
	// run vision + evaluation server-side, so this needs headroom.
	Timeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL: "http://127.0.0.1:8000",
		Timeout: 60 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if u := os.Getenv("MATHSNAP_API_BASE"); u != "" {
		cfg.BaseURL = u
	}
	if t := os.Getenv("MATHSNAP_API_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	return cfg
}

// Validate checks that the base URL is an absolute http(s) URL.
func (c Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid MATHSNAP_API_BASE: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid MATHSNAP_API_BASE %q: scheme must be http or https", c.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid MATHSNAP_API_BASE %q: missing host", c.BaseURL)
	}
	return nil
}
