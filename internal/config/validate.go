package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if c.Feed.URL == "" {
		return errors.New("feed.url is required")
	}
	u, err := url.Parse(c.Feed.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("feed.url must be an absolute http(s) url, got %q", c.Feed.URL)
	}
	if c.Feed.Timeout < 0 {
		return errors.New("feed.timeout must be >= 0")
	}

	if _, err := c.Location(); err != nil {
		return fmt.Errorf("charts.location: %w", err)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}

	if !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with /, got %q", c.Metrics.Path)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "auto", "dev", "text", "json":
	default:
		return fmt.Errorf("log.format must be one of auto, dev, text, json, got %q", c.Log.Format)
	}

	return nil
}

// Location resolves charts.location. "Local" (or empty) is the process time zone.
func (c *Config) Location() (*time.Location, error) {
	switch c.Charts.Location {
	case "", "Local", "local":
		return time.Local, nil
	}
	return time.LoadLocation(c.Charts.Location)
}
