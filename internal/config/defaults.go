package config

import (
	"time"

	"github.com/rickgao/quakeviz/internal/feed"
	"github.com/rickgao/quakeviz/internal/render"
)

// Default values for optional configuration fields.
const (
	DefaultFeedURL      = feed.DefaultURL
	DefaultFeedTimeout  = 30 * time.Second
	DefaultLocation     = "Local"
	DefaultPlotlyURL    = render.DefaultPlotlyURL
	DefaultPageTitle    = "Séismes de la semaine passée"
	DefaultHTMLPath     = "earthquakes.html"
	DefaultServerPort   = 8080
	DefaultReadTimeout  = 10 * time.Second
	DefaultWriteTimeout = 60 * time.Second
	DefaultMetricsPath  = "/metrics"
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "auto"
)

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	// Feed defaults
	if c.Feed.URL == "" {
		c.Feed.URL = DefaultFeedURL
	}
	if c.Feed.Timeout == 0 {
		c.Feed.Timeout = DefaultFeedTimeout
	}

	// Charts defaults
	if c.Charts.Location == "" {
		c.Charts.Location = DefaultLocation
	}
	if c.Charts.PlotlyURL == "" {
		c.Charts.PlotlyURL = DefaultPlotlyURL
	}
	if c.Charts.PageTitle == "" {
		c.Charts.PageTitle = DefaultPageTitle
	}

	// Output defaults
	if c.Output.HTMLPath == "" {
		c.Output.HTMLPath = DefaultHTMLPath
	}

	// Server defaults
	if c.Server.Port == 0 {
		c.Server.Port = DefaultServerPort
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = DefaultReadTimeout
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = DefaultWriteTimeout
	}

	// Metrics defaults
	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}

	// Log defaults
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
}
