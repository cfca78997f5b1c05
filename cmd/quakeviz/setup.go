package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/rickgao/quakeviz/internal/chart"
	"github.com/rickgao/quakeviz/internal/config"
	"github.com/rickgao/quakeviz/internal/feed"
	"github.com/rickgao/quakeviz/internal/logging"
	"github.com/rickgao/quakeviz/internal/pipeline"
	"github.com/rickgao/quakeviz/internal/version"
)

// setup loads the config and builds the logger shared by all commands.
func setup(cmd *cli.Command) (*config.Config, *slog.Logger, error) {
	path := cmd.String("config")

	cfg, err := config.LoadAndValidate(path)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	levelName := cfg.Log.Level
	if cmd.IsSet("log-level") {
		levelName = cmd.String("log-level")
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return nil, nil, err
	}

	format := cfg.Log.Format
	if cmd.Bool("json") {
		format = logging.FormatJSON
	}

	logger := logging.New(os.Stderr, format, level)
	slog.SetDefault(logger)

	logger.Debug("configuration loaded",
		"config", path,
		"feed_url", cfg.Feed.URL,
		"location", cfg.Charts.Location,
	)
	return cfg, logger, nil
}

// labelsFromConfig applies title overrides to the default labels.
func labelsFromConfig(cfg *config.Config) chart.Labels {
	l := chart.DefaultLabels()
	t := cfg.Charts.Titles
	if t.Map != "" {
		l.MapTitle = t.Map
	}
	if t.Histogram != "" {
		l.HistogramTitle = t.Histogram
	}
	if t.TimeSeries != "" {
		l.TimeSeriesTitle = t.TimeSeries
	}
	if t.Scatter != "" {
		l.ScatterTitle = t.Scatter
	}
	return l
}

// newFeedClient creates the feed client described by cfg.
func newFeedClient(cfg *config.Config, logger *slog.Logger) *feed.Client {
	ua := cfg.Feed.UserAgent
	if ua == "" {
		ua = version.UserAgent()
	}
	return feed.NewClient(cfg.Feed.URL,
		feed.WithTimeout(cfg.Feed.Timeout),
		feed.WithUserAgent(ua),
		feed.WithLogger(logger),
	)
}

// newPipeline wires a pipeline from cfg.
func newPipeline(cfg *config.Config, logger *slog.Logger) (*pipeline.Pipeline, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("charts.location: %w", err)
	}
	builder := chart.NewBuilder(
		chart.WithLabels(labelsFromConfig(cfg)),
		chart.WithLocation(loc),
	)
	return pipeline.New(newFeedClient(cfg, logger), logger,
		pipeline.WithBuilder(builder),
	), nil
}
