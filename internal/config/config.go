package config

import "time"

// Config is the root configuration.
type Config struct {
	Feed    FeedConfig    `yaml:"feed"`
	Charts  ChartsConfig  `yaml:"charts"`
	Output  OutputConfig  `yaml:"output"`
	Server  ServerConfig  `yaml:"server"`
	Metrics MetricsConfig `yaml:"metrics"`
	Log     LogConfig     `yaml:"log"`
}

// FeedConfig holds the earthquake feed endpoint settings.
type FeedConfig struct {
	URL       string        `yaml:"url"`
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"` // Empty means quakeviz/<version>
}

// ChartsConfig holds figure and page settings.
type ChartsConfig struct {
	Location  string       `yaml:"location"` // IANA zone used to group events by day, or "Local"
	PlotlyURL string       `yaml:"plotly_url"`
	PageTitle string       `yaml:"page_title"`
	Titles    TitlesConfig `yaml:"titles"`
}

// TitlesConfig overrides figure titles. Empty fields keep the defaults.
type TitlesConfig struct {
	Map        string `yaml:"map"`
	Histogram  string `yaml:"histogram"`
	TimeSeries string `yaml:"time_series"`
	Scatter    string `yaml:"scatter"`
}

// OutputConfig holds where the render command writes.
type OutputConfig struct {
	HTMLPath string `yaml:"html_path"`
	JSONDir  string `yaml:"json_dir"` // Empty disables JSON output
}

// ServerConfig holds serve mode HTTP settings.
type ServerConfig struct {
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// MetricsConfig holds Prometheus metrics settings.
type MetricsConfig struct {
	Path string `yaml:"path"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // auto, dev, text, json
}
