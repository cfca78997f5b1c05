package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FeedFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quakeviz_feed_fetches_total",
		Help: "Total number of feed fetches, labelled by status (ok, error).",
	}, []string{"status"})

	FeedFetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "quakeviz_feed_fetch_duration_seconds",
		Help:    "Time spent fetching and decoding the feed.",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	})

	EventsNormalized = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quakeviz_events_normalized_total",
		Help: "Total number of feed records normalized into events.",
	})

	ChartsRendered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quakeviz_charts_rendered_total",
		Help: "Total number of render calls, labelled by mount and status.",
	}, []string{"mount", "status"})

	Passes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quakeviz_passes_total",
		Help: "Total number of render passes, labelled by outcome.",
	}, []string{"outcome"})

	LastPassEvents = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "quakeviz_last_pass_events",
		Help: "Number of events in the last successful render pass.",
	})

	LastSuccess = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "quakeviz_last_success_timestamp_seconds",
		Help: "Unix timestamp of the last successful render pass.",
	})
)
