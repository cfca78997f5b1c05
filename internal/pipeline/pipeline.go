package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/rickgao/quakeviz/internal/chart"
	"github.com/rickgao/quakeviz/internal/feed"
	"github.com/rickgao/quakeviz/internal/metrics"
	"github.com/rickgao/quakeviz/internal/render"
)

// Fetcher provides the raw feed document.
type Fetcher interface {
	Fetch(ctx context.Context) (*feed.FeatureCollection, error)
}

// FetcherFunc is a function adapter for Fetcher.
type FetcherFunc func(ctx context.Context) (*feed.FeatureCollection, error)

func (f FetcherFunc) Fetch(ctx context.Context) (*feed.FeatureCollection, error) {
	return f(ctx)
}

// Pipeline runs render passes.
type Pipeline struct {
	fetcher Fetcher
	builder *chart.Builder
	mounts  chart.Mounts
	clock   clockwork.Clock
	logger  *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithBuilder sets the chart builder.
func WithBuilder(b *chart.Builder) Option {
	return func(p *Pipeline) {
		p.builder = b
	}
}

// WithMounts sets the mount of each figure.
func WithMounts(m chart.Mounts) Option {
	return func(p *Pipeline) {
		p.mounts = m
	}
}

// WithClock sets the clock used for timestamps and durations.
func WithClock(c clockwork.Clock) Option {
	return func(p *Pipeline) {
		p.clock = c
	}
}

// New creates a new Pipeline.
func New(fetcher Fetcher, logger *slog.Logger, opts ...Option) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Pipeline{
		fetcher: fetcher,
		builder: chart.NewBuilder(),
		mounts:  chart.DefaultMounts(),
		clock:   clockwork.NewRealClock(),
		logger:  logger,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run performs one pass and renders the figures with r.
//
// A fetch or transform failure renders nothing. A failing render call does
// not stop the remaining figures.
func (p *Pipeline) Run(ctx context.Context, r render.Renderer) (res Result) {
	res = Result{
		RunID:     uuid.New(),
		StartedAt: p.clock.Now(),
	}
	logger := p.logger.With("run_id", res.RunID.String())

	defer func() {
		res.Duration = p.clock.Since(res.StartedAt)
		metrics.Passes.WithLabelValues(res.Outcome.String()).Inc()
	}()

	doc, err := p.fetcher.Fetch(ctx)
	metrics.FeedFetchDuration.Observe(p.clock.Since(res.StartedAt).Seconds())
	if err != nil {
		metrics.FeedFetches.WithLabelValues("error").Inc()
		logger.Error("fetch failed", "error", err)
		res.Outcome = OutcomeFetchFailed
		res.Err = err
		return res
	}
	metrics.FeedFetches.WithLabelValues("ok").Inc()

	events, err := feed.Normalize(doc.Features)
	if err != nil {
		logger.Error("transform failed", "features", len(doc.Features), "error", err)
		res.Outcome = OutcomeTransformFailed
		res.Err = fmt.Errorf("normalize: %w", err)
		return res
	}
	metrics.EventsNormalized.Add(float64(len(events)))
	res.Events = len(events)
	res.Normalized = events

	var errs []error
	for _, fig := range p.builder.BuildAll(p.mounts, events) {
		if err := r.Render(ctx, fig); err != nil {
			metrics.ChartsRendered.WithLabelValues(fig.Mount.ID, "error").Inc()
			logger.Warn("render failed", "mount", fig.Mount.ID, "error", err)
			errs = append(errs, fmt.Errorf("render %s: %w", fig.Mount.ID, err))
			continue
		}
		metrics.ChartsRendered.WithLabelValues(fig.Mount.ID, "ok").Inc()
		res.Rendered = append(res.Rendered, fig.Mount)
		res.Figures = append(res.Figures, fig)
	}

	if len(errs) > 0 {
		res.Outcome = OutcomeRenderFailed
		res.Err = errors.Join(errs...)
		return res
	}

	res.Outcome = OutcomeRendered
	metrics.LastPassEvents.Set(float64(len(events)))
	metrics.LastSuccess.Set(float64(p.clock.Now().Unix()))

	logger.Info("render pass complete",
		"events", len(events),
		"charts", len(res.Rendered),
		"duration", p.clock.Since(res.StartedAt),
	)
	return res
}
