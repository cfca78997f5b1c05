package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rickgao/quakeviz/internal/pipeline"
	"github.com/rickgao/quakeviz/internal/render"
	"github.com/rickgao/quakeviz/internal/version"
)

// Runner performs one render pass.
type Runner interface {
	Run(ctx context.Context, r render.Renderer) pipeline.Result
}

// Page holds the settings of the generated page.
type Page struct {
	Title     string
	PlotlyURL string
	FeedURL   string
}

// Source returns the runner and page settings to use for a request.
// It is called once per request so that reloaded config takes effect.
type Source interface {
	Current() (Runner, Page)
}

// Options configures the handler.
type Options struct {
	MetricsPath string // Empty disables the metrics endpoint
	PassTimeout time.Duration
}

type handler struct {
	source Source
	opts   Options
	logger *slog.Logger

	mu   sync.Mutex
	last *pipeline.Result
}

// NewHandler creates the HTTP handler.
func NewHandler(source Source, opts Options, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &handler{source: source, opts: opts, logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.page)
	mux.HandleFunc("GET /figures", h.figures)
	mux.HandleFunc("GET /health", h.health)
	if opts.MetricsPath != "" {
		mux.Handle("GET "+opts.MetricsPath, promhttp.Handler())
	}
	return mux
}

func (h *handler) run(r *http.Request, runner Runner, renderer render.Renderer) pipeline.Result {
	ctx := r.Context()
	if h.opts.PassTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.opts.PassTimeout)
		defer cancel()
	}

	res := runner.Run(ctx, renderer)

	h.mu.Lock()
	h.last = &res
	h.mu.Unlock()

	return res
}

func (h *handler) page(w http.ResponseWriter, r *http.Request) {
	runner, settings := h.source.Current()
	p := render.NewPage(settings.PlotlyURL)
	res := h.run(r, runner, p)
	if !res.OK() {
		h.fail(w, res)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	err := p.WriteHTML(w, render.Meta{
		Title:       settings.Title,
		RunID:       res.RunID.String(),
		Source:      settings.FeedURL,
		Events:      res.Events,
		GeneratedAt: res.StartedAt,
		Version:     version.Version,
	})
	if err != nil {
		h.logger.Error("write page failed", "run_id", res.RunID.String(), "error", err)
	}
}

type figureJSON struct {
	Data   any `json:"data"`
	Layout any `json:"layout"`
}

func (h *handler) figures(w http.ResponseWriter, r *http.Request) {
	runner, _ := h.source.Current()
	p := render.NewPage("")
	res := h.run(r, runner, p)
	if !res.OK() {
		h.fail(w, res)
		return
	}

	figs := make(map[string]figureJSON, len(res.Figures))
	for _, f := range p.Figures() {
		figs[f.Mount.ID] = figureJSON{Data: f.Data, Layout: f.Layout}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"run_id":  res.RunID.String(),
		"events":  res.Events,
		"figures": figs,
	})
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	health := struct {
		Status   string         `json:"status"`
		Version  string         `json:"version"`
		LastPass map[string]any `json:"last_pass,omitempty"`
	}{
		Status:  "healthy",
		Version: version.String(),
	}

	h.mu.Lock()
	last := h.last
	h.mu.Unlock()

	if last != nil {
		health.LastPass = map[string]any{
			"run_id":  last.RunID.String(),
			"outcome": last.Outcome.String(),
			"events":  last.Events,
			"at":      last.StartedAt.UTC().Format(time.RFC3339),
		}
		if !last.OK() {
			health.Status = "degraded"
		}
	}

	writeJSON(w, http.StatusOK, health)
}

// fail reports a pass that did not render.
func (h *handler) fail(w http.ResponseWriter, res pipeline.Result) {
	status := http.StatusInternalServerError
	if res.Outcome == pipeline.OutcomeFetchFailed || res.Outcome == pipeline.OutcomeTransformFailed {
		status = http.StatusBadGateway
	}
	writeJSON(w, status, map[string]string{
		"run_id":  res.RunID.String(),
		"outcome": res.Outcome.String(),
		"error":   fmt.Sprint(res.Err),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
