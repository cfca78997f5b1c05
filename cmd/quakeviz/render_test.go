package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/urfave/cli/v3"

	"github.com/rickgao/quakeviz/internal/config"
	"github.com/rickgao/quakeviz/internal/metrics"
)

const testFeed = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "id": "a",
     "properties": {"mag": 2.5, "place": "Somewhere", "time": 1700000000000},
     "geometry": {"type": "Point", "coordinates": [-120.5, 36.2, 8.1]}},
    {"type": "Feature", "id": "b",
     "properties": {"mag": 4.1, "place": "Elsewhere", "time": 1700086400000},
     "geometry": {"type": "Point", "coordinates": [142.3, 38.1, 35.0]}}
  ]
}`

func newApp() *cli.Command {
	return &cli.Command{
		Name:   "quakeviz",
		Flags:  globalFlags,
		Action: runRender,
		Commands: []*cli.Command{
			renderCommand(),
			summaryCommand(),
			versionCommand(),
		},
	}
}

func writeConfig(t *testing.T, feedURL, extra string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quakeviz.yaml")
	content := "feed:\n  url: " + feedURL + "\ncharts:\n  location: UTC\nlog:\n  level: error\n  format: text\n" + extra
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestRenderCommand(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if ua := r.Header.Get("User-Agent"); !strings.HasPrefix(ua, "quakeviz/") {
			t.Errorf("User-Agent = %q, want quakeviz/ prefix", ua)
		}
		w.Header().Set("Content-Type", "application/geo+json")
		w.Write([]byte(testFeed))
	}))
	defer srv.Close()

	dir := t.TempDir()
	out := filepath.Join(dir, "site", "index.html")
	jsonDir := filepath.Join(dir, "figures")
	cfgPath := writeConfig(t, srv.URL, "")

	err := newApp().Run(context.Background(), []string{
		"quakeviz", "--config", cfgPath, "render", "--out", out, "--json-dir", jsonDir,
	})
	if err != nil {
		t.Fatalf("render error = %v", err)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("feed requests = %d, want 1", got)
	}

	page, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read page: %v", err)
	}
	for _, id := range []string{"map", "histogram", "time-series", "scatter-plot"} {
		if !strings.Contains(string(page), `id="`+id+`"`) {
			t.Errorf("page missing mount %q", id)
		}

		data, err := os.ReadFile(filepath.Join(jsonDir, id+".json"))
		if err != nil {
			t.Errorf("read %s figure: %v", id, err)
			continue
		}
		var fig map[string]any
		if err := json.Unmarshal(data, &fig); err != nil {
			t.Errorf("%s figure is not JSON: %v", id, err)
		}
	}

	leftovers, _ := filepath.Glob(filepath.Join(dir, "site", ".quakeviz-*"))
	if len(leftovers) != 0 {
		t.Errorf("temporary files left behind: %v", leftovers)
	}
}

func TestRenderCommand_DefaultAction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testFeed))
	}))
	defer srv.Close()

	out := filepath.Join(t.TempDir(), "page.html")
	cfgPath := writeConfig(t, srv.URL, "output:\n  html_path: "+out+"\n")

	if err := newApp().Run(context.Background(), []string{"quakeviz", "--config", cfgPath}); err != nil {
		t.Fatalf("run error = %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("page not written: %v", err)
	}
}

func TestRenderCommand_FetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	out := filepath.Join(t.TempDir(), "page.html")
	cfgPath := writeConfig(t, srv.URL, "")

	err := newApp().Run(context.Background(), []string{"quakeviz", "--config", cfgPath, "render", "--out", out})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "fetch_failed") {
		t.Errorf("error = %v, want fetch_failed", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Error("page written despite fetch failure")
	}
}

func TestRenderCommand_BadConfig(t *testing.T) {
	cfgPath := writeConfig(t, "not a url", "")

	err := newApp().Run(context.Background(), []string{"quakeviz", "--config", cfgPath, "render"})
	if err == nil || !strings.Contains(err.Error(), "feed.url") {
		t.Errorf("error = %v, want feed.url validation error", err)
	}
}

func TestLabelsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Charts.Titles.Histogram = "Magnitudes"

	l := labelsFromConfig(cfg)
	if l.HistogramTitle != "Magnitudes" {
		t.Errorf("HistogramTitle = %q, want Magnitudes", l.HistogramTitle)
	}
	if l.MapTitle != "Carte du monde des séismes" {
		t.Errorf("MapTitle = %q, want default", l.MapTitle)
	}
}

func TestReloadingSource(t *testing.T) {
	cfg := config.Default()
	src, err := newReloadingSource(cfg, nil)
	if err != nil {
		t.Fatalf("newReloadingSource() error = %v", err)
	}
	first, page := src.Current()
	if page.Title != cfg.Charts.PageTitle {
		t.Errorf("Title = %q, want %q", page.Title, cfg.Charts.PageTitle)
	}

	next := config.Default()
	next.Charts.PageTitle = "Updated"
	if err := src.update(next); err != nil {
		t.Fatalf("update() error = %v", err)
	}
	second, page := src.Current()
	if page.Title != "Updated" {
		t.Errorf("Title = %q, want Updated", page.Title)
	}
	if first == second {
		t.Error("runner not replaced on update")
	}

	bad := config.Default()
	bad.Charts.Location = "Nowhere/Invalid"
	if err := src.update(bad); err == nil {
		t.Error("update() with bad location succeeded")
	}
	if _, page := src.Current(); page.Title != "Updated" {
		t.Errorf("Title = %q after failed update, want Updated", page.Title)
	}
}

func TestSummaryCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testFeed))
	}))
	defer srv.Close()

	cfgPath := writeConfig(t, srv.URL, "")
	before := testutil.ToFloat64(metrics.Passes.WithLabelValues("rendered"))

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	if err := app.Run(context.Background(), []string{"quakeviz", "--config", cfgPath, "summary"}); err != nil {
		t.Fatalf("summary error = %v", err)
	}

	for _, want := range []string{"2023-11-14", "2023-11-15", "2 events, max magnitude 4.1"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("summary missing %q\n%s", want, out.String())
		}
	}
	if got := testutil.ToFloat64(metrics.Passes.WithLabelValues("rendered")) - before; got != 1 {
		t.Errorf("rendered passes delta = %v, want 1", got)
	}
}

func TestSummaryCommand_FetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	cfgPath := writeConfig(t, srv.URL, "")
	before := testutil.ToFloat64(metrics.Passes.WithLabelValues("fetch_failed"))

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	err := app.Run(context.Background(), []string{"quakeviz", "--config", cfgPath, "summary"})
	if err == nil || !strings.Contains(err.Error(), "fetch_failed") {
		t.Errorf("error = %v, want fetch_failed", err)
	}
	if out.Len() != 0 {
		t.Errorf("summary printed %q despite fetch failure", out.String())
	}
	if got := testutil.ToFloat64(metrics.Passes.WithLabelValues("fetch_failed")) - before; got != 1 {
		t.Errorf("fetch_failed passes delta = %v, want 1", got)
	}
}
