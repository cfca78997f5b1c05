package render

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rickgao/quakeviz/internal/chart"
	"github.com/rickgao/quakeviz/internal/model"
)

func figures() []chart.Figure {
	events := []model.Event{
		{Latitude: 20, Longitude: 10, Depth: 5, Magnitude: 4.5, Time: time.UnixMilli(1700000000000)},
	}
	return chart.NewBuilder(chart.WithLocation(time.UTC)).BuildAll(chart.DefaultMounts(), events)
}

func TestPage_WriteHTML(t *testing.T) {
	page := NewPage("")
	ctx := context.Background()

	for _, fig := range figures() {
		if err := page.Render(ctx, fig); err != nil {
			t.Fatalf("Render(%s) error: %v", fig.Mount, err)
		}
	}

	var buf bytes.Buffer
	meta := Meta{
		Title:       "Earthquakes",
		RunID:       "run-123",
		Events:      1,
		GeneratedAt: time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC),
		Version:     "dev",
	}
	if err := page.WriteHTML(&buf, meta); err != nil {
		t.Fatalf("WriteHTML error: %v", err)
	}
	html := buf.String()

	for _, want := range []string{
		DefaultPlotlyURL,
		`<div id="map" class="chart"></div>`,
		`<div id="histogram" class="chart"></div>`,
		`<div id="time-series" class="chart"></div>`,
		`<div id="scatter-plot" class="chart"></div>`,
		`Plotly.newPlot("map", `,
		`Plotly.newPlot("scatter-plot", `,
		`"scattergeo"`,
		`content="run-123"`,
		"2026-10-18T12:00:00Z",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q", want)
		}
	}

	if got := strings.Count(html, "Plotly.newPlot("); got != 4 {
		t.Errorf("newPlot calls = %d, want 4", got)
	}
}

func TestPage_RenderReplacesMount(t *testing.T) {
	page := NewPage("https://cdn.example.com/plotly.js")
	ctx := context.Background()
	m := chart.Mount{ID: "map"}

	page.Render(ctx, chart.Figure{Mount: m, Layout: chart.Layout{Title: "first"}})
	page.Render(ctx, chart.Figure{Mount: chart.Mount{ID: "other"}})
	page.Render(ctx, chart.Figure{Mount: m, Layout: chart.Layout{Title: "second"}})

	figs := page.Figures()
	if len(figs) != 2 {
		t.Fatalf("len(Figures()) = %d, want 2", len(figs))
	}
	if figs[0].Mount != m || figs[0].Layout.Title != "second" {
		t.Errorf("Figures()[0] = %+v, want replaced map figure", figs[0])
	}
}

func TestPage_RenderErrors(t *testing.T) {
	page := NewPage("")

	if err := page.Render(context.Background(), chart.Figure{}); !errors.Is(err, ErrNoMount) {
		t.Errorf("Render(no mount) error = %v, want ErrNoMount", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := page.Render(ctx, chart.Figure{Mount: chart.Mount{ID: "map"}}); !errors.Is(err, context.Canceled) {
		t.Errorf("Render(cancelled) error = %v, want context.Canceled", err)
	}
}

func TestPage_EmptyPage(t *testing.T) {
	var buf bytes.Buffer
	if err := NewPage("").WriteHTML(&buf, Meta{Title: "Empty"}); err != nil {
		t.Fatalf("WriteHTML error: %v", err)
	}
	if strings.Contains(buf.String(), "Plotly.newPlot(") {
		t.Error("empty page should not call newPlot")
	}
}

func TestJSONDir_Render(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "figures")
	r := NewJSONDir(dir)
	ctx := context.Background()

	for _, fig := range figures() {
		if err := r.Render(ctx, fig); err != nil {
			t.Fatalf("Render(%s) error: %v", fig.Mount, err)
		}
	}

	for _, m := range chart.DefaultMounts().All() {
		body, err := os.ReadFile(r.Path(m))
		if err != nil {
			t.Fatalf("read %s: %v", m, err)
		}
		var doc struct {
			Data   []map[string]any `json:"data"`
			Layout map[string]any   `json:"layout"`
		}
		if err := json.Unmarshal(body, &doc); err != nil {
			t.Fatalf("decode %s: %v", m, err)
		}
		if len(doc.Data) != 1 {
			t.Errorf("%s: len(data) = %d, want 1", m, len(doc.Data))
		}
		if doc.Layout["title"] == "" {
			t.Errorf("%s: missing layout title", m)
		}
	}
}

func TestJSONDir_RenderRejectsBadMount(t *testing.T) {
	r := NewJSONDir(t.TempDir())
	ctx := context.Background()

	tests := []struct {
		name string
		id   string
	}{
		{"empty", ""},
		{"slash", "../escape"},
		{"dot dot", ".."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := r.Render(ctx, chart.Figure{Mount: chart.Mount{ID: tt.id}}); err == nil {
				t.Errorf("Render(%q) expected error", tt.id)
			}
		})
	}
}

func TestMulti(t *testing.T) {
	var calls []string
	ok := RendererFunc(func(ctx context.Context, fig chart.Figure) error {
		calls = append(calls, "ok:"+fig.Mount.ID)
		return nil
	})
	failing := RendererFunc(func(ctx context.Context, fig chart.Figure) error {
		calls = append(calls, "fail:"+fig.Mount.ID)
		return errors.New("boom")
	})

	err := Multi(failing, ok).Render(context.Background(), chart.Figure{Mount: chart.Mount{ID: "map"}})
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Errorf("Multi error = %v, want boom", err)
	}
	if len(calls) != 2 || calls[1] != "ok:map" {
		t.Errorf("calls = %v, want both renderers called", calls)
	}
}
