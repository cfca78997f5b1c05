package render

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/rickgao/quakeviz/internal/chart"
)

// DefaultPlotlyURL is the plotly.js bundle loaded by generated pages.
const DefaultPlotlyURL = "https://cdn.plot.ly/plotly-2.35.2.min.js"

// Meta describes the render pass that produced a page.
type Meta struct {
	Title       string
	RunID       string
	Source      string
	Events      int
	GeneratedAt time.Time
	Version     string
}

// Page collects figures and writes them as one HTML document.
// Rendering a mount twice replaces the earlier figure.
type Page struct {
	plotlyURL string
	order     []chart.Mount
	figures   map[chart.Mount]chart.Figure
}

// NewPage creates an empty page. An empty plotlyURL selects DefaultPlotlyURL.
func NewPage(plotlyURL string) *Page {
	if plotlyURL == "" {
		plotlyURL = DefaultPlotlyURL
	}
	return &Page{
		plotlyURL: plotlyURL,
		figures:   make(map[chart.Mount]chart.Figure),
	}
}

// Render adds fig to the page.
func (p *Page) Render(ctx context.Context, fig chart.Figure) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if fig.Mount.ID == "" {
		return fmt.Errorf("render page: %w", ErrNoMount)
	}
	if _, ok := p.figures[fig.Mount]; !ok {
		p.order = append(p.order, fig.Mount)
	}
	p.figures[fig.Mount] = fig
	return nil
}

// Figures returns the collected figures in the order they were first rendered.
func (p *Page) Figures() []chart.Figure {
	out := make([]chart.Figure, 0, len(p.order))
	for _, m := range p.order {
		out = append(out, p.figures[m])
	}
	return out
}

// WriteHTML writes the page to w.
func (p *Page) WriteHTML(w io.Writer, meta Meta) error {
	data := struct {
		Meta
		PlotlyURL string
		Generated string
		Figures   []chart.Figure
	}{
		Meta:      meta,
		PlotlyURL: p.plotlyURL,
		Figures:   p.Figures(),
	}
	if !meta.GeneratedAt.IsZero() {
		data.Generated = meta.GeneratedAt.Format(time.RFC3339)
	}

	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("execute page template: %w", err)
	}
	return nil
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta name="generator" content="quakeviz {{.Version}}">
{{- if .RunID}}
<meta name="quakeviz-run" content="{{.RunID}}">
{{- end}}
<title>{{.Title}}</title>
<script src="{{.PlotlyURL}}" charset="utf-8"></script>
<style>
body { font-family: sans-serif; margin: 0 auto; max-width: 1200px; padding: 1rem; }
.meta { color: #666; font-size: 0.9rem; }
.chart { width: 100%; height: 480px; margin-bottom: 2rem; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p class="meta">{{.Events}} events{{if .Generated}} &middot; generated {{.Generated}}{{end}}{{if .Source}} &middot; <a href="{{.Source}}">source</a>{{end}}</p>
{{range .Figures}}<div id="{{.Mount.ID}}" class="chart"></div>
{{end -}}
<script>
{{range .Figures}}Plotly.newPlot({{.Mount.ID}}, {{.Data}}, {{.Layout}}, {responsive: true});
{{end -}}
</script>
</body>
</html>
`))
