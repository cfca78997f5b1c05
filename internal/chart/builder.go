package chart

import (
	"time"

	"github.com/rickgao/quakeviz/internal/model"
)

// Styling constants for the four figures.
const (
	MarkerScale      = 5.0 // geo marker size per unit of magnitude
	HistogramBinSize = 0.1
	ScatterSize      = 5.0

	mapMarkerColor   = "rgb(255, 0, 0)"
	mapMarkerOpacity = 0.7
	mapMarkerLine    = "rgba(255, 255, 255, 0.5)"
	landColor        = "rgb(227, 227, 227)"
	countryColor     = "rgb(255, 255, 255)"
	oceanColor       = "rgb(204, 230, 255)"
	scatterColor     = "rgba(50, 171, 96, 0.7)"
	scatterLineColor = "rgba(50, 171, 96, 1)"
)

// Labels holds the titles and axis labels of the figures.
type Labels struct {
	MapTitle        string
	HistogramTitle  string
	HistogramX      string
	HistogramY      string
	TimeSeriesTitle string
	TimeSeriesX     string
	TimeSeriesY     string
	ScatterTitle    string
	ScatterX        string
	ScatterY        string
}

// DefaultLabels returns the stock (French) labels.
func DefaultLabels() Labels {
	return Labels{
		MapTitle:        "Carte du monde des séismes",
		HistogramTitle:  "Distribution de la magnitude des séismes",
		HistogramX:      "Magnitude",
		HistogramY:      "Fréquence",
		TimeSeriesTitle: "Séismes par jour de la semaine passée",
		TimeSeriesX:     "Date",
		TimeSeriesY:     "Nombre de séismes",
		ScatterTitle:    "Magnitude vs profondeur des séismes",
		ScatterX:        "Magnitude",
		ScatterY:        "Profondeur (km)",
	}
}

// Builder produces figures. The zero value is not usable; use NewBuilder.
type Builder struct {
	labels   Labels
	location *time.Location
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithLabels overrides the default labels.
func WithLabels(l Labels) BuilderOption {
	return func(b *Builder) {
		b.labels = l
	}
}

// WithLocation sets the time zone used to group events by day.
func WithLocation(loc *time.Location) BuilderOption {
	return func(b *Builder) {
		if loc != nil {
			b.location = loc
		}
	}
}

// NewBuilder creates a Builder with default labels and the local time zone.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		labels:   DefaultLabels(),
		location: time.Local,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Location returns the time zone used for day grouping.
func (b *Builder) Location() *time.Location {
	return b.location
}

// GeoScatter plots one marker per event at its epicentre.
func (b *Builder) GeoScatter(m Mount, events []model.Event) Figure {
	lat := make([]float64, len(events))
	lon := make([]float64, len(events))
	sizes := make([]float64, len(events))
	text := make([]string, len(events))
	for i, e := range events {
		lat[i] = e.Latitude
		lon[i] = e.Longitude
		sizes[i] = e.Magnitude * MarkerScale
		text[i] = e.Place
	}

	return Figure{
		Mount: m,
		Data: []Trace{ScatterGeoTrace{
			Type: "scattergeo",
			Mode: "markers",
			Lon:  lon,
			Lat:  lat,
			Text: text,
			Marker: Marker{
				Size:    sizes,
				Color:   mapMarkerColor,
				Opacity: mapMarkerOpacity,
				Line:    &MarkerLine{Color: mapMarkerLine, Width: 1},
			},
		}},
		Layout: Layout{
			Title: b.labels.MapTitle,
			Geo: &Geo{
				Projection:    Projection{Type: "natural earth"},
				ShowLand:      true,
				LandColor:     landColor,
				CountryColor:  countryColor,
				ShowCountries: true,
				ShowOcean:     true,
				OceanColor:    oceanColor,
			},
			Autosize: true,
		},
	}
}

// MagnitudeHistogram bins magnitudes from 0 to max magnitude + 1.
func (b *Builder) MagnitudeHistogram(m Mount, events []model.Event) Figure {
	return Figure{
		Mount: m,
		Data: []Trace{HistogramTrace{
			Type:  "histogram",
			X:     model.Magnitudes(events),
			XBins: HistogramBins(events),
		}},
		Layout: Layout{
			Title:    b.labels.HistogramTitle,
			XAxis:    &Axis{Title: b.labels.HistogramX},
			YAxis:    &Axis{Title: b.labels.HistogramY},
			Autosize: true,
		},
	}
}

// TimeSeries plots the number of events per calendar day.
func (b *Builder) TimeSeries(m Mount, events []model.Event) Figure {
	days := DailyCounts(events, b.location)

	x := make([]string, len(days))
	y := make([]float64, len(days))
	for i, d := range days {
		x[i] = d.Day
		y[i] = float64(d.Count)
	}

	return Figure{
		Mount: m,
		Data: []Trace{ScatterTrace{
			Type: "scatter",
			Mode: "lines+markers",
			X:    x,
			Y:    y,
		}},
		Layout: Layout{
			Title:    b.labels.TimeSeriesTitle,
			XAxis:    &Axis{Title: b.labels.TimeSeriesX, Type: "date"},
			YAxis:    &Axis{Title: b.labels.TimeSeriesY},
			Autosize: true,
		},
	}
}

// MagnitudeDepth plots magnitude against depth.
func (b *Builder) MagnitudeDepth(m Mount, events []model.Event) Figure {
	depths := make([]float64, len(events))
	for i, e := range events {
		depths[i] = e.Depth
	}

	return Figure{
		Mount: m,
		Data: []Trace{ScatterTrace{
			Type: "scatter",
			Mode: "markers",
			X:    model.Magnitudes(events),
			Y:    depths,
			Marker: &Marker{
				Size:  ScatterSize,
				Color: scatterColor,
				Line:  &MarkerLine{Color: scatterLineColor, Width: 1},
			},
		}},
		Layout: Layout{
			Title:    b.labels.ScatterTitle,
			XAxis:    &Axis{Title: b.labels.ScatterX},
			YAxis:    &Axis{Title: b.labels.ScatterY},
			Autosize: true,
		},
	}
}

// BuildAll builds the four figures in render order.
func (b *Builder) BuildAll(mounts Mounts, events []model.Event) []Figure {
	return []Figure{
		b.GeoScatter(mounts.Map, events),
		b.MagnitudeHistogram(mounts.Histogram, events),
		b.TimeSeries(mounts.TimeSeries, events),
		b.MagnitudeDepth(mounts.Scatter, events),
	}
}
