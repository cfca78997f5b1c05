package chart

// Mount identifies the element a figure is rendered into.
type Mount struct {
	ID string
}

func (m Mount) String() string {
	return m.ID
}

// Mounts names the target of each of the four figures.
type Mounts struct {
	Map        Mount
	Histogram  Mount
	TimeSeries Mount
	Scatter    Mount
}

// DefaultMounts returns the element ids used by the generated page.
func DefaultMounts() Mounts {
	return Mounts{
		Map:        Mount{ID: "map"},
		Histogram:  Mount{ID: "histogram"},
		TimeSeries: Mount{ID: "time-series"},
		Scatter:    Mount{ID: "scatter-plot"},
	}
}

// All returns the mounts in render order.
func (m Mounts) All() []Mount {
	return []Mount{m.Map, m.Histogram, m.TimeSeries, m.Scatter}
}

// Figure is a Plotly figure bound to a mount.
type Figure struct {
	Mount  Mount   `json:"-"`
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is one Plotly trace. Concrete types marshal to the trace's JSON form.
type Trace interface {
	TraceType() string
}

// ScatterGeoTrace plots markers on a map.
type ScatterGeoTrace struct {
	Type   string    `json:"type"`
	Mode   string    `json:"mode"`
	Lon    []float64 `json:"lon"`
	Lat    []float64 `json:"lat"`
	Text   []string  `json:"text,omitempty"`
	Marker Marker    `json:"marker"`
}

func (t ScatterGeoTrace) TraceType() string { return t.Type }

// HistogramTrace bins X values client side.
type HistogramTrace struct {
	Type  string    `json:"type"`
	X     []float64 `json:"x"`
	XBins XBins     `json:"xbins"`
}

func (t HistogramTrace) TraceType() string { return t.Type }

// XBins are explicit histogram bin boundaries.
type XBins struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Size  float64 `json:"size"`
}

// ScatterTrace is a cartesian x/y trace. X is []float64 or []string.
type ScatterTrace struct {
	Type   string    `json:"type"`
	Mode   string    `json:"mode,omitempty"`
	X      any       `json:"x"`
	Y      []float64 `json:"y"`
	Marker *Marker   `json:"marker,omitempty"`
}

func (t ScatterTrace) TraceType() string { return t.Type }

// Marker styles trace markers. Size is a number or one number per point.
type Marker struct {
	Size    any         `json:"size"`
	Color   string      `json:"color"`
	Opacity float64     `json:"opacity,omitempty"`
	Line    *MarkerLine `json:"line,omitempty"`
}

// MarkerLine styles a marker outline.
type MarkerLine struct {
	Color string  `json:"color"`
	Width float64 `json:"width"`
}

// Layout is the subset of the Plotly layout the figures use.
type Layout struct {
	Title    string `json:"title"`
	XAxis    *Axis  `json:"xaxis,omitempty"`
	YAxis    *Axis  `json:"yaxis,omitempty"`
	Geo      *Geo   `json:"geo,omitempty"`
	Autosize bool   `json:"autosize"`
}

// Axis labels a cartesian axis.
type Axis struct {
	Title string `json:"title"`
	Type  string `json:"type,omitempty"`
}

// Geo configures the map of a scattergeo figure.
type Geo struct {
	Projection    Projection `json:"projection"`
	ShowLand      bool       `json:"showland"`
	LandColor     string     `json:"landcolor"`
	CountryColor  string     `json:"countrycolor"`
	ShowCountries bool       `json:"showcountries"`
	ShowOcean     bool       `json:"showocean"`
	OceanColor    string     `json:"oceancolor"`
}

// Projection selects the map projection.
type Projection struct {
	Type string `json:"type"`
}
