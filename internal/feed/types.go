package feed

// FeatureCollection is the top-level GeoJSON document served by the feed.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Metadata Metadata  `json:"metadata"`
	Features []Feature `json:"features"`
	BBox     []float64 `json:"bbox,omitempty"`
}

// Metadata describes the feed document.
type Metadata struct {
	Generated int64  `json:"generated"` // ms since epoch
	URL       string `json:"url"`
	Title     string `json:"title"`
	Status    int    `json:"status"`
	API       string `json:"api"`
	Count     int    `json:"count"`
}

// Feature is one earthquake as delivered by the feed.
//
// Geometry and Properties are pointers so that a record missing either can be
// told apart from one with zero values.
type Feature struct {
	Type       string      `json:"type"`
	ID         string      `json:"id"`
	Properties *Properties `json:"properties"`
	Geometry   *Geometry   `json:"geometry"`
}

// Properties holds the event attributes. Only Mag and Time are required.
type Properties struct {
	Mag     *float64 `json:"mag"`
	Place   string   `json:"place"`
	Time    *int64   `json:"time"`    // ms since epoch
	Updated int64    `json:"updated"` // ms since epoch
	URL     string   `json:"url"`
	MagType string   `json:"magType"`
	Type    string   `json:"type"`
	Title   string   `json:"title"`
}

// Geometry is a GeoJSON Point with [longitude, latitude, depth] coordinates.
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}
