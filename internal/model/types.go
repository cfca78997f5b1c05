package model

import "time"

// Event is one earthquake, flattened from a feed record.
//
// Events are created once per render pass and never mutated afterwards.
type Event struct {
	Latitude  float64   // Degrees north
	Longitude float64   // Degrees east
	Magnitude float64   // As reported by the feed, no clamping
	Time      time.Time // Origin time
	Depth     float64   // Kilometres

	// Informational only; no chart depends on these.
	ID    string // Feed identifier (e.g., "us7000abcd")
	Place string // Human readable location
}

// Day returns the calendar day of the event in loc, formatted as 2006-01-02.
// A nil loc means time.Local.
func (e Event) Day(loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return e.Time.In(loc).Format(time.DateOnly)
}

// Magnitudes returns the magnitude of every event, in order.
func Magnitudes(events []Event) []float64 {
	out := make([]float64, len(events))
	for i, e := range events {
		out[i] = e.Magnitude
	}
	return out
}
