package feed

import (
	"errors"
	"fmt"
	"time"

	"github.com/rickgao/quakeviz/internal/model"
)

// ErrMalformedFeature is returned when a feature lacks the geometry or
// properties the transform reads.
var ErrMalformedFeature = errors.New("malformed feature")

// ToModel converts a Feature to model.Event.
//
// Coordinates are read as [longitude, latitude, depth]. The magnitude is
// passed through unchanged and the time is read as Unix milliseconds.
func (f *Feature) ToModel() (model.Event, error) {
	if f.Geometry == nil {
		return model.Event{}, fmt.Errorf("%w: missing geometry", ErrMalformedFeature)
	}
	if len(f.Geometry.Coordinates) < 3 {
		return model.Event{}, fmt.Errorf("%w: want 3 coordinates, got %d",
			ErrMalformedFeature, len(f.Geometry.Coordinates))
	}
	if f.Properties == nil {
		return model.Event{}, fmt.Errorf("%w: missing properties", ErrMalformedFeature)
	}
	if f.Properties.Mag == nil {
		return model.Event{}, fmt.Errorf("%w: missing mag", ErrMalformedFeature)
	}
	if f.Properties.Time == nil {
		return model.Event{}, fmt.Errorf("%w: missing time", ErrMalformedFeature)
	}

	coords := f.Geometry.Coordinates
	return model.Event{
		Latitude:  coords[1],
		Longitude: coords[0],
		Magnitude: *f.Properties.Mag,
		Time:      time.UnixMilli(*f.Properties.Time),
		Depth:     coords[2],
		ID:        f.ID,
		Place:     f.Properties.Place,
	}, nil
}

// Normalize converts every feature, preserving order.
//
// The first malformed feature aborts the transform and no events are
// returned.
func Normalize(features []Feature) ([]model.Event, error) {
	events := make([]model.Event, 0, len(features))
	for i := range features {
		ev, err := features[i].ToModel()
		if err != nil {
			return nil, fmt.Errorf("feature %d (%s): %w", i, features[i].ID, err)
		}
		events = append(events, ev)
	}
	return events, nil
}
