// Package model defines the normalized earthquake record shared by the
// transformer, the chart builders and the renderers.
//
// Conventions:
//   - Coordinates: float64 degrees (latitude [-90, 90], longitude [-180, 180])
//   - Depth: float64 kilometres below the surface
//   - Time: time.Time instant derived from the feed's epoch milliseconds
package model
