// Package feed provides the USGS earthquake feed client and the transform
// from raw GeoJSON features to model.Event.
//
// Summary feeds (GeoJSON):
//   - https://earthquake.usgs.gov/earthquakes/feed/v1.0/summary/all_hour.geojson
//   - https://earthquake.usgs.gov/earthquakes/feed/v1.0/summary/all_day.geojson
//   - https://earthquake.usgs.gov/earthquakes/feed/v1.0/summary/all_week.geojson
//
// Coordinates follow the GeoJSON convention: [longitude, latitude, depth].
// Requests are made exactly once; the client never retries.
package feed
