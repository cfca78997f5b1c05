// Package server serves rendered pages over HTTP.
//
// Every page or figures request runs its own render pass. Nothing is
// cached between requests.
//
// Routes:
//   - GET /         the HTML page
//   - GET /figures  the figures as JSON, keyed by mount
//   - GET /health   build info and the outcome of the last pass
//   - GET <metrics> Prometheus metrics, when a path is configured
package server
