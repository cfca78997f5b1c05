// Package metrics provides Prometheus metrics for monitoring.
//
// Key metrics:
//   - Feed fetch outcomes and latency
//   - Events normalized per pass
//   - Render calls per mount
//   - Render pass outcomes and last success time
package metrics
