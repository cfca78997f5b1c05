// Package chart builds Plotly figures from normalized events.
//
// Four figures are produced, each addressed to an explicit Mount:
//   - geographic scatter (scattergeo, marker size = magnitude x 5)
//   - magnitude histogram (bins of 0.1 from 0 to max magnitude + 1)
//   - events per calendar day (sorted by day)
//   - magnitude vs depth scatter
//
// Builders are pure: they never mutate their input and accept empty slices.
package chart
