// Package render implements the boundary between chart figures and the
// Plotly runtime.
//
// A Renderer receives each figure once. Page collects figures into a single
// HTML document that loads plotly.js; JSONDir writes one JSON document per
// mount.
package render
