// Package pipeline runs one render pass: fetch the feed, normalize the
// features, build the four figures and hand each to a renderer.
//
// A pass never panics on feed or transform failures; the outcome is reported
// in a Result.
package pipeline
