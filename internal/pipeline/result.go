package pipeline

import (
	"time"

	"github.com/google/uuid"

	"github.com/rickgao/quakeviz/internal/chart"
	"github.com/rickgao/quakeviz/internal/model"
)

// Outcome classifies how a render pass ended.
type Outcome int

const (
	// OutcomeRendered means every figure reached the renderer.
	OutcomeRendered Outcome = iota
	// OutcomeFetchFailed means the feed could not be fetched or decoded.
	OutcomeFetchFailed
	// OutcomeTransformFailed means a feed record could not be normalized.
	OutcomeTransformFailed
	// OutcomeRenderFailed means at least one render call returned an error.
	OutcomeRenderFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRendered:
		return "rendered"
	case OutcomeFetchFailed:
		return "fetch_failed"
	case OutcomeTransformFailed:
		return "transform_failed"
	case OutcomeRenderFailed:
		return "render_failed"
	default:
		return "unknown"
	}
}

// Result reports one render pass.
type Result struct {
	RunID      uuid.UUID
	Outcome    Outcome
	Events     int           // Normalized events, 0 unless the transform succeeded
	Normalized []model.Event // The events themselves, nil unless the transform succeeded
	Rendered   []chart.Mount // Mounts whose render call succeeded
	Figures    []chart.Figure
	StartedAt  time.Time
	Duration   time.Duration
	Err        error
}

// OK reports whether every figure was rendered.
func (r Result) OK() bool {
	return r.Outcome == OutcomeRendered && r.Err == nil
}
