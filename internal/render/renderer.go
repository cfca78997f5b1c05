package render

import (
	"context"
	"errors"

	"github.com/rickgao/quakeviz/internal/chart"
)

// Renderer hands a figure to the charting runtime.
type Renderer interface {
	Render(ctx context.Context, fig chart.Figure) error
}

// RendererFunc is a function adapter for Renderer.
type RendererFunc func(ctx context.Context, fig chart.Figure) error

func (f RendererFunc) Render(ctx context.Context, fig chart.Figure) error {
	return f(ctx, fig)
}

// Multi renders every figure with each renderer in turn. All renderers are
// called even if one fails; the errors are joined.
func Multi(renderers ...Renderer) Renderer {
	return RendererFunc(func(ctx context.Context, fig chart.Figure) error {
		var errs []error
		for _, r := range renderers {
			if err := r.Render(ctx, fig); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})
}
