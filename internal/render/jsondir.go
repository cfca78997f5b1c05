package render

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rickgao/quakeviz/internal/chart"
)

// ErrNoMount is returned for a figure without a mount id.
var ErrNoMount = errors.New("figure has no mount")

// JSONDir writes each figure to <dir>/<mount>.json.
type JSONDir struct {
	dir string
}

// NewJSONDir creates a renderer writing into dir. The directory is created on
// first use.
func NewJSONDir(dir string) *JSONDir {
	return &JSONDir{dir: dir}
}

// Path returns the file a mount is written to.
func (d *JSONDir) Path(m chart.Mount) string {
	return filepath.Join(d.dir, m.ID+".json")
}

// Render writes fig as {"data": ..., "layout": ...}.
func (d *JSONDir) Render(ctx context.Context, fig chart.Figure) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	id := fig.Mount.ID
	if id == "" {
		return fmt.Errorf("render json: %w", ErrNoMount)
	}
	if strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return fmt.Errorf("render json: invalid mount id %q", id)
	}

	body, err := json.MarshalIndent(fig, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal figure %s: %w", id, err)
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(d.Path(fig.Mount), append(body, '\n'), 0o644); err != nil {
		return fmt.Errorf("write figure %s: %w", id, err)
	}
	return nil
}
