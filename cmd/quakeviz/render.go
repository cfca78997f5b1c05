package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/rickgao/quakeviz/internal/pipeline"
	"github.com/rickgao/quakeviz/internal/render"
	"github.com/rickgao/quakeviz/internal/version"
)

func renderCommand() *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: "Fetch the feed once and write the chart page",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "Path of the HTML page (default from output.html_path)",
			},
			&cli.StringFlag{
				Name:  "json-dir",
				Usage: "Also write each figure as JSON into this directory",
			},
		},
		Action: runRender,
	}
}

// runRender is also the root action, where the render flags are absent
// and the config values apply.
func runRender(ctx context.Context, cmd *cli.Command) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	out := cfg.Output.HTMLPath
	if cmd.IsSet("out") {
		out = cmd.String("out")
	}
	jsonDir := cfg.Output.JSONDir
	if cmd.IsSet("json-dir") {
		jsonDir = cmd.String("json-dir")
	}

	p, err := newPipeline(cfg, logger)
	if err != nil {
		return err
	}

	page := render.NewPage(cfg.Charts.PlotlyURL)
	renderers := []render.Renderer{page}
	if jsonDir != "" {
		renderers = append(renderers, render.NewJSONDir(jsonDir))
	}

	res := p.Run(ctx, render.Multi(renderers...))
	if res.Outcome == pipeline.OutcomeFetchFailed || res.Outcome == pipeline.OutcomeTransformFailed {
		return fmt.Errorf("render pass %s: %w", res.Outcome, res.Err)
	}

	meta := render.Meta{
		Title:       cfg.Charts.PageTitle,
		RunID:       res.RunID.String(),
		Source:      cfg.Feed.URL,
		Events:      res.Events,
		GeneratedAt: res.StartedAt,
		Version:     version.Version,
	}
	if err := writePage(out, page, meta); err != nil {
		return err
	}
	logger.Info("page written",
		"path", out,
		"json_dir", jsonDir,
		"events", res.Events,
		"run_id", res.RunID.String(),
	)

	if res.Err != nil {
		return fmt.Errorf("render pass %s: %w", res.Outcome, res.Err)
	}
	return nil
}

// writePage writes the page to a temporary file next to path and renames
// it into place, so readers never see a partial page.
func writePage(path string, page *render.Page, meta render.Meta) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	f, err := os.CreateTemp(dir, ".quakeviz-*.html")
	if err != nil {
		return fmt.Errorf("create page: %w", err)
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	if err := page.WriteHTML(f, meta); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close page: %w", err)
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		return fmt.Errorf("chmod page: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename page: %w", err)
	}
	return nil
}
