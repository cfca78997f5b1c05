package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v3"
	"gonum.org/v1/gonum/floats"

	"github.com/rickgao/quakeviz/internal/chart"
	"github.com/rickgao/quakeviz/internal/model"
	"github.com/rickgao/quakeviz/internal/render"
)

const summaryBarWidth = 40

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ED7D31"))
	feintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	barStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#32AB60"))
)

func summaryCommand() *cli.Command {
	return &cli.Command{
		Name:  "summary",
		Usage: "Fetch the feed once and print per-day counts and magnitudes",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			p, err := newPipeline(cfg, logger)
			if err != nil {
				return err
			}

			// The figures are not needed; only the normalized events are printed.
			discard := render.RendererFunc(func(context.Context, chart.Figure) error { return nil })
			res := p.Run(ctx, discard)
			if !res.OK() {
				return fmt.Errorf("summary pass %s: %w", res.Outcome, res.Err)
			}

			loc, err := cfg.Location()
			if err != nil {
				return fmt.Errorf("charts.location: %w", err)
			}
			return writeSummary(cmd.Root().Writer, res.Normalized, loc)
		},
	}
}

// writeSummary prints the events per day and a histogram of whole
// magnitude units.
func writeSummary(w io.Writer, events []model.Event, loc *time.Location) error {
	if len(events) == 0 {
		_, err := fmt.Fprintln(w, feintStyle.Render("No events in the feed."))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, headerStyle.Render(fmt.Sprintf("Events per day (%s)", loc)))
	days := chart.DailyCounts(events, loc)
	dayMax := 0
	for _, d := range days {
		dayMax = max(dayMax, d.Count)
	}
	for _, d := range days {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", d.Day, d.Count, bar(d.Count, dayMax))
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, headerStyle.Render("Magnitude distribution"))
	bins := chart.HistogramCounts(events, magnitudeUnits(events))
	binMax := 0
	for _, b := range bins {
		binMax = max(binMax, b.Count)
	}
	for _, b := range bins {
		fmt.Fprintf(tw, "[%g, %g)\t%d\t%s\n", b.Lower, b.Upper, b.Count, bar(b.Count, binMax))
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, feintStyle.Render(fmt.Sprintf("%d events, max magnitude %.1f",
		len(events), chart.MaxMagnitude(events))))

	return tw.Flush()
}

// magnitudeUnits covers every magnitude, including negative ones, with
// bins one unit wide.
func magnitudeUnits(events []model.Event) chart.XBins {
	mags := model.Magnitudes(events)
	return chart.XBins{
		Start: math.Floor(floats.Min(mags)),
		End:   math.Floor(floats.Max(mags)) + 1,
		Size:  1,
	}
}

func bar(n, maxN int) string {
	if maxN == 0 || n == 0 {
		return ""
	}
	width := max(1, n*summaryBarWidth/maxN)
	return barStyle.Render(strings.Repeat("█", width))
}
