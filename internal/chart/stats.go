package chart

import (
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/rickgao/quakeviz/internal/model"
)

// DayCount is the number of events on one calendar day.
type DayCount struct {
	Day   string // 2006-01-02
	Count int
}

// DailyCounts groups events by calendar day in loc and returns one entry per
// distinct day, oldest first. Input order does not matter.
func DailyCounts(events []model.Event, loc *time.Location) []DayCount {
	counts := make(map[string]int)
	for _, e := range events {
		counts[e.Day(loc)]++
	}

	out := make([]DayCount, 0, len(counts))
	for day, n := range counts {
		out = append(out, DayCount{Day: day, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}

// MaxMagnitude returns the largest magnitude, or 0 when there are no events.
func MaxMagnitude(events []model.Event) float64 {
	if len(events) == 0 {
		return 0
	}
	return floats.Max(model.Magnitudes(events))
}

// HistogramBins returns the bins used by the magnitude histogram:
// [0, max+1] in steps of HistogramBinSize.
func HistogramBins(events []model.Event) XBins {
	return XBins{
		Start: 0,
		End:   MaxMagnitude(events) + 1,
		Size:  HistogramBinSize,
	}
}

// Bin is one histogram bucket, [Lower, Upper).
type Bin struct {
	Lower float64
	Upper float64
	Count int
}

// HistogramCounts counts magnitudes into bins of width size starting at start
// and covering at least up to end. Values outside the bins are ignored.
func HistogramCounts(events []model.Event, bins XBins) []Bin {
	if bins.Size <= 0 {
		return nil
	}

	// Small epsilon so that 5.5/0.1 = 55.000000000000001 does not add a bin.
	n := int(math.Ceil((bins.End-bins.Start)/bins.Size - 1e-9))
	if n < 1 {
		n = 1
	}

	dividers := make([]float64, n+1)
	floats.Span(dividers, bins.Start, bins.Start+float64(n)*bins.Size)

	lo, hi := dividers[0], dividers[n]
	values := make([]float64, 0, len(events))
	for _, e := range events {
		if e.Magnitude >= lo && e.Magnitude < hi {
			values = append(values, e.Magnitude)
		}
	}
	sort.Float64s(values)

	counts := stat.Histogram(nil, dividers, values, nil)

	out := make([]Bin, n)
	for i := range out {
		out[i] = Bin{
			Lower: dividers[i],
			Upper: dividers[i+1],
			Count: int(counts[i]),
		}
	}
	return out
}
