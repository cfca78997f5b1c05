package chart

import (
	"testing"
	"time"

	"github.com/rickgao/quakeviz/internal/model"
)

func TestDailyCounts(t *testing.T) {
	day := func(s string) time.Time {
		tm, err := time.Parse(time.RFC3339, s)
		if err != nil {
			t.Fatalf("parse %q: %v", s, err)
		}
		return tm
	}

	t.Run("same day counted once", func(t *testing.T) {
		events := []model.Event{
			{Time: day("2024-03-01T01:00:00Z")},
			{Time: day("2024-03-01T23:00:00Z")},
		}

		got := DailyCounts(events, time.UTC)
		if len(got) != 1 {
			t.Fatalf("len = %d, want 1", len(got))
		}
		if got[0] != (DayCount{Day: "2024-03-01", Count: 2}) {
			t.Errorf("got %+v, want {2024-03-01 2}", got[0])
		}
	})

	t.Run("sorted regardless of input order", func(t *testing.T) {
		events := []model.Event{
			{Time: day("2024-03-03T10:00:00Z")},
			{Time: day("2024-03-01T10:00:00Z")},
			{Time: day("2024-03-03T11:00:00Z")},
			{Time: day("2024-03-02T10:00:00Z")},
		}

		got := DailyCounts(events, time.UTC)
		want := []DayCount{
			{"2024-03-01", 1},
			{"2024-03-02", 1},
			{"2024-03-03", 2},
		}
		if len(got) != len(want) {
			t.Fatalf("got %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("got[%d] = %+v, want %+v", i, got[i], want[i])
			}
		}
	})

	t.Run("grouping follows location", func(t *testing.T) {
		events := []model.Event{
			{Time: day("2024-03-01T23:30:00Z")},
			{Time: day("2024-03-02T00:30:00Z")},
		}

		if got := DailyCounts(events, time.UTC); len(got) != 2 {
			t.Errorf("UTC: got %v, want 2 days", got)
		}
		if got := DailyCounts(events, time.FixedZone("UTC+2", 2*60*60)); len(got) != 1 {
			t.Errorf("UTC+2: got %v, want 1 day", got)
		}
	})

	t.Run("empty", func(t *testing.T) {
		if got := DailyCounts(nil, time.UTC); len(got) != 0 {
			t.Errorf("got %v, want empty", got)
		}
	})
}

func TestMaxMagnitude(t *testing.T) {
	tests := []struct {
		name   string
		events []model.Event
		want   float64
	}{
		{"empty", nil, 0},
		{"single", []model.Event{{Magnitude: 3.2}}, 3.2},
		{"negative only", []model.Event{{Magnitude: -1.5}, {Magnitude: -0.2}}, -0.2},
		{"mixed", []model.Event{{Magnitude: 1}, {Magnitude: 6.1}, {Magnitude: 2}}, 6.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaxMagnitude(tt.events); got != tt.want {
				t.Errorf("MaxMagnitude() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHistogramBins(t *testing.T) {
	if got := HistogramBins(nil); got != (XBins{Start: 0, End: 1, Size: 0.1}) {
		t.Errorf("HistogramBins(nil) = %+v, want {0 1 0.1}", got)
	}

	events := []model.Event{{Magnitude: 2}, {Magnitude: 4}}
	if got := HistogramBins(events); got.End != 5 {
		t.Errorf("HistogramBins().End = %v, want 5", got.End)
	}
}

func TestHistogramCounts(t *testing.T) {
	t.Run("unit bins", func(t *testing.T) {
		events := []model.Event{
			{Magnitude: 0.5},
			{Magnitude: 1.2},
			{Magnitude: 1.8},
			{Magnitude: 2.9},
			{Magnitude: -1},  // below start
			{Magnitude: 3.5}, // beyond last bin
		}

		got := HistogramCounts(events, XBins{Start: 0, End: 3, Size: 1})
		want := []Bin{
			{Lower: 0, Upper: 1, Count: 1},
			{Lower: 1, Upper: 2, Count: 2},
			{Lower: 2, Upper: 3, Count: 1},
		}
		if len(got) != len(want) {
			t.Fatalf("len = %d, want %d", len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("bin %d = %+v, want %+v", i, got[i], want[i])
			}
		}
	})

	t.Run("tenth bins cover every event", func(t *testing.T) {
		events := []model.Event{{Magnitude: 0.3}, {Magnitude: 1.05}, {Magnitude: 4.5}, {Magnitude: 2.2}}
		bins := HistogramBins(events)

		got := HistogramCounts(events, bins)
		if len(got) != 55 {
			t.Errorf("len = %d, want 55", len(got))
		}
		total := 0
		for _, b := range got {
			total += b.Count
		}
		if total != len(events) {
			t.Errorf("total = %d, want %d", total, len(events))
		}
	})

	t.Run("empty input", func(t *testing.T) {
		got := HistogramCounts(nil, HistogramBins(nil))
		if len(got) != 10 {
			t.Fatalf("len = %d, want 10", len(got))
		}
		for i, b := range got {
			if b.Count != 0 {
				t.Errorf("bin %d count = %d, want 0", i, b.Count)
			}
		}
	})

	t.Run("invalid size", func(t *testing.T) {
		if got := HistogramCounts(nil, XBins{Start: 0, End: 1, Size: 0}); got != nil {
			t.Errorf("got %v, want nil", got)
		}
	})
}
