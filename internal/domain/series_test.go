package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestBuildChartSeries(t *testing.T) {
	t.Run("sorted ascending with parsed closes", func(t *testing.T) {
		bars := map[string]IntradayBar{
			"2025-01-06 10:05:00": {Close: "101.50"},
			"2025-01-06 09:55:00": {Close: "100.00"},
			"2025-01-06 10:00:00": {Close: "100.75"},
		}

		points := BuildChartSeries(bars)
		if len(points) != 3 {
			t.Fatalf("Expected 3 points, got %d", len(points))
		}
		if points[0].Time != "2025-01-06 09:55:00" {
			t.Errorf("First point should be earliest, got %s", points[0].Time)
		}
		if !points[2].Close.Equal(decimal.RequireFromString("101.50")) {
			t.Errorf("Last close = %v, want 101.50", points[2].Close)
		}
	})

	t.Run("sparse labels", func(t *testing.T) {
		bars := make(map[string]IntradayBar)
		for _, ts := range []string{
			"2025-01-06 09:30:00", "2025-01-06 09:35:00", "2025-01-06 09:40:00",
			"2025-01-06 09:45:00", "2025-01-06 09:50:00", "2025-01-06 09:55:00",
		} {
			bars[ts] = IntradayBar{Close: "100"}
		}

		points := BuildChartSeries(bars)
		if points[0].Label != "09:30" {
			t.Errorf("First label = %q, want 09:30", points[0].Label)
		}
		for i := 1; i < 5; i++ {
			if points[i].Label != "" {
				t.Errorf("Point %d should have empty label, got %q", i, points[i].Label)
			}
		}
		if points[5].Label != "09:55" {
			t.Errorf("Sixth label = %q, want 09:55", points[5].Label)
		}
	})

	t.Run("unparseable bars skipped", func(t *testing.T) {
		bars := map[string]IntradayBar{
			"2025-01-06 09:30:00": {Close: "100"},
			"2025-01-06 09:35:00": {Close: "garbage"},
			"2025-01-06 09:40:00": {Close: "102"},
		}

		points := BuildChartSeries(bars)
		if len(points) != 2 {
			t.Fatalf("Expected 2 points after skipping bad bar, got %d", len(points))
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if pts := BuildChartSeries(nil); pts != nil {
			t.Errorf("Expected nil for empty input, got %v", pts)
		}
	})
}
