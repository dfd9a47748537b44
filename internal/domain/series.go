package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// ChartPoint is one plotted sample of an intraday series.
type ChartPoint struct {
	Time  string          // full "2006-01-02 15:04:05" timestamp from the API
	Close decimal.Decimal // parsed close price
	Label string          // sparse axis label ("15:04"), empty on most points
}

// labelEvery controls axis label density: one label per N points.
const labelEvery = 5

// BuildChartSeries orders intraday bars by timestamp ascending and
// parses their closes for plotting. Bars with an unparseable close are
// skipped. Every labelEvery-th point carries the HH:MM part of its
// timestamp as label; the rest stay blank so the axis does not crowd.
func BuildChartSeries(bars map[string]IntradayBar) []ChartPoint {
	if len(bars) == 0 {
		return nil
	}

	times := make([]string, 0, len(bars))
	for ts := range bars {
		times = append(times, ts)
	}
	// API timestamps are fixed-width "YYYY-MM-DD HH:MM:SS", so
	// lexicographic order is chronological order.
	sort.Strings(times)

	points := make([]ChartPoint, 0, len(times))
	for _, ts := range times {
		closePx, err := decimal.NewFromString(bars[ts].Close)
		if err != nil {
			continue
		}

		var label string
		if len(points)%labelEvery == 0 {
			label = clockLabel(ts)
		}
		points = append(points, ChartPoint{Time: ts, Close: closePx, Label: label})
	}
	return points
}

// clockLabel extracts "HH:MM" from a "YYYY-MM-DD HH:MM:SS" timestamp.
func clockLabel(ts string) string {
	const dateLen = len("2006-01-02 ")
	if len(ts) < dateLen+5 {
		return ts
	}
	return ts[dateLen : dateLen+5]
}
