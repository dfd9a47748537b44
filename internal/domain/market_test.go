package domain

import "testing"

func TestTickerSummary_ChangeDirection(t *testing.T) {
	cases := []struct {
		change string
		want   string
	}{
		{"+3.45", "positive"},
		{"3.45", "positive"},
		{"-12.15", "negative"},
		{"0", "neutral"},
		{"0.00", "neutral"},
		{"", "neutral"},
		{"N/A", "neutral"},
	}

	for _, c := range cases {
		ts := TickerSummary{ChangeAmount: c.change}
		if got := ts.ChangeDirection(); got != c.want {
			t.Errorf("ChangeDirection(%q) = %q, want %q", c.change, got, c.want)
		}
	}
}

func TestWatchlist_ContainsSymbol(t *testing.T) {
	wl := Watchlist{
		ID:   "wl1",
		Name: "Tech",
		Stocks: []Stock{
			{Symbol: "AAPL", Name: "Apple Inc."},
			{Symbol: "MSFT", Name: "Microsoft Corp."},
		},
	}

	if !wl.ContainsSymbol("AAPL") {
		t.Error("Should contain AAPL")
	}
	if wl.ContainsSymbol("NVDA") {
		t.Error("Should not contain NVDA")
	}
}

func TestFundamentals_AsStock(t *testing.T) {
	f := Fundamentals{
		Symbol:     "AAPL",
		Name:       "Apple Inc.",
		Week52Low:  "164.08",
		Week52High: "237.23",
		PERatio:    "29.5",
	}

	s := f.AsStock()
	if s.Symbol != "AAPL" || s.Name != "Apple Inc." {
		t.Errorf("Unexpected identity fields: %+v", s)
	}
	if s.Low != "164.08" || s.High != "237.23" {
		t.Errorf("52-week bounds not carried over: %+v", s)
	}
}
