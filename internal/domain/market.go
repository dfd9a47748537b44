package domain

import "github.com/shopspring/decimal"

// SymbolMatch is one row of a symbol search result.
type SymbolMatch struct {
	Symbol      string `json:"symbol"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Region      string `json:"region"`
	MarketOpen  string `json:"market_open"`
	MarketClose string `json:"market_close"`
	Timezone    string `json:"timezone"`
	Currency    string `json:"currency"`
	MatchScore  string `json:"match_score"`
}

// TickerSummary is one row of the gainers/losers snapshot.
// All values are text-encoded decimals, exactly as the API sends them.
type TickerSummary struct {
	Ticker           string `json:"ticker"`
	Price            string `json:"price"`
	ChangeAmount     string `json:"change_amount"`
	ChangePercentage string `json:"change_percentage"`
	Volume           string `json:"volume"`
}

// ChangeDirection returns "positive", "negative", or "neutral" based on
// the change amount. Unparseable values count as neutral.
func (t *TickerSummary) ChangeDirection() string {
	chg, err := decimal.NewFromString(t.ChangeAmount)
	if err != nil {
		return "neutral"
	}
	if chg.IsPositive() {
		return "positive"
	}
	if chg.IsNegative() {
		return "negative"
	}
	return "neutral"
}

// GainersLosers is the top movers snapshot.
type GainersLosers struct {
	LastUpdated string          `json:"last_updated"`
	TopGainers  []TickerSummary `json:"top_gainers"`
	TopLosers   []TickerSummary `json:"top_losers"`
}

// Fundamentals is a company overview record. Absent fields stay empty
// strings; nothing here is parsed into numerics.
type Fundamentals struct {
	Symbol        string `json:"symbol"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Exchange      string `json:"exchange"`
	Currency      string `json:"currency"`
	Sector        string `json:"sector"`
	Industry      string `json:"industry"`
	MarketCap     string `json:"market_cap"`
	PERatio       string `json:"pe_ratio"`
	PBRatio       string `json:"pb_ratio"`
	ROE           string `json:"roe"`
	EPS           string `json:"eps"`
	DividendYield string `json:"dividend_yield"`
	Week52High    string `json:"week_52_high"`
	Week52Low     string `json:"week_52_low"`
	PreviousClose string `json:"previous_close"`
	DayOpen       string `json:"day_open"`
	DayHigh       string `json:"day_high"`
	DayLow        string `json:"day_low"`
	Price         string `json:"price"`
}

// AsStock converts a fundamentals record into a watchlist entry.
func (f *Fundamentals) AsStock() Stock {
	return Stock{
		Symbol: f.Symbol,
		Name:   f.Name,
		Low:    f.Week52Low,
		High:   f.Week52High,
	}
}

// IntradayBar is a single OHLCV bar of the intraday series,
// keyed externally by its timestamp string.
type IntradayBar struct {
	Open   string `json:"open"`
	High   string `json:"high"`
	Low    string `json:"low"`
	Close  string `json:"close"`
	Volume string `json:"volume"`
}
