package domain

// Stock is a single entry inside a watchlist. Low and High are the
// 52-week bounds exactly as the quote API sends them: text-encoded
// decimals, never parsed into numerics at this layer.
type Stock struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Low    string `json:"low"`
	High   string `json:"high"`
}

// Watchlist is a user-named, ordered collection of stocks.
// Insertion order is display order.
type Watchlist struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Stocks []Stock `json:"stocks"`
}

// ContainsSymbol reports whether the watchlist already holds a stock
// with the given symbol.
func (w *Watchlist) ContainsSymbol(symbol string) bool {
	for _, s := range w.Stocks {
		if s.Symbol == symbol {
			return true
		}
	}
	return false
}
