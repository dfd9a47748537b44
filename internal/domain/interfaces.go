package domain

import "context"

// QuoteAPI defines the four operations of the remote quote service.
// Implementations own their transport, timeouts included; callers apply
// no timeout of their own.
type QuoteAPI interface {
	SearchSymbols(ctx context.Context, keywords string) ([]SymbolMatch, error)
	TopGainersLosers(ctx context.Context) (*GainersLosers, error)
	CompanyOverview(ctx context.Context, symbol string) (*Fundamentals, error)
	Intraday(ctx context.Context, symbol string) (map[string]IntradayBar, error)
}

// KeyValue is the persistence medium seen by the stores: an
// asynchronous string-keyed JSON store that never reports failure.
// Get reports absence via its bool result.
type KeyValue interface {
	Set(ctx context.Context, key string, value any)
	Get(ctx context.Context, key string, out any) bool
	Remove(ctx context.Context, key string)
}
