package store

import (
	"context"
	"strings"
	"time"

	"stock_go/internal/domain"
	"stock_go/pkg/debounce"
)

// DefaultSearchDebounce matches the search input's quiet window.
const DefaultSearchDebounce = 1000 * time.Millisecond

// SearchService is the incremental symbol search flow: a debounce in
// front of the cache store's keyword-cached search.
type SearchService struct {
	cache *CacheStore
}

// NewSearchService builds a search service over the cache store.
func NewSearchService(cache *CacheStore) *SearchService {
	return &SearchService{cache: cache}
}

// Search resolves keywords to symbol matches. Blank input
// short-circuits to no results without touching cache or network.
func (s *SearchService) Search(ctx context.Context, keywords string) ([]domain.SymbolMatch, error) {
	if strings.TrimSpace(keywords) == "" {
		return nil, nil
	}
	return s.cache.SearchSymbols(ctx, keywords)
}

// Debounced returns a debouncer that runs Search once per quiet window
// with the latest keywords, dispatching to onResult or onError. A burst
// of keystrokes issues at most one API call.
func (s *SearchService) Debounced(ctx context.Context, delay time.Duration, onResult func(keywords string, matches []domain.SymbolMatch), onError func(keywords string, err error)) *debounce.Debouncer[string] {
	if delay <= 0 {
		delay = DefaultSearchDebounce
	}
	return debounce.New(delay, func(keywords string) {
		matches, err := s.Search(ctx, keywords)
		if err != nil {
			onError(keywords, err)
			return
		}
		onResult(keywords, matches)
	})
}
