package store

import (
	"context"
	"sync"
	"time"

	"stock_go/internal/domain"
	"stock_go/internal/infra"
)

// Entry wraps a cached payload with its fetch time. Data is replaced
// wholesale on refresh, never mutated in place, and Timestamp is
// monotonically non-decreasing per key across refresh cycles.
type Entry[T any] struct {
	Data      T         `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

// Default TTLs. Gainers/losers churn much faster than fundamentals;
// the coarse caching exists to respect the API's 25 requests/day quota.
const (
	DefaultGainersLosersTTL = 15 * time.Minute
	DefaultFundamentalsTTL  = 24 * time.Hour
	DefaultSearchTTL        = 15 * time.Minute
)

// cacheRecordKey names the persisted cache record.
const cacheRecordKey = "alpha-cache"

// cacheRecord is the persisted shape: cache entries only. The
// transient loading/error fields never survive a restart.
type cacheRecord struct {
	GainersLosers *Entry[domain.GainersLosers]          `json:"gainers_losers,omitempty"`
	Fundamentals  map[string]Entry[domain.Fundamentals] `json:"company_fundamentals"`
	Search        map[string]Entry[[]domain.SymbolMatch] `json:"ticker_search"`
}

// CacheOptions tune a CacheStore. Zero values fall back to defaults.
type CacheOptions struct {
	GainersLosersTTL time.Duration
	FundamentalsTTL  time.Duration
	SearchTTL        time.Duration
	Now              func() time.Time // injectable clock for tests
}

// flight is one in-progress fetch shared by concurrent callers.
type flight struct {
	done chan struct{}
	err  error
}

// CacheStore is the read-through TTL cache over the quote API. A fresh
// entry is a hard short-circuit; a stale or absent one triggers a full
// refetch. Concurrent misses for one key share a single API call.
type CacheStore struct {
	mu  sync.Mutex
	api domain.QuoteAPI
	kv  domain.KeyValue
	now func() time.Time

	glTTL     time.Duration
	fundTTL   time.Duration
	searchTTL time.Duration

	gainersLosers *Entry[domain.GainersLosers]
	fundamentals  map[string]Entry[domain.Fundamentals]
	search        map[string]Entry[[]domain.SymbolMatch]

	// Transient request status. Last-writer-wins across overlapping
	// fetches; callers use the returned error for flow control.
	loading bool
	errMsg  string

	inflight map[string]*flight
}

// NewCacheStore builds a cache store and loads any persisted entries.
func NewCacheStore(ctx context.Context, api domain.QuoteAPI, kv domain.KeyValue, opts CacheOptions) *CacheStore {
	if opts.GainersLosersTTL <= 0 {
		opts.GainersLosersTTL = DefaultGainersLosersTTL
	}
	if opts.FundamentalsTTL <= 0 {
		opts.FundamentalsTTL = DefaultFundamentalsTTL
	}
	if opts.SearchTTL <= 0 {
		opts.SearchTTL = DefaultSearchTTL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	s := &CacheStore{
		api:          api,
		kv:           kv,
		now:          opts.Now,
		glTTL:        opts.GainersLosersTTL,
		fundTTL:      opts.FundamentalsTTL,
		searchTTL:    opts.SearchTTL,
		fundamentals: make(map[string]Entry[domain.Fundamentals]),
		search:       make(map[string]Entry[[]domain.SymbolMatch]),
		inflight:     make(map[string]*flight),
	}
	s.load(ctx)
	return s
}

// load rehydrates persisted cache entries. Absence (including corrupt
// data) means starting empty.
func (s *CacheStore) load(ctx context.Context) {
	var rec cacheRecord
	if !s.kv.Get(ctx, cacheRecordKey, &rec) {
		return
	}
	s.gainersLosers = rec.GainersLosers
	if rec.Fundamentals != nil {
		s.fundamentals = rec.Fundamentals
	}
	if rec.Search != nil {
		s.search = rec.Search
	}
}

// persist mirrors the current entries to storage, best-effort.
func (s *CacheStore) persist(ctx context.Context) {
	s.mu.Lock()
	rec := cacheRecord{
		GainersLosers: s.gainersLosers,
		Fundamentals:  s.fundamentals,
		Search:        s.search,
	}
	s.mu.Unlock()

	s.kv.Set(ctx, cacheRecordKey, rec)
}

// FetchGainersLosers returns the top movers snapshot, from cache when
// it is younger than the TTL, otherwise freshly fetched.
func (s *CacheStore) FetchGainersLosers(ctx context.Context) (*domain.GainersLosers, error) {
	s.mu.Lock()
	if e := s.gainersLosers; e != nil && s.now().Sub(e.Timestamp) < s.glTTL {
		data := e.Data
		s.mu.Unlock()
		infra.GlobalMetrics.RecordCacheHit()
		return &data, nil
	}
	s.mu.Unlock()
	infra.GlobalMetrics.RecordCacheMiss()

	err := s.fetch(ctx, "gainers_losers", func(ctx context.Context) error {
		data, err := s.api.TopGainersLosers(ctx)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.gainersLosers = &Entry[domain.GainersLosers]{Data: *data, Timestamp: s.now()}
		s.mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	data := s.gainersLosers.Data
	s.mu.Unlock()
	return &data, nil
}

// FetchFundamentals returns the fundamentals record for symbol, cached
// per symbol with the fundamentals TTL.
func (s *CacheStore) FetchFundamentals(ctx context.Context, symbol string) (*domain.Fundamentals, error) {
	s.mu.Lock()
	if e, ok := s.fundamentals[symbol]; ok && s.now().Sub(e.Timestamp) < s.fundTTL {
		data := e.Data
		s.mu.Unlock()
		infra.GlobalMetrics.RecordCacheHit()
		return &data, nil
	}
	s.mu.Unlock()
	infra.GlobalMetrics.RecordCacheMiss()

	err := s.fetch(ctx, "overview:"+symbol, func(ctx context.Context) error {
		data, err := s.api.CompanyOverview(ctx, symbol)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.fundamentals[symbol] = Entry[domain.Fundamentals]{Data: *data, Timestamp: s.now()}
		s.mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	data := s.fundamentals[symbol].Data
	s.mu.Unlock()
	return &data, nil
}

// SearchSymbols returns symbol matches for the given keywords, cached
// per keyword string with the search TTL.
func (s *CacheStore) SearchSymbols(ctx context.Context, keywords string) ([]domain.SymbolMatch, error) {
	s.mu.Lock()
	if e, ok := s.search[keywords]; ok && s.now().Sub(e.Timestamp) < s.searchTTL {
		data := e.Data
		s.mu.Unlock()
		infra.GlobalMetrics.RecordCacheHit()
		return data, nil
	}
	s.mu.Unlock()
	infra.GlobalMetrics.RecordCacheMiss()

	err := s.fetch(ctx, "search:"+keywords, func(ctx context.Context) error {
		matches, err := s.api.SearchSymbols(ctx, keywords)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.search[keywords] = Entry[[]domain.SymbolMatch]{Data: matches, Timestamp: s.now()}
		s.mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	data := s.search[keywords].Data
	s.mu.Unlock()
	return data, nil
}

// FetchIntraday passes the intraday series straight through to the API.
// Bars are not cached: the chart screen refetches on every open and the
// series would dwarf the other records in storage.
func (s *CacheStore) FetchIntraday(ctx context.Context, symbol string) (map[string]domain.IntradayBar, error) {
	bars, err := s.api.Intraday(ctx, symbol)
	if err != nil {
		s.mu.Lock()
		s.errMsg = err.Error()
		s.mu.Unlock()
		return nil, domain.NewFetchError("intraday:"+symbol, err)
	}
	return bars, nil
}

// fetch runs one network refresh for key, coalescing concurrent callers
// onto a single API call. The winner runs fn; everyone gets the same
// error (or the entry fn stored on success).
func (s *CacheStore) fetch(ctx context.Context, key string, fn func(context.Context) error) error {
	s.mu.Lock()
	if f, ok := s.inflight[key]; ok {
		s.mu.Unlock()
		select {
		case <-f.done:
			return f.err
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	f := &flight{done: make(chan struct{})}
	s.inflight[key] = f
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()

	rawErr := fn(ctx)
	var err error
	if rawErr != nil {
		err = domain.NewFetchError(key, rawErr)
	}

	s.mu.Lock()
	if rawErr != nil {
		// Human-readable message for display; the wrapped error is
		// what flows back to the caller.
		s.errMsg = rawErr.Error()
	}
	s.loading = false
	delete(s.inflight, key)
	f.err = err
	s.mu.Unlock()
	close(f.done)

	if err == nil {
		// Fire-and-forget mirror; memory stays the source of truth.
		s.persist(ctx)
	}
	return err
}

// Loading reports whether any fetch is currently in flight.
func (s *CacheStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last fetch failure message, empty when the most
// recent fetch succeeded.
func (s *CacheStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}
