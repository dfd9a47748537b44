package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"stock_go/internal/domain"
)

// memKV is an in-memory stand-in for the persistence adapter. It runs
// real JSON serialization so round-trip tests exercise the same paths
// as the SQLite-backed adapter.
type memKV struct {
	mu sync.Mutex
	m  map[string][]byte
}

func newMemKV() *memKV {
	return &memKV{m: make(map[string][]byte)}
}

func (k *memKV) Set(_ context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	k.mu.Lock()
	k.m[key] = data
	k.mu.Unlock()
}

func (k *memKV) Get(_ context.Context, key string, out any) bool {
	k.mu.Lock()
	data, ok := k.m[key]
	k.mu.Unlock()
	if !ok {
		return false
	}
	return json.Unmarshal(data, out) == nil
}

func (k *memKV) Remove(_ context.Context, key string) {
	k.mu.Lock()
	delete(k.m, key)
	k.mu.Unlock()
}

// fakeClock is an injectable wall clock.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 1, 6, 9, 30, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

// fakeAPI counts calls per operation and can fail or block on demand.
type fakeAPI struct {
	mu            sync.Mutex
	searchCalls   int
	gainersCalls  int
	overviewCalls int
	intradayCalls int

	err  error
	gate chan struct{} // when set, fetches block until closed

	snapshot domain.GainersLosers
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		snapshot: domain.GainersLosers{
			LastUpdated: "2025-01-06 16:15:59 US/Eastern",
			TopGainers: []domain.TickerSummary{
				{Ticker: "TSLA", Price: "245.32", ChangeAmount: "12.15", ChangePercentage: "5.21%", Volume: "120034500"},
			},
			TopLosers: []domain.TickerSummary{
				{Ticker: "BA", Price: "176.02", ChangeAmount: "-4.31", ChangePercentage: "-2.39%", Volume: "7300210"},
			},
		},
	}
}

func (a *fakeAPI) wait() {
	a.mu.Lock()
	gate := a.gate
	a.mu.Unlock()
	if gate != nil {
		<-gate
	}
}

func (a *fakeAPI) SearchSymbols(_ context.Context, keywords string) ([]domain.SymbolMatch, error) {
	a.wait()
	a.mu.Lock()
	defer a.mu.Unlock()
	a.searchCalls++
	if a.err != nil {
		return nil, a.err
	}
	return []domain.SymbolMatch{{Symbol: keywords + "1", Name: "Match for " + keywords}}, nil
}

func (a *fakeAPI) TopGainersLosers(_ context.Context) (*domain.GainersLosers, error) {
	a.wait()
	a.mu.Lock()
	defer a.mu.Unlock()
	a.gainersCalls++
	if a.err != nil {
		return nil, a.err
	}
	snap := a.snapshot
	return &snap, nil
}

func (a *fakeAPI) CompanyOverview(_ context.Context, symbol string) (*domain.Fundamentals, error) {
	a.wait()
	a.mu.Lock()
	defer a.mu.Unlock()
	a.overviewCalls++
	if a.err != nil {
		return nil, a.err
	}
	return &domain.Fundamentals{
		Symbol:     symbol,
		Name:       symbol + " Inc.",
		Week52Low:  "100.00",
		Week52High: "200.00",
	}, nil
}

func (a *fakeAPI) Intraday(_ context.Context, symbol string) (map[string]domain.IntradayBar, error) {
	a.wait()
	a.mu.Lock()
	defer a.mu.Unlock()
	a.intradayCalls++
	if a.err != nil {
		return nil, a.err
	}
	return map[string]domain.IntradayBar{
		"2025-01-06 09:30:00": {Open: "100", High: "101", Low: "99", Close: "100.5", Volume: "1000"},
	}, nil
}

func (a *fakeAPI) setError(err error) {
	a.mu.Lock()
	a.err = err
	a.mu.Unlock()
}

func (a *fakeAPI) calls() (search, gainers, overview, intraday int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.searchCalls, a.gainersCalls, a.overviewCalls, a.intradayCalls
}

var errUpstream = errors.New("upstream unavailable")
