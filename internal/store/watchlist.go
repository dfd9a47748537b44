package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"stock_go/internal/domain"
)

// watchlistRecordKey names the persisted watchlist record.
const watchlistRecordKey = "watchlist-storage"

// watchlistRecord is the persisted shape. A set cannot be serialized
// directly, so the symbol set travels as a sorted array and is
// rehydrated on load.
type watchlistRecord struct {
	Watchlists []domain.Watchlist `json:"watchlists"`
	StockSet   []string           `json:"stockSet"`
}

// WatchlistStore owns the ordered watchlist collection and a derived
// symbol set for O(1) bookmark checks. The set is kept consistent with
// the union of all watchlists' stocks on every mutation, watchlist
// removal included. All mutations persist asynchronously afterwards;
// in-memory state is the source of truth for the session.
type WatchlistStore struct {
	mu         sync.RWMutex
	kv         domain.KeyValue
	watchlists []domain.Watchlist
	stockSet   map[string]struct{}
}

// NewWatchlistStore builds a store and loads any persisted state.
func NewWatchlistStore(ctx context.Context, kv domain.KeyValue) *WatchlistStore {
	s := &WatchlistStore{
		kv:       kv,
		stockSet: make(map[string]struct{}),
	}
	s.load(ctx)
	return s
}

func (s *WatchlistStore) load(ctx context.Context) {
	var rec watchlistRecord
	if !s.kv.Get(ctx, watchlistRecordKey, &rec) {
		return
	}
	s.watchlists = rec.Watchlists
	s.stockSet = make(map[string]struct{}, len(rec.StockSet))
	for _, sym := range rec.StockSet {
		s.stockSet[sym] = struct{}{}
	}
}

// persist mirrors the current state to storage, best-effort.
// Called after the mutation completes, outside the lock.
func (s *WatchlistStore) persist(ctx context.Context) {
	s.mu.RLock()
	rec := watchlistRecord{
		Watchlists: s.watchlists,
		StockSet:   make([]string, 0, len(s.stockSet)),
	}
	for sym := range s.stockSet {
		rec.StockSet = append(rec.StockSet, sym)
	}
	s.mu.RUnlock()

	sort.Strings(rec.StockSet)
	s.kv.Set(ctx, watchlistRecordKey, rec)
}

// AddWatchlist appends a new empty watchlist with a generated id.
// Prior order is untouched.
func (s *WatchlistStore) AddWatchlist(ctx context.Context, name string) {
	s.mu.Lock()
	s.watchlists = append(s.watchlists, domain.Watchlist{
		ID:   uuid.NewString(),
		Name: name,
	})
	s.mu.Unlock()

	s.persist(ctx)
}

// RemoveWatchlist removes the watchlist with the given id, if present,
// and prunes symbols that lived only there from the bookmark set.
func (s *WatchlistStore) RemoveWatchlist(ctx context.Context, id string) {
	s.mu.Lock()
	removed := false
	for i, wl := range s.watchlists {
		if wl.ID == id {
			s.watchlists = append(s.watchlists[:i], s.watchlists[i+1:]...)
			removed = true
			break
		}
	}
	if removed {
		s.rebuildSetLocked()
	}
	s.mu.Unlock()

	if removed {
		s.persist(ctx)
	}
}

// AddStock appends stock to the given watchlist. Adding a symbol the
// watchlist already holds is a no-op, as is an unknown watchlist id.
func (s *WatchlistStore) AddStock(ctx context.Context, watchlistID string, stock domain.Stock) {
	s.mu.Lock()
	added := false
	for i := range s.watchlists {
		if s.watchlists[i].ID != watchlistID {
			continue
		}
		if !s.watchlists[i].ContainsSymbol(stock.Symbol) {
			s.watchlists[i].Stocks = append(s.watchlists[i].Stocks, stock)
			s.stockSet[stock.Symbol] = struct{}{}
			added = true
		}
		break
	}
	s.mu.Unlock()

	if added {
		s.persist(ctx)
	}
}

// RemoveStock removes any stock with the given symbol from the named
// watchlist, then rebuilds the bookmark set from all remaining stocks.
func (s *WatchlistStore) RemoveStock(ctx context.Context, watchlistID, symbol string) {
	s.mu.Lock()
	changed := false
	for i := range s.watchlists {
		if s.watchlists[i].ID != watchlistID {
			continue
		}
		stocks := s.watchlists[i].Stocks
		for j, st := range stocks {
			if st.Symbol == symbol {
				s.watchlists[i].Stocks = append(stocks[:j], stocks[j+1:]...)
				changed = true
				break
			}
		}
		break
	}
	if changed {
		s.rebuildSetLocked()
	}
	s.mu.Unlock()

	if changed {
		s.persist(ctx)
	}
}

// rebuildSetLocked recomputes the symbol set as the exact union of all
// watchlists' stocks. Caller holds the write lock.
func (s *WatchlistStore) rebuildSetLocked() {
	set := make(map[string]struct{})
	for _, wl := range s.watchlists {
		for _, st := range wl.Stocks {
			set[st.Symbol] = struct{}{}
		}
	}
	s.stockSet = set
}

// IsBookmarked reports whether any watchlist holds the symbol. It does
// not say which one.
func (s *WatchlistStore) IsBookmarked(symbol string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.stockSet[symbol]
	return ok
}

// Watchlists returns a deep copy of all watchlists in display order.
func (s *WatchlistStore) Watchlists() []domain.Watchlist {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Watchlist, len(s.watchlists))
	for i, wl := range s.watchlists {
		out[i] = wl
		out[i].Stocks = append([]domain.Stock(nil), wl.Stocks...)
	}
	return out
}

// Watchlist returns a copy of the watchlist with the given id.
func (s *WatchlistStore) Watchlist(id string) (domain.Watchlist, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, wl := range s.watchlists {
		if wl.ID == id {
			wl.Stocks = append([]domain.Stock(nil), wl.Stocks...)
			return wl, true
		}
	}
	return domain.Watchlist{}, false
}
