package infra

import (
	"sync/atomic"
	"time"
)

// Metrics provides lightweight observability without external dependencies.
// Uses atomic operations for thread-safety.
type Metrics struct {
	// Counters
	apiRequests atomic.Uint64
	cacheHits   atomic.Uint64
	cacheMisses atomic.Uint64
	errorsTotal atomic.Uint64
}

// GlobalMetrics is the singleton metrics instance.
var GlobalMetrics = &Metrics{}

// RecordAPIRequest records one issued quote API request.
func (m *Metrics) RecordAPIRequest() {
	m.apiRequests.Add(1)
}

// RecordCacheHit records a cache read served without a network call.
func (m *Metrics) RecordCacheHit() {
	m.cacheHits.Add(1)
}

// RecordCacheMiss records a cache read that triggered a refetch.
func (m *Metrics) RecordCacheMiss() {
	m.cacheMisses.Add(1)
}

// RecordError records an error occurrence.
func (m *Metrics) RecordError() {
	m.errorsTotal.Add(1)
}

// MetricsSnapshot is a point-in-time view of all metrics.
type MetricsSnapshot struct {
	APIRequests    uint64
	CacheHits      uint64
	CacheMisses    uint64
	ErrorsTotal    uint64
	QuotaRemaining int64
	Timestamp      time.Time
}

// Snapshot returns current metrics as a snapshot. dailyQuota is the
// API's request budget (25/day on the free tier); remaining quota is
// relative to requests issued this process, floored at zero.
func (m *Metrics) Snapshot(dailyQuota int) MetricsSnapshot {
	remaining := int64(dailyQuota) - int64(m.apiRequests.Load())
	if remaining < 0 {
		remaining = 0
	}

	return MetricsSnapshot{
		APIRequests:    m.apiRequests.Load(),
		CacheHits:      m.cacheHits.Load(),
		CacheMisses:    m.cacheMisses.Load(),
		ErrorsTotal:    m.errorsTotal.Load(),
		QuotaRemaining: remaining,
		Timestamp:      time.Now(),
	}
}

// Reset clears all metrics (for testing).
func (m *Metrics) Reset() {
	m.apiRequests.Store(0)
	m.cacheHits.Store(0)
	m.cacheMisses.Store(0)
	m.errorsTotal.Store(0)
}
