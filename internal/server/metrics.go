package server

import (
	"sync/atomic"
	"time"
)

// Metrics tracks API statistics using atomic operations for thread-safety
type Metrics struct {
	Requests    atomic.Int64
	Failures    atomic.Int64
	CacheHits   atomic.Int64
	CacheMisses atomic.Int64
	StartTime   time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// IncRequests increments the handled requests counter
func (m *Metrics) IncRequests() {
	m.Requests.Add(1)
}

// IncFailures increments the counter of responses with a 4xx or 5xx status
func (m *Metrics) IncFailures() {
	m.Failures.Add(1)
}

// IncCacheHits increments the snapshot cache hit counter
func (m *Metrics) IncCacheHits() {
	m.CacheHits.Add(1)
}

// IncCacheMisses increments the snapshot cache miss counter
func (m *Metrics) IncCacheMisses() {
	m.CacheMisses.Add(1)
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	Requests    int64     `json:"requests"`
	Failures    int64     `json:"failures"`
	CacheHits   int64     `json:"cache_hits"`
	CacheMisses int64     `json:"cache_misses"`
	StartTime   time.Time `json:"start_time"`
	Uptime      string    `json:"uptime"`
}

// GetSnapshot returns a snapshot of current metrics
func (m *Metrics) GetSnapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Requests:    m.Requests.Load(),
		Failures:    m.Failures.Load(),
		CacheHits:   m.CacheHits.Load(),
		CacheMisses: m.CacheMisses.Load(),
		StartTime:   m.StartTime,
		Uptime:      time.Since(m.StartTime).String(),
	}
}
