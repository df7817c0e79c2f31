package chunkgen

import "sync"

// Metrics tracks pool counters for observability.
type Metrics struct {
	mu sync.Mutex

	generated uint64
	cacheHits uint64
	stored    uint64
	deduped   uint64
	dropped   uint64
	queue     int
}

// NewMetrics creates an empty metrics registry.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// IncGenerated increments the generated-chunk counter.
func (m *Metrics) IncGenerated() {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.generated++
	m.mu.Unlock()
}

// IncCacheHit increments the store-hit counter.
func (m *Metrics) IncCacheHit() {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.cacheHits++
	m.mu.Unlock()
}

// IncStored increments the store write counter.
func (m *Metrics) IncStored() {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.stored++
	m.mu.Unlock()
}

// IncDeduped increments the duplicate-request counter.
func (m *Metrics) IncDeduped() {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.deduped++
	m.mu.Unlock()
}

// IncDropped increments the dropped-request counter.
func (m *Metrics) IncDropped() {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.dropped++
	m.mu.Unlock()
}

// SetQueueSize stores the current queue size gauge.
func (m *Metrics) SetQueueSize(size int) {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.queue = size
	m.mu.Unlock()
}

// Snapshot is a point-in-time copy of the pool counters.
type Snapshot struct {
	Generated uint64
	CacheHits uint64
	Stored    uint64
	Deduped   uint64
	Dropped   uint64
	QueueSize int
}

// Snapshot returns a copy of the current counters.
func (m *Metrics) Snapshot() Snapshot {
	if m == nil {
		return Snapshot{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{
		Generated: m.generated,
		CacheHits: m.cacheHits,
		Stored:    m.stored,
		Deduped:   m.deduped,
		Dropped:   m.dropped,
		QueueSize: m.queue,
	}
}
