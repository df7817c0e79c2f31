package chunkgen

import (
	"log/slog"
	"runtime"
	"sync"

	"github.com/brentp/intintmap"
	"github.com/google/uuid"
)

// PoolConfig configures a background generation Pool. The zero value is
// usable apart from Generator, which is required.
type PoolConfig struct {
	// Logger receives pool lifecycle and saturation messages. If nil,
	// slog.Default() is used.
	Logger *slog.Logger
	// Generator produces the chunks. Required.
	Generator *Generator
	// Workers is the number of goroutines generating chunks. If zero or
	// lower, the worker count is derived from the available CPUs.
	Workers int
	// QueueSize bounds the number of requests waiting for a worker. If
	// zero or lower, a size proportional to the worker count is chosen.
	QueueSize int
	// Store, if set, is consulted before generating and written through
	// after. The pool owns neither opening nor closing it.
	Store *Store
	// Deliver receives every finished chunk, called from worker
	// goroutines. Required.
	Deliver func(*Chunk)
	// Metrics receives pool counters. If nil, counting is disabled.
	Metrics *Metrics
}

func (c PoolConfig) withDefaults() PoolConfig {
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.Workers <= 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	if c.QueueSize <= 0 {
		c.QueueSize = c.Workers * 32
	}
	return c
}

// Pool pre-computes chunks on background workers. Requests for a chunk that
// is already queued or being generated are coalesced into one job.
type Pool struct {
	id  uuid.UUID
	log *slog.Logger

	gen     *Generator
	store   *Store
	deliver func(*Chunk)
	metrics *Metrics

	jobs chan ChunkPos

	mu       sync.Mutex
	inflight *intintmap.Map
	closed   bool

	wg sync.WaitGroup
}

// NewPool starts a Pool with the configuration given. It panics if
// cfg.Generator or cfg.Deliver is nil, as a pool without either can do no
// work.
func NewPool(cfg PoolConfig) *Pool {
	if cfg.Generator == nil {
		panic("chunkgen: pool requires a generator")
	}
	if cfg.Deliver == nil {
		panic("chunkgen: pool requires a deliver callback")
	}
	cfg = cfg.withDefaults()

	p := &Pool{
		id:       uuid.New(),
		log:      cfg.Logger,
		gen:      cfg.Generator,
		store:    cfg.Store,
		deliver:  cfg.Deliver,
		metrics:  cfg.Metrics,
		jobs:     make(chan ChunkPos, cfg.QueueSize),
		inflight: intintmap.New(1024, 0.6),
	}
	p.wg.Add(cfg.Workers)
	for i := 0; i < cfg.Workers; i++ {
		go p.worker()
	}
	p.log.Debug("chunk generation pool started",
		"pool", p.id, "seed", p.gen.Seed(), "workers", cfg.Workers, "queue", cfg.QueueSize)
	return p
}

// Request queues the chunk at pos for generation. It reports whether the
// request was accepted: duplicates of queued or running jobs and requests
// against a full queue are rejected.
func (p *Pool) Request(pos ChunkPos) bool {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return false
	}
	if _, ok := p.inflight.Get(pos.key()); ok {
		p.mu.Unlock()
		p.metrics.IncDeduped()
		return false
	}
	select {
	case p.jobs <- pos:
		p.inflight.Put(pos.key(), 1)
		p.metrics.SetQueueSize(len(p.jobs))
		p.mu.Unlock()
		return true
	default:
		p.mu.Unlock()
		p.metrics.IncDropped()
		p.log.Warn("chunk generation queue saturated", "pool", p.id, "chunkX", pos.X(), "chunkZ", pos.Z())
		return false
	}
}

// Stop drains the queue and waits for all workers to finish. No further
// requests are accepted after Stop returns.
func (p *Pool) Stop() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.jobs)
	p.mu.Unlock()

	p.wg.Wait()
	p.log.Debug("chunk generation pool stopped", "pool", p.id)
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for pos := range p.jobs {
		p.deliver(p.generate(pos))

		p.mu.Lock()
		p.inflight.Del(pos.key())
		p.mu.Unlock()
		p.metrics.SetQueueSize(len(p.jobs))
	}
}

func (p *Pool) generate(pos ChunkPos) *Chunk {
	if p.store != nil {
		if c, ok, err := p.store.Get(pos); err != nil {
			p.log.Warn("chunk store read failed", "pool", p.id, "chunkX", pos.X(), "chunkZ", pos.Z(), "err", err)
		} else if ok {
			p.metrics.IncCacheHit()
			return c
		}
	}

	c := p.gen.Generate(pos)
	p.metrics.IncGenerated()

	if p.store != nil {
		if err := p.store.Put(c); err != nil {
			p.log.Warn("chunk store write failed", "pool", p.id, "chunkX", pos.X(), "chunkZ", pos.Z(), "err", err)
		} else {
			p.metrics.IncStored()
		}
	}
	return c
}
