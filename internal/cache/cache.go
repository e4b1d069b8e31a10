// Package cache implements the memory-bounded storage engine: a
// key-value map with exact byte accounting, a fixed capacity, and a
// pluggable eviction policy consulted when a write needs room.
package cache

import (
	"sync"

	"github.com/InternetUnexplorer/CSCI-389-HW6/internal/metrics"
)

// Cache is a bounded key-value store. Values are charged by byte
// length against a capacity fixed at construction; keys are free.
//
// All operations are guarded by one coarse mutex held for the duration
// of the call. Operations are short (O(1), or O(entries evicted) for a
// Set under pressure), so the single lock is the simplest correct
// design for concurrent callers; it is a known scalability ceiling,
// accepted because network I/O dominates the workload.
type Cache struct {
	cfg    Config
	maxmem uint64

	mu      sync.Mutex
	entries map[string][]byte
	used    uint64
}

// New creates a cache holding at most maxmem bytes of values.
func New(maxmem uint64, opts ...Option) *Cache {
	cfg := Config{Metrics: metrics.Noop{}}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.Metrics == nil {
		cfg.Metrics = metrics.Noop{}
	}
	if cfg.SizeHint < 0 {
		cfg.SizeHint = 0
	}
	return &Cache{
		cfg:     cfg,
		maxmem:  maxmem,
		entries: make(map[string][]byte, cfg.SizeHint),
	}
}

// Set stores a copy of value under key, replacing any existing entry.
// If the value cannot fit after exhausting the eviction policy (or
// there is no policy), the write is silently dropped; the only trace
// is a later Get miss.
func (c *Cache) Set(key string, value []byte) {
	size := uint64(len(value))

	c.mu.Lock()
	defer c.mu.Unlock()

	// A set replaces: the old entry is removed before the capacity
	// check so only the new size is charged.
	old, existed := c.entries[key]
	if existed {
		c.used -= uint64(len(old))
		delete(c.entries, key)
	}

	if !c.makeRoom(size) {
		// The key may already be tracked from the replaced entry (or
		// an earlier rejected write must not leave it tracked).
		if c.cfg.Evictor != nil {
			c.cfg.Evictor.Remove(key)
		}
		c.cfg.Metrics.IncRejected()
		if c.cfg.Logger != nil {
			c.cfg.Logger.Warn("cache.set.rejected", "key", key, "size", size, "maxmem", c.maxmem)
		}
		c.publishGauges()
		return
	}

	cp := make([]byte, len(value))
	copy(cp, value)
	c.entries[key] = cp
	c.used += size

	if c.cfg.Evictor != nil {
		c.cfg.Evictor.TouchKey(key)
	}
	if existed {
		c.cfg.Metrics.IncSetUpdate()
	} else {
		c.cfg.Metrics.IncSetNew()
	}
	if c.cfg.Logger != nil {
		c.cfg.Logger.Debug("cache.set", "key", key, "size", size, "used", c.used)
	}
	c.publishGauges()
}

// makeRoom evicts entries until need more bytes fit, returning whether
// they do. Caller holds c.mu.
func (c *Cache) makeRoom(need uint64) bool {
	if need > c.maxmem {
		return false
	}
	if c.used+need <= c.maxmem {
		return true
	}
	if c.cfg.Evictor == nil {
		return false
	}

	evicted := 0
	for c.used+need > c.maxmem {
		victim, ok := c.cfg.Evictor.Evict()
		if !ok {
			break
		}
		if old, exists := c.entries[victim]; exists {
			c.used -= uint64(len(old))
			delete(c.entries, victim)
			evicted++
		}
	}
	if evicted > 0 {
		c.cfg.Metrics.AddEvicted(evicted)
		if c.cfg.Logger != nil {
			c.cfg.Logger.Info("cache.evict", "count", evicted, "used", c.used)
		}
	}
	return c.used+need <= c.maxmem
}

// Get returns an owned copy of the value stored under key. The copy
// stays valid regardless of later operations on the cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.entries[key]
	if !ok {
		c.cfg.Metrics.IncGetMiss()
		return nil, false
	}
	if c.cfg.Evictor != nil {
		c.cfg.Evictor.TouchKey(key)
	}
	c.cfg.Metrics.IncGetHit()
	cp := make([]byte, len(v))
	copy(cp, v)
	return cp, true
}

// Del removes the entry under key, reporting whether one existed. The
// key is also untracked from the eviction policy so a later Evict can
// never name it.
func (c *Cache) Del(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.entries[key]
	if !ok {
		return false
	}
	c.used -= uint64(len(v))
	delete(c.entries, key)
	if c.cfg.Evictor != nil {
		c.cfg.Evictor.Remove(key)
	}
	if c.cfg.Logger != nil {
		c.cfg.Logger.Debug("cache.del", "key", key, "used", c.used)
	}
	c.publishGauges()
	return true
}

// SpaceUsed returns the total byte size of stored values.
func (c *Cache) SpaceUsed() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.used
}

// Len returns the number of stored entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// MaxMem returns the capacity in bytes.
func (c *Cache) MaxMem() uint64 { return c.maxmem }

// Reset drops every entry and the eviction policy's tracking state.
// Capacity and policy are unchanged.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string][]byte, c.cfg.SizeHint)
	c.used = 0
	if c.cfg.Evictor != nil {
		c.cfg.Evictor.Reset()
	}
	if c.cfg.Logger != nil {
		c.cfg.Logger.Info("cache.reset")
	}
	c.publishGauges()
}

// publishGauges pushes the size gauges to the metrics sink. Caller
// holds c.mu.
func (c *Cache) publishGauges() {
	c.cfg.Metrics.SetSpaceUsed(c.used)
	c.cfg.Metrics.SetKeys(len(c.entries))
}
