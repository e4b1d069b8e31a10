// Package metrics abstracts the counters the cache and its HTTP layer
// publish, with no-op, in-process, and Prometheus implementations.
package metrics

import "sync/atomic"

// Interface is the sink for cache metrics.
type Interface interface {
	IncSetNew()
	IncSetUpdate()
	IncGetHit()
	IncGetMiss()
	IncRejected()
	AddEvicted(n int)
	SetSpaceUsed(n uint64)
	SetKeys(n int)
}

// Noop discards every metric.
type Noop struct{}

func (Noop) IncSetNew()            {}
func (Noop) IncSetUpdate()         {}
func (Noop) IncGetHit()            {}
func (Noop) IncGetMiss()           {}
func (Noop) IncRejected()          {}
func (Noop) AddEvicted(_ int)      {}
func (Noop) SetSpaceUsed(_ uint64) {}
func (Noop) SetKeys(_ int)         {}

// Simple counts into atomics, for tests and benchmarks.
type Simple struct {
	SetNew    atomic.Uint64
	SetUpdate atomic.Uint64
	GetHit    atomic.Uint64
	GetMiss   atomic.Uint64
	Rejected  atomic.Uint64
	Evicted   atomic.Uint64
	SpaceUsed atomic.Uint64
	Keys      atomic.Uint64
}

// NewSimple creates a zeroed Simple metrics sink.
func NewSimple() *Simple { return &Simple{} }

// IncSetNew counts an insert of a previously absent key.
func (m *Simple) IncSetNew() { m.SetNew.Add(1) }

// IncSetUpdate counts a replacement of an existing key.
func (m *Simple) IncSetUpdate() { m.SetUpdate.Add(1) }

// IncGetHit counts a cache hit.
func (m *Simple) IncGetHit() { m.GetHit.Add(1) }

// IncGetMiss counts a cache miss.
func (m *Simple) IncGetMiss() { m.GetMiss.Add(1) }

// IncRejected counts a write dropped for lack of space.
func (m *Simple) IncRejected() { m.Rejected.Add(1) }

// AddEvicted adds the number of entries removed by the eviction policy.
func (m *Simple) AddEvicted(n int) {
	if n > 0 {
		m.Evicted.Add(uint64(n))
	}
}

// SetSpaceUsed records the current byte usage.
func (m *Simple) SetSpaceUsed(n uint64) { m.SpaceUsed.Store(n) }

// SetKeys records the current entry count.
func (m *Simple) SetKeys(n int) {
	if n >= 0 {
		m.Keys.Store(uint64(n))
	}
}
