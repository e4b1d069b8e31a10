package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Prom publishes cache metrics through a Prometheus registry.
type Prom struct {
	setNew    prometheus.Counter
	setUpdate prometheus.Counter
	getHit    prometheus.Counter
	getMiss   prometheus.Counter
	rejected  prometheus.Counter
	evicted   prometheus.Counter
	spaceUsed prometheus.Gauge
	keys      prometheus.Gauge
}

// NewProm creates and registers the cache collectors on reg. Call once
// per registry; duplicate registration panics by design of the client
// library.
func NewProm(namespace string, reg prometheus.Registerer) *Prom {
	makeC := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		})
	}
	makeG := func(name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		})
	}

	p := &Prom{
		setNew:    makeC("set_new_total", "Number of new keys set"),
		setUpdate: makeC("set_update_total", "Number of keys replaced"),
		getHit:    makeC("get_hit_total", "Number of cache hits"),
		getMiss:   makeC("get_miss_total", "Number of cache misses"),
		rejected:  makeC("set_rejected_total", "Number of writes dropped for lack of space"),
		evicted:   makeC("evicted_total", "Number of entries removed by the eviction policy"),
		spaceUsed: makeG("space_used_bytes", "Total byte size of stored values"),
		keys:      makeG("keys", "Current number of stored entries"),
	}
	reg.MustRegister(
		p.setNew, p.setUpdate, p.getHit, p.getMiss, p.rejected, p.evicted, p.spaceUsed, p.keys,
	)
	return p
}

// IncSetNew counts an insert of a previously absent key.
func (p *Prom) IncSetNew() { p.setNew.Inc() }

// IncSetUpdate counts a replacement of an existing key.
func (p *Prom) IncSetUpdate() { p.setUpdate.Inc() }

// IncGetHit counts a cache hit.
func (p *Prom) IncGetHit() { p.getHit.Inc() }

// IncGetMiss counts a cache miss.
func (p *Prom) IncGetMiss() { p.getMiss.Inc() }

// IncRejected counts a write dropped for lack of space.
func (p *Prom) IncRejected() { p.rejected.Inc() }

// AddEvicted adds the number of entries removed by the eviction policy.
func (p *Prom) AddEvicted(n int) {
	if n > 0 {
		p.evicted.Add(float64(n))
	}
}

// SetSpaceUsed records the current byte usage.
func (p *Prom) SetSpaceUsed(n uint64) { p.spaceUsed.Set(float64(n)) }

// SetKeys records the current entry count.
func (p *Prom) SetKeys(n int) {
	if n >= 0 {
		p.keys.Set(float64(n))
	}
}
