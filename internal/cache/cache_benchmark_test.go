package cache

import (
	"fmt"
	"math/rand"
	"sync/atomic"
	"testing"

	"github.com/InternetUnexplorer/CSCI-389-HW6/internal/metrics"
)

type benchConfig struct {
	readRatio float64
	evictor   string
	maxmem    uint64
	warmKeys  int
	valueSize int
}

var benchMatrix = []benchConfig{
	{readRatio: 0.90, evictor: "none", maxmem: 1 << 26, warmKeys: 50_000, valueSize: 128},
	{readRatio: 0.50, evictor: "none", maxmem: 1 << 26, warmKeys: 50_000, valueSize: 128},

	// Capacity sized to keep the evictor busy.
	{readRatio: 0.90, evictor: "fifo", maxmem: 1 << 22, warmKeys: 50_000, valueSize: 128},
	{readRatio: 0.90, evictor: "lru", maxmem: 1 << 22, warmKeys: 50_000, valueSize: 128},
	{readRatio: 0.50, evictor: "lru", maxmem: 1 << 22, warmKeys: 50_000, valueSize: 128},
}

func newBenchEvictor(name string) Evictor {
	switch name {
	case "fifo":
		return NewFIFOEvictor()
	case "lru":
		return NewLRUEvictor()
	default:
		return nil
	}
}

func BenchmarkCache_MixedWorkload(b *testing.B) {
	for _, cfg := range benchMatrix {
		name := fmt.Sprintf("readRatio=%.0f,evictor=%s,maxmem=%d",
			cfg.readRatio*100, cfg.evictor, cfg.maxmem)
		b.Run(name, func(b *testing.B) {
			runOneBenchmark(b, cfg)
		})
	}
}

func runOneBenchmark(b *testing.B, cfg benchConfig) {
	b.ReportAllocs()

	c := New(cfg.maxmem,
		WithEvictor(newBenchEvictor(cfg.evictor)),
		WithMetrics(metrics.NewSimple()),
	)

	value := make([]byte, cfg.valueSize)
	keys := make([]string, cfg.warmKeys)
	for i := range keys {
		keys[i] = fmt.Sprintf("k%05d", i)
		c.Set(keys[i], value)
	}

	// Fixed per-goroutine seeds for reproducibility.
	var seed atomic.Int64

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		r := rand.New(rand.NewSource(42 + seed.Add(1)))
		for pb.Next() {
			k := keys[r.Intn(len(keys))]
			if r.Float64() < cfg.readRatio {
				c.Get(k)
			} else {
				c.Set(k, value)
			}
		}
	})
}
