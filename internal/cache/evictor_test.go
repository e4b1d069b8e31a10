package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Keys used by the ordering tests, touched in this order.
var evictorKeys = []string{"foo", "bar", "baz", "quux", "quuz", "xyzzy"}

func TestFIFOEvictor_EvictEmpty(t *testing.T) {
	key, ok := NewFIFOEvictor().Evict()
	assert.False(t, ok)
	assert.Equal(t, "", key)
}

func TestFIFOEvictor_Order(t *testing.T) {
	ev := NewFIFOEvictor()

	// Touch keys in forward order, then again in reverse; re-touches
	// must not disturb first-write-wins ordering.
	for _, k := range evictorKeys {
		ev.TouchKey(k)
	}
	for i := len(evictorKeys) - 1; i >= 0; i-- {
		ev.TouchKey(evictorKeys[i])
	}

	for _, want := range evictorKeys {
		got, ok := ev.Evict()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok := ev.Evict()
	assert.False(t, ok)
}

func TestLRUEvictor_EvictEmpty(t *testing.T) {
	key, ok := NewLRUEvictor().Evict()
	assert.False(t, ok)
	assert.Equal(t, "", key)
}

func TestLRUEvictor_Order(t *testing.T) {
	ev := NewLRUEvictor()

	// Touch keys in forward order, then again in reverse; the reverse
	// pass refreshes recency, so evictions come out reversed.
	for _, k := range evictorKeys {
		ev.TouchKey(k)
	}
	for i := len(evictorKeys) - 1; i >= 0; i-- {
		ev.TouchKey(evictorKeys[i])
	}

	for i := len(evictorKeys) - 1; i >= 0; i-- {
		got, ok := ev.Evict()
		require.True(t, ok)
		assert.Equal(t, evictorKeys[i], got)
	}
	_, ok := ev.Evict()
	assert.False(t, ok)
}

func TestEvictor_Remove(t *testing.T) {
	for name, ev := range map[string]Evictor{
		"fifo": NewFIFOEvictor(),
		"lru":  NewLRUEvictor(),
	} {
		t.Run(name, func(t *testing.T) {
			ev.TouchKey("a")
			ev.TouchKey("b")
			ev.TouchKey("c")
			ev.Remove("b")
			ev.Remove("nope") // untracked keys are a no-op

			got, ok := ev.Evict()
			require.True(t, ok)
			assert.Equal(t, "a", got)
			got, ok = ev.Evict()
			require.True(t, ok)
			assert.Equal(t, "c", got)
			_, ok = ev.Evict()
			assert.False(t, ok)
		})
	}
}

func TestEvictor_Reset(t *testing.T) {
	for name, ev := range map[string]Evictor{
		"fifo": NewFIFOEvictor(),
		"lru":  NewLRUEvictor(),
	} {
		t.Run(name, func(t *testing.T) {
			ev.TouchKey("a")
			ev.TouchKey("b")
			ev.Reset()
			_, ok := ev.Evict()
			assert.False(t, ok)

			// Still usable after a reset.
			ev.TouchKey("c")
			got, ok := ev.Evict()
			require.True(t, ok)
			assert.Equal(t, "c", got)
		})
	}
}
