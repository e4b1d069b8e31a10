package cache

// Evictor decides which key to sacrifice when the cache needs space.
// Implementations are not safe for concurrent use on their own; the
// Cache serializes every call under its lock.
type Evictor interface {
	// TouchKey records that key was just inserted or read.
	TouchKey(key string)
	// Evict removes and returns the next victim in policy order.
	// ok is false when no keys are tracked.
	Evict() (key string, ok bool)
	// Remove untracks key after an explicit delete so a later Evict
	// can never return a key the cache no longer holds.
	Remove(key string)
	// Reset drops all tracked keys.
	Reset()
}
