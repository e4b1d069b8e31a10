package cache

import "container/list"

// FIFOEvictor evicts keys in insertion order. Touching a key that is
// already tracked is a no-op, so the first write fixes its position.
type FIFOEvictor struct {
	ll  *list.List               // Front = oldest insert (victim)
	idx map[string]*list.Element // key -> element, for O(1) Remove
}

// NewFIFOEvictor creates an empty FIFO eviction policy.
func NewFIFOEvictor() *FIFOEvictor {
	return &FIFOEvictor{
		ll:  list.New(),
		idx: make(map[string]*list.Element),
	}
}

// TouchKey appends key to the back of the queue unless it is already
// tracked.
func (f *FIFOEvictor) TouchKey(key string) {
	if _, ok := f.idx[key]; ok {
		return
	}
	f.idx[key] = f.ll.PushBack(key)
}

// Evict pops the oldest key.
func (f *FIFOEvictor) Evict() (string, bool) {
	front := f.ll.Front()
	if front == nil {
		return "", false
	}
	key := front.Value.(string)
	f.ll.Remove(front)
	delete(f.idx, key)
	return key, true
}

// Remove untracks key if present.
func (f *FIFOEvictor) Remove(key string) {
	if el, ok := f.idx[key]; ok {
		f.ll.Remove(el)
		delete(f.idx, key)
	}
}

// Reset drops all tracked keys.
func (f *FIFOEvictor) Reset() {
	f.ll.Init()
	f.idx = make(map[string]*list.Element)
}

// Len returns the number of tracked keys.
func (f *FIFOEvictor) Len() int { return f.ll.Len() }
