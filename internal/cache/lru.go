package cache

import "container/list"

// LRUEvictor evicts the least recently used key. Every touch moves the
// key to the most-recently-used end, so the index map is required to
// find and unlink its old position in O(1).
type LRUEvictor struct {
	ll  *list.List               // Front = least recently used (victim)
	idx map[string]*list.Element // key -> element
}

// NewLRUEvictor creates an empty LRU eviction policy.
func NewLRUEvictor() *LRUEvictor {
	return &LRUEvictor{
		ll:  list.New(),
		idx: make(map[string]*list.Element),
	}
}

// TouchKey moves key to the most-recently-used end, tracking it first
// if needed.
func (l *LRUEvictor) TouchKey(key string) {
	if el, ok := l.idx[key]; ok {
		l.ll.MoveToBack(el)
		return
	}
	l.idx[key] = l.ll.PushBack(key)
}

// Evict pops the least-recently-used key.
func (l *LRUEvictor) Evict() (string, bool) {
	front := l.ll.Front()
	if front == nil {
		return "", false
	}
	key := front.Value.(string)
	l.ll.Remove(front)
	delete(l.idx, key)
	return key, true
}

// Remove untracks key if present.
func (l *LRUEvictor) Remove(key string) {
	if el, ok := l.idx[key]; ok {
		l.ll.Remove(el)
		delete(l.idx, key)
	}
}

// Reset drops all tracked keys.
func (l *LRUEvictor) Reset() {
	l.ll.Init()
	l.idx = make(map[string]*list.Element)
}

// Len returns the number of tracked keys.
func (l *LRUEvictor) Len() int { return l.ll.Len() }
