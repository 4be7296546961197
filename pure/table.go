package pure

import "sync"

// Table is a bounded, concurrency-safe memo of computed values.
type Table[K comparable, V any] struct {
	mu      sync.RWMutex
	current map[K]V
	prev    map[K]V
	maxSize int
}

func NewTable[K comparable, V any](maxSize uint32) *Table[K, V] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	return &Table[K, V]{
		current: make(map[K]V, maxSize),
		prev:    map[K]V{},
		maxSize: int(maxSize),
	}
}

// Load looks k up in both generations. A hit in the previous generation is
// promoted so frequently used keys survive rotation.
func (t *Table[K, V]) Load(k K) (V, bool) {
	t.mu.RLock()
	v, ok := t.current[k]
	if ok {
		t.mu.RUnlock()
		return v, true
	}
	v, ok = t.prev[k]
	t.mu.RUnlock()

	if ok {
		t.Store(k, v)
	}
	return v, ok
}

func (t *Table[K, V]) Store(k K, v V) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.current[k]; !ok && len(t.current) >= t.maxSize {
		t.prev = t.current
		t.current = make(map[K]V, t.maxSize)
	}
	t.current[k] = v
}

// Len reports how many entries are held across both generations.
func (t *Table[K, V]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.current) + len(t.prev)
}
