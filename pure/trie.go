package pure

import (
	"sync"
	"sync/atomic"
)

// Trie is a bounded, concurrency-safe table keyed by sequences of keys.
// Each key level is a nested sync.Map.
type Trie[O any] struct {
	memos   [2]atomic.Pointer[sync.Map]
	headIdx atomic.Uint32
	size    atomic.Uint32
	maxSize uint32
	rotate  sync.Mutex
}

// NewTrie creates a Trie that rotates generations every maxSize stores.
func NewTrie[O any](maxSize uint32) *Trie[O] {
	if maxSize == 0 {
		panic("pure: maxSize should be greater than 0")
	}
	t := &Trie[O]{maxSize: maxSize}
	t.memos[0].Store(&sync.Map{})
	t.memos[1].Store(&sync.Map{})
	return t
}

// Load looks keys up in the active generation, then in the previous one.
func (t *Trie[O]) Load(keys []ComparableOrString) (O, bool) {
	if len(keys) == 0 {
		panic("pure: empty keys")
	}
	head := t.headIdx.Load()
	for _, idx := range [2]uint32{head, 1 - head} {
		if v, ok := lookup(t.memos[idx].Load(), keys); ok {
			return v.(O), true
		}
	}
	var zero O
	return zero, false
}

// Store records value under keys in the active generation.
func (t *Trie[O]) Store(keys []ComparableOrString, value O) {
	if len(keys) == 0 {
		panic("pure: empty keys")
	}
	if t.size.Add(1) > t.maxSize {
		t.rotate.Lock()
		if t.size.Load() > t.maxSize {
			old := 1 - t.headIdx.Load()
			t.memos[old].Store(&sync.Map{})
			t.headIdx.Store(old)
			t.size.Store(1)
		}
		t.rotate.Unlock()
	}
	m := t.memos[t.headIdx.Load()].Load()
	for _, k := range keys[:len(keys)-1] {
		v, _ := m.LoadOrStore(k, &sync.Map{})
		m = v.(*sync.Map)
	}
	m.Store(keys[len(keys)-1], value)
}

func lookup(m *sync.Map, keys []ComparableOrString) (any, bool) {
	last := len(keys) - 1
	for _, k := range keys[:last] {
		v, ok := m.Load(k)
		if !ok {
			return nil, false
		}
		m = v.(*sync.Map)
	}
	return m.Load(keys[last])
}
