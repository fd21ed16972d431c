package pure_test

import (
	"sync"
	"testing"

	"github.com/on-the-ground/utilkit/pure"
	"github.com/stretchr/testify/assert"
)

func TestTrie_BasicUsage(t *testing.T) {
	trie := pure.NewTrie[string](4)

	trie.Store([]pure.ComparableOrString{"a", "b", "c"}, "final")

	val, ok := trie.Load([]pure.ComparableOrString{"a", "b", "c"})
	assert.True(t, ok)
	assert.Equal(t, "final", val)

	_, ok = trie.Load([]pure.ComparableOrString{"a", "b", "x"})
	assert.False(t, ok)

	// a prefix is not a stored key
	_, ok = trie.Load([]pure.ComparableOrString{"a", "b"})
	assert.False(t, ok)

	trie.Store([]pure.ComparableOrString{"a", "b", "c"}, "updated")
	val, ok = trie.Load([]pure.ComparableOrString{"a", "b", "c"})
	assert.True(t, ok)
	assert.Equal(t, "updated", val)
}

func TestTrie_EmptyKeysPanics(t *testing.T) {
	trie := pure.NewTrie[int](2)
	assert.Panics(t, func() { trie.Load([]pure.ComparableOrString{}) })
	assert.Panics(t, func() { trie.Store(nil, 1) })
}

func TestTrie_ZeroSizePanics(t *testing.T) {
	assert.Panics(t, func() { pure.NewTrie[int](0) })
}

func TestTrie_ConcurrentAccess(t *testing.T) {
	trie := pure.NewTrie[int](8)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				keys := []pure.ComparableOrString{g, i}
				trie.Store(keys, i)
				if v, ok := trie.Load(keys); ok {
					assert.Equal(t, i, v)
				}
			}
		}(g)
	}
	wg.Wait()
}
