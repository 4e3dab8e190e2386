package partition

import "sync"

// The memo table is the only process-wide mutable state in lvlayout.
// Keys are (length, budget) pairs; values are complete evolved sets,
// immutable once inserted and shared by reference across calls and
// goroutines. The table never shrinks.
//
// No lock is held while an entry is computed: concurrent misses on the
// same key may compute twice, but cacheInsert keeps the first published
// value so every caller observes one canonical slice.

type cacheKey struct {
	length int
	budget int
}

var (
	cacheMu sync.RWMutex
	cache   = make(map[cacheKey][]*Node)
)

// cacheLookup returns the memoized evolved set for (length, budget).
func cacheLookup(length, budget int) ([]*Node, bool) {
	cacheMu.RLock()
	trees, ok := cache[cacheKey{length, budget}]
	cacheMu.RUnlock()

	return trees, ok
}

// cacheInsert publishes trees for (length, budget) and returns the
// canonical value: the already-present slice if another writer won.
func cacheInsert(length, budget int, trees []*Node) []*Node {
	key := cacheKey{length, budget}

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if existing, ok := cache[key]; ok {
		return existing
	}
	cache[key] = trees

	return trees
}
