package server

import (
	"sync"

	"github.com/zeebo/xxh3"

	"github.com/katalvlaran/hillclimb/solve"
)

// resultCache maps the xxh3 hash of a request body to its solve.Answer.
// When full, an arbitrary entry is evicted. A size of zero disables it.
type resultCache struct {
	mu      sync.Mutex
	size    int
	entries map[uint64]solve.Answer
}

func newResultCache(size int) *resultCache {
	return &resultCache{size: size, entries: make(map[uint64]solve.Answer, size)}
}

func cacheKey(body []byte) uint64 {
	return xxh3.Hash(body)
}

func (c *resultCache) get(key uint64) (solve.Answer, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	a, ok := c.entries[key]
	return a, ok
}

func (c *resultCache) put(key uint64, a solve.Answer) {
	if c.size <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[key]; !ok && len(c.entries) >= c.size {
		for k := range c.entries {
			delete(c.entries, k)
			break
		}
	}
	c.entries[key] = a
}

func (c *resultCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
