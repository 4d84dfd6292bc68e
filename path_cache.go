// Created by dhawalhost (2025-11-11 11:03:57)
package vjson

import "sync"

// maxCachedPaths bounds the compiled-plan cache.
const maxCachedPaths = 64

type cacheEntry struct {
	path     *CompiledPath
	lastUsed uint64
}

// pathCache is an LRU of compiled plans keyed by expression text. Every hit
// stamps the entry with a monotonic tick; overflow evicts the entry with the
// smallest stamp. Go has no per-thread storage, so unlike a thread-local
// cache this one is shared and mutex-guarded.
type pathCache struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
	clock   uint64
}

var defaultPathCache = pathCache{entries: make(map[string]*cacheEntry, maxCachedPaths)}

// compiledPathFor returns the cached plan for expr, compiling on a miss.
// Compile failures are returned without being cached. Repeated lookups of a
// live entry return the identical *CompiledPath.
func compiledPathFor(expr string) (*CompiledPath, error) {
	return defaultPathCache.get(expr)
}

func (c *pathCache) get(expr string) (*CompiledPath, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clock++
	if e, ok := c.entries[expr]; ok {
		e.lastUsed = c.clock
		return e.path, nil
	}
	compiled, err := CompilePath(expr)
	if err != nil {
		return nil, err
	}
	c.entries[expr] = &cacheEntry{path: compiled, lastUsed: c.clock}
	if len(c.entries) > maxCachedPaths {
		c.evictOldest()
	}
	return compiled, nil
}

func (c *pathCache) evictOldest() {
	var oldestKey string
	var oldest uint64
	first := true
	for k, e := range c.entries {
		if first || e.lastUsed < oldest {
			first = false
			oldest = e.lastUsed
			oldestKey = k
		}
	}
	if !first {
		delete(c.entries, oldestKey)
	}
}

func (c *pathCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
