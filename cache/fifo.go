package cache

import (
	"container/list"
	"sync"
)

// FIFO is a capacity-bounded store with insertion-order eviction. When a new
// key would exceed capacity, the oldest-inserted entry is removed. Unlike an
// LRU, a Get does not move an entry; only insertion order matters.
//
// The read/insert/evict sequence is a single critical section, so the bounded
// size holds under concurrent use.
type FIFO struct {
	mu        sync.Mutex
	capacity  int
	entries   map[Key]*list.Element
	order     *list.List // front = oldest inserted
	hits      uint64
	misses    uint64
	evictions uint64
}

type fifoEntry struct {
	key    Key
	result bool
}

// New creates a FIFO store with the given capacity. A non-positive capacity
// falls back to DefaultCapacity.
func New(capacity int) *FIFO {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &FIFO{
		capacity: capacity,
		entries:  make(map[Key]*list.Element, capacity),
		order:    list.New(),
	}
}

// Get retrieves a memoized result. Returns (false, false) on miss.
func (c *FIFO) Get(key Key) (bool, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		c.misses++
		return false, false
	}
	c.hits++
	return elem.Value.(*fifoEntry).result, true
}

// Set stores a result. An existing key keeps its insertion position; a new
// key evicts the oldest-inserted entry first when the store is at capacity.
func (c *FIFO) Set(key Key, result bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		elem.Value.(*fifoEntry).result = result
		return
	}

	if c.order.Len() >= c.capacity {
		c.evictOldest()
	}

	c.entries[key] = c.order.PushBack(&fifoEntry{key: key, result: result})
}

// evictOldest removes the oldest-inserted entry. Caller must hold mu.
func (c *FIFO) evictOldest() {
	elem := c.order.Front()
	if elem == nil {
		return
	}
	c.order.Remove(elem)
	delete(c.entries, elem.Value.(*fifoEntry).key)
	c.evictions++
}

// Len returns the current number of entries.
func (c *FIFO) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Capacity returns the entry limit.
func (c *FIFO) Capacity() int {
	return c.capacity
}

// Stats returns a snapshot of the store's counters.
func (c *FIFO) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		Entries:   len(c.entries),
	}
}

// Reset clears all entries and counters.
func (c *FIFO) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[Key]*list.Element, c.capacity)
	c.order = list.New()
	c.hits = 0
	c.misses = 0
	c.evictions = 0
}

// Ensure FIFO implements Store
var _ Store = (*FIFO)(nil)
