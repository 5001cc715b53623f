package cache

// DefaultCapacity is the entry limit used when no capacity is specified.
const DefaultCapacity = 1000

// Key identifies a memoized classification result. Two checks of the same
// input under different policies are distinct entries.
type Key struct {
	Input  string
	Policy uint8
}

// Store is the interface for memoizing classification results.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Purity: a Store only speeds up lookups; it must never be the source of
//   truth for a result it was not given.
// - Errors: Get never errors; it returns (false, false) on miss.
type Store interface {
	// Get retrieves a memoized result. The second return value reports
	// whether the key was present.
	Get(key Key) (bool, bool)

	// Set stores a result, evicting the oldest-inserted entry if the store
	// is at capacity.
	Set(key Key, result bool)

	// Len returns the current number of entries.
	Len() int
}

// Stats holds cumulative counters for a store.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Entries   int
}
