package isabsolute

import (
	"context"
	"fmt"
	"sync"

	"github.com/jdmiranda/is-absolute-url/cache"
	"github.com/jdmiranda/is-absolute-url/observe"
)

// Classifier decides whether strings are absolute URLs, memoizing results in
// a bounded store.
//
// Contract:
// - Concurrency: safe for concurrent use when its store is.
// - Purity: for a fixed (input, policy) pair the result is identical across
//   calls, whether served from the store or recomputed.
// - Errors: classification itself never fails; only the dynamic Classify
//   entry point can return an error.
type Classifier struct {
	store   cache.Store
	metrics observe.Metrics
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithCacheSize bounds the memoization store to n entries. Non-positive
// values fall back to cache.DefaultCapacity.
func WithCacheSize(n int) Option {
	return func(c *Classifier) {
		c.store = cache.New(n)
	}
}

// WithCache injects a memoization store, for sharing one store across
// classifiers or supplying a different implementation.
func WithCache(s cache.Store) Option {
	return func(c *Classifier) {
		c.store = s
	}
}

// WithoutCache disables memoization; every check recomputes.
func WithoutCache() Option {
	return func(c *Classifier) {
		c.store = nil
	}
}

// WithMetrics records check outcomes to the given recorder.
func WithMetrics(m observe.Metrics) Option {
	return func(c *Classifier) {
		c.metrics = m
	}
}

// New creates a Classifier with a store of cache.DefaultCapacity entries
// unless options say otherwise.
func New(opts ...Option) *Classifier {
	c := &Classifier{store: cache.New(cache.DefaultCapacity)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsAbsolute reports whether input is an absolute http(s) URL. It is
// shorthand for Check(input, PolicyHTTPOnly).
func (c *Classifier) IsAbsolute(input string) bool {
	return c.Check(input, PolicyHTTPOnly)
}

// Check reports whether input is an absolute URL under the given policy.
func (c *Classifier) Check(input string, policy Policy) bool {
	if c.store == nil {
		result := classify(input, policy)
		c.record(policy, result, false)
		return result
	}

	key := cache.Key{Input: input, Policy: uint8(policy)}
	if result, ok := c.store.Get(key); ok {
		c.record(policy, result, true)
		return result
	}

	result := classify(input, policy)
	c.store.Set(key, result)
	c.record(policy, result, false)
	return result
}

// Classify is the dynamic entry point for callers holding an any (decoded
// JSON, reflection). It returns ErrInvalidInput, naming the concrete type
// received, when v is not a string.
func (c *Classifier) Classify(v any, policy Policy) (bool, error) {
	s, ok := v.(string)
	if !ok {
		return false, fmt.Errorf("%w: got %T", ErrInvalidInput, v)
	}
	return c.Check(s, policy), nil
}

// CacheStats returns the memoization store's counters. The second return
// value is false when the store is absent or does not expose stats.
func (c *Classifier) CacheStats() (cache.Stats, bool) {
	f, ok := c.store.(*cache.FIFO)
	if !ok {
		return cache.Stats{}, false
	}
	return f.Stats(), true
}

func (c *Classifier) record(policy Policy, absolute, cached bool) {
	if c.metrics == nil {
		return
	}
	c.metrics.RecordCheck(context.Background(), policy.String(), absolute, cached)
}

// defaultClassifier backs the package-level functions. It is built lazily
// and lives for the process lifetime, giving the package-level API one
// shared memoization store.
var defaultClassifier = sync.OnceValue(func() *Classifier {
	return New()
})

// IsAbsolute reports whether input is an absolute http(s) URL, using a
// shared process-wide classifier.
func IsAbsolute(input string) bool {
	return defaultClassifier().IsAbsolute(input)
}

// Check reports whether input is an absolute URL under the given policy,
// using a shared process-wide classifier.
func Check(input string, policy Policy) bool {
	return defaultClassifier().Check(input, policy)
}

// Classify is the dynamic counterpart of Check on the shared classifier.
func Classify(v any, policy Policy) (bool, error) {
	return defaultClassifier().Classify(v, policy)
}
