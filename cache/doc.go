// Package cache provides the bounded memoization store backing URL
// classification.
//
// It maps (input string, policy) pairs to previously computed boolean
// results. The store is capacity-bounded and evicts the oldest-inserted
// entry first; reads never refresh an entry's position.
package cache
