// Package cache provides a generic, thread-safe LRU cache.
//
// It memoizes pure computations such as merged class lists, where the same
// inputs recur on every render and memory must stay bounded.
//
//	c := cache.NewLRUCache[string, string](512)
//	merged := c.GetOrCompute(classes, merge)
//
//	s := c.Stats() // hits, misses, evictions
//
// Get marks an entry as recently used, Peek does not. When Put exceeds the
// capacity the least recently used entry is evicted and the callback set with
// SetEvictCallback is invoked. Clear and Remove invoke the callback as well.
//
// All operations are O(1) except Keys and Clear.
package cache
