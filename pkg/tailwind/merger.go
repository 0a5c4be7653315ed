package tailwind

import (
	"strings"
	"sync"
	"sync/atomic"

	"github.com/Oudwins/tailwind-merge-go/pkg/twmerge"

	"github.com/carbon-eel/eel/pkg/cache"
)

// DefaultCacheSize is the number of merged class lists kept in memory.
const DefaultCacheSize = 512

// MergeFunc resolves conflicts in a class list.
type MergeFunc func(classes ...string) string

// Merger merges Tailwind classes and memoizes the results.
// It is safe for concurrent use.
type Merger struct {
	cache       *cache.LRUCache[string, string]
	configFiles []string
	custom      bool

	mu      sync.RWMutex
	merge   MergeFunc
	flushes atomic.Int64
}

// MergerOption configures a Merger.
type MergerOption func(*Merger)

// WithCacheSize sets the number of memoized results. Non-positive sizes are ignored.
func WithCacheSize(size int) MergerOption {
	return func(m *Merger) {
		if size > 0 {
			m.cache = cache.NewLRUCache[string, string](size)
		}
	}
}

// WithMergeFunc replaces the conflict resolver. Configuration files are
// ignored for a custom resolver.
func WithMergeFunc(fn MergeFunc) MergerOption {
	return func(m *Merger) {
		if fn != nil {
			m.merge = fn
			m.custom = true
		}
	}
}

// WithConfigFiles sets the files and directories Load reads the merge
// configuration from. See LoadConfig.
func WithConfigFiles(paths ...string) MergerOption {
	return func(m *Merger) {
		m.configFiles = paths
	}
}

// NewMerger creates a Merger backed by tailwind-merge-go with its default
// configuration. Call Load to apply configuration files.
func NewMerger(opts ...MergerOption) *Merger {
	m := &Merger{}
	for _, opt := range opts {
		opt(m)
	}
	if m.merge == nil {
		m.merge = newMergeFunc(twmerge.MakeDefaultConfig())
	}
	if m.cache == nil {
		m.cache = cache.NewLRUCache[string, string](DefaultCacheSize)
	}
	return m
}

// Load rebuilds the conflict resolver from the configuration files.
// On error the current resolver stays active.
func (m *Merger) Load() error {
	if m.custom || len(m.configFiles) == 0 {
		return nil
	}
	cfg, err := LoadConfig(m.configFiles...)
	if err != nil {
		return err
	}
	conf, err := cfg.Build()
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.merge = newMergeFunc(conf)
	m.mu.Unlock()
	return nil
}

// Merge joins the class lists and removes classes overridden by later ones.
func (m *Merger) Merge(classes ...string) string {
	key := strings.Join(strings.Fields(strings.Join(classes, " ")), " ")
	if key == "" {
		return ""
	}
	return m.cache.GetOrCompute(key, func(k string) string {
		m.mu.RLock()
		merge := m.merge
		m.mu.RUnlock()
		return merge(k)
	})
}

// Flush reloads the configuration files and drops every memoized result.
// The cache is cleared even when reloading fails.
func (m *Merger) Flush() error {
	err := m.Load()
	m.cache.Clear()
	m.flushes.Add(1)
	return err
}

// Cached returns the number of memoized results.
func (m *Merger) Cached() int {
	return m.cache.Len()
}

// Stats returns the memoization counters.
func (m *Merger) Stats() cache.Stats {
	return m.cache.Stats()
}

// Flushes returns how often the cache was flushed.
func (m *Merger) Flushes() int64 {
	return m.flushes.Load()
}

// newMergeFunc builds a resolver for conf. Results are memoized by Merger,
// so the library cache is disabled.
func newMergeFunc(conf *twmerge.TwMergeConfig) MergeFunc {
	merge := twmerge.CreateTwMerge(conf, noCache{})
	return func(classes ...string) string {
		list := strings.Join(classes, " ")
		return inputOrder(list, merge(list))
	}
}

// inputOrder lists the classes of merged in the order they appear in input.
func inputOrder(input, merged string) string {
	kept := make(map[string]int)
	for _, c := range strings.Fields(merged) {
		kept[c]++
	}
	out := make([]string, 0, len(kept))
	for _, c := range strings.Fields(input) {
		if kept[c] > 0 {
			kept[c]--
			out = append(out, c)
		}
	}
	return strings.Join(out, " ")
}

type noCache struct{}

func (noCache) Get(string) string  { return "" }
func (noCache) Set(string, string) {}
