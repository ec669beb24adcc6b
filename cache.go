// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texlayout

import (
	"hash/maphash"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gogpu/texlayout/internal/lru"
)

const (
	// cacheShardCount must be a power of two.
	cacheShardCount = 16
	cacheShardMask  = cacheShardCount - 1

	// DefaultShardCapacity is the default number of layouts per shard.
	DefaultShardCapacity = 64
)

// CacheOption configures a Cache.
//
// Example:
//
//	c := texlayout.NewCache(texlayout.WithShardCapacity(256))
type CacheOption func(*cacheOptions)

type cacheOptions struct {
	capacity int
	logger   *slog.Logger
}

// WithShardCapacity sets the number of layouts kept per shard. The cache
// holds up to 16 times as many. Values <= 0 select DefaultShardCapacity.
func WithShardCapacity(n int) CacheOption {
	return func(o *cacheOptions) {
		o.capacity = n
	}
}

// WithCacheLogger sets the logger for cache evictions. By default the
// package logger (see SetLogger) is used.
func WithCacheLogger(l *slog.Logger) CacheOption {
	return func(o *cacheOptions) {
		o.logger = l
	}
}

// CacheStats is a snapshot of cache counters.
type CacheStats struct {
	Len       int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// HitRate returns hits / (hits + misses), or 0 before the first lookup.
func (s CacheStats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

type cacheKey struct {
	req         Request
	explicit    ExplicitLayout
	hasExplicit bool
}

type cacheEntry struct {
	layout ImageLayout
	node   *lru.Node[cacheKey]
}

type cacheShard struct {
	mu      sync.Mutex
	entries map[cacheKey]*cacheEntry
	lru     lru.List[cacheKey]
}

// Cache memoizes successful Init results. Drivers re-create images with
// identical parameters constantly; a hit costs one hash and one map lookup.
// Failed requests are not cached.
//
// Cache is safe for concurrent use.
type Cache struct {
	shards   [cacheShardCount]cacheShard
	seed     maphash.Seed
	capacity int
	logger   *slog.Logger

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// NewCache creates an empty layout cache.
func NewCache(opts ...CacheOption) *Cache {
	o := cacheOptions{capacity: DefaultShardCapacity}
	for _, opt := range opts {
		opt(&o)
	}
	if o.capacity <= 0 {
		o.capacity = DefaultShardCapacity
	}

	c := &Cache{
		seed:     maphash.MakeSeed(),
		capacity: o.capacity,
		logger:   o.logger,
	}
	for i := range c.shards {
		c.shards[i].entries = make(map[cacheKey]*cacheEntry)
	}
	return c
}

func (c *Cache) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return Logger()
}

func (c *Cache) shard(k cacheKey) *cacheShard {
	return &c.shards[maphash.Comparable(c.seed, k)&cacheShardMask]
}

// Init is like the package-level Init but returns a cached layout when an
// identical request was laid out before. The returned layout is a private
// copy.
func (c *Cache) Init(req Request, explicit *ExplicitLayout) (ImageLayout, error) {
	k := cacheKey{req: req}
	if explicit != nil {
		k.explicit, k.hasExplicit = *explicit, true
	}
	s := c.shard(k)

	s.mu.Lock()
	if e, ok := s.entries[k]; ok {
		s.lru.MoveToFront(e.node)
		l := e.layout.Clone()
		s.mu.Unlock()
		c.hits.Add(1)
		return l, nil
	}
	s.mu.Unlock()
	c.misses.Add(1)

	// Layout runs unlocked; a concurrent miss for the same key computes an
	// identical value and the second insert is a no-op.
	l, err := Init(req, explicit)
	if err != nil {
		return ImageLayout{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[k]; ok {
		return l, nil
	}
	for s.lru.Len() >= c.capacity {
		old, ok := s.lru.RemoveOldest()
		if !ok {
			break
		}
		delete(s.entries, old)
		c.evictions.Add(1)
		c.log().Debug("texlayout: cache eviction",
			slog.String("modifier", old.req.Modifier.String()),
			slog.String("format", old.req.Format.String()))
	}
	s.entries[k] = &cacheEntry{layout: l.Clone(), node: s.lru.PushFront(k)}
	return l, nil
}

// Len returns the number of cached layouts.
func (c *Cache) Len() int {
	n := 0
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.Lock()
		n += len(s.entries)
		s.mu.Unlock()
	}
	return n
}

// Capacity returns the maximum number of cached layouts.
func (c *Cache) Capacity() int {
	return c.capacity * cacheShardCount
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() CacheStats {
	return CacheStats{
		Len:       c.Len(),
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}

// Clear drops every cached layout. Counters are kept.
func (c *Cache) Clear() {
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.Lock()
		clear(s.entries)
		s.lru.Clear()
		s.mu.Unlock()
	}
}
