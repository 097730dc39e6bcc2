// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lpath

package lpath

import (
	"log/slog"
	"sync"
)

// patternCache stores compiled whole-path patterns by source text.
//
// The cache is bounded; when full it is dropped as a whole.
type patternCache struct {
	// entries maps pattern source to its compiled form or pending compilation.
	entries map[string]*cachedPattern
	// logger receives reset records.
	logger *slog.Logger
	// limit is the maximum number of entries.
	limit int

	// mu guards entries.
	mu sync.Mutex
}

// cachedPattern is one compiled pattern or a compilation in progress.
type cachedPattern struct {
	// pattern is nil while loading.
	pattern *PathPattern
	// loading reports whether another goroutine is compiling the pattern.
	loading bool
	// wg coordinates concurrent waiters for one compilation.
	wg sync.WaitGroup
}

// newPatternCache creates a cache holding at most limit patterns.
func newPatternCache(limit int, logger *slog.Logger) *patternCache {
	return &patternCache{
		entries: make(map[string]*cachedPattern, min(limit, 64)),
		logger:  logger,
		limit:   limit,
	}
}

// get returns the cached pattern for source or compiles it once.
func (c *patternCache) get(source string, compile func() *PathPattern) *PathPattern {
	c.mu.Lock()
	cached, ok := c.entries[source]
	if ok {
		loading := cached.loading
		c.mu.Unlock()
		if loading {
			cached.wg.Wait()
		}

		return cached.pattern
	}

	if len(c.entries) >= c.limit {
		c.logger.Debug("pattern cache reset", slog.Int("entries", len(c.entries)))
		c.entries = make(map[string]*cachedPattern, min(c.limit, 64))
	}

	cached = &cachedPattern{
		loading: true,
	}
	cached.wg.Add(1)
	c.entries[source] = cached
	c.mu.Unlock()

	pattern := compile()

	c.mu.Lock()
	cached.pattern = pattern
	cached.loading = false
	cached.wg.Done()
	c.mu.Unlock()

	return pattern
}

// len returns the number of cached entries.
func (c *patternCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}
