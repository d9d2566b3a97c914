// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"fmt"
	"time"
)

// PageCache stores rendered public careers page payloads keyed by
// company slug. Any change to a company, its sections or its jobs
// invalidates that company's entries.
type PageCache struct {
	cache Cache
	ttl   time.Duration
}

// NewPageCache wraps a cache backend for public page payloads.
func NewPageCache(backend Cache, ttl time.Duration) *PageCache {
	return &PageCache{cache: backend, ttl: ttl}
}

func pageKey(slug string) string {
	return "page:" + slug
}

func jobsKey(slug string) string {
	return "jobs:" + slug
}

// GetPage returns the cached page payload for a slug, or ErrCacheMiss.
func (c *PageCache) GetPage(ctx context.Context, slug string) ([]byte, error) {
	return c.cache.Get(ctx, pageKey(slug))
}

// SetPage caches the rendered page payload for a slug.
func (c *PageCache) SetPage(ctx context.Context, slug string, payload []byte) error {
	return c.cache.Set(ctx, pageKey(slug), payload, c.ttl)
}

// GetJobs returns the cached unfiltered job directory payload for a slug.
// Filtered directory requests bypass the cache.
func (c *PageCache) GetJobs(ctx context.Context, slug string) ([]byte, error) {
	return c.cache.Get(ctx, jobsKey(slug))
}

// SetJobs caches the unfiltered job directory payload for a slug.
func (c *PageCache) SetJobs(ctx context.Context, slug string, payload []byte) error {
	return c.cache.Set(ctx, jobsKey(slug), payload, c.ttl)
}

// Invalidate drops all cached payloads for a slug.
func (c *PageCache) Invalidate(ctx context.Context, slug string) error {
	if err := c.cache.Delete(ctx, pageKey(slug)); err != nil {
		return fmt.Errorf("invalidating page cache for %q: %w", slug, err)
	}
	if err := c.cache.Delete(ctx, jobsKey(slug)); err != nil {
		return fmt.Errorf("invalidating jobs cache for %q: %w", slug, err)
	}
	return nil
}
