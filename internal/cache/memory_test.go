package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newTestCache() *MemoryCache {
	return NewMemoryCache(MemoryCacheOptions{
		DefaultTTL: time.Minute,
	})
}

func TestMemoryCacheSetGet(t *testing.T) {
	c := newTestCache()
	defer c.Close()
	ctx := context.Background()

	if err := c.Set(ctx, "key", []byte("value"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "value" {
		t.Errorf("Get = %q, want %q", got, "value")
	}
}

func TestMemoryCacheMiss(t *testing.T) {
	c := newTestCache()
	defer c.Close()

	_, err := c.Get(context.Background(), "missing")
	if !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Get error = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := newTestCache()
	defer c.Close()
	ctx := context.Background()

	if err := c.Set(ctx, "key", []byte("value"), time.Millisecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	_, err := c.Get(ctx, "key")
	if !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Get error = %v, want ErrCacheMiss after TTL", err)
	}
}

func TestMemoryCacheDelete(t *testing.T) {
	c := newTestCache()
	defer c.Close()
	ctx := context.Background()

	_ = c.Set(ctx, "key", []byte("value"), 0)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := c.Get(ctx, "key"); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Get after Delete = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCacheClear(t *testing.T) {
	c := newTestCache()
	defer c.Close()
	ctx := context.Background()

	_ = c.Set(ctx, "a", []byte("1"), 0)
	_ = c.Set(ctx, "b", []byte("2"), 0)
	if err := c.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := c.Get(ctx, "a"); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Get after Clear = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCacheClosed(t *testing.T) {
	c := newTestCache()
	_ = c.Close()

	ctx := context.Background()
	if _, err := c.Get(ctx, "key"); !errors.Is(err, ErrCacheClosed) {
		t.Errorf("Get after Close = %v, want ErrCacheClosed", err)
	}
	if err := c.Set(ctx, "key", nil, 0); !errors.Is(err, ErrCacheClosed) {
		t.Errorf("Set after Close = %v, want ErrCacheClosed", err)
	}
}

func TestMemoryCacheReturnsCopy(t *testing.T) {
	c := newTestCache()
	defer c.Close()
	ctx := context.Background()

	_ = c.Set(ctx, "key", []byte("abc"), 0)
	got, _ := c.Get(ctx, "key")
	got[0] = 'X'

	again, _ := c.Get(ctx, "key")
	if string(again) != "abc" {
		t.Errorf("cached value mutated to %q", again)
	}
}

func TestPageCacheInvalidate(t *testing.T) {
	backend := newTestCache()
	defer backend.Close()
	pc := NewPageCache(backend, time.Minute)
	ctx := context.Background()

	if err := pc.SetPage(ctx, "acme", []byte(`{"company":"acme"}`)); err != nil {
		t.Fatalf("SetPage: %v", err)
	}
	if err := pc.SetJobs(ctx, "acme", []byte(`[]`)); err != nil {
		t.Fatalf("SetJobs: %v", err)
	}
	if err := pc.SetPage(ctx, "other", []byte(`{"company":"other"}`)); err != nil {
		t.Fatalf("SetPage: %v", err)
	}

	if err := pc.Invalidate(ctx, "acme"); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}

	if _, err := pc.GetPage(ctx, "acme"); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("GetPage after Invalidate = %v, want ErrCacheMiss", err)
	}
	if _, err := pc.GetJobs(ctx, "acme"); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("GetJobs after Invalidate = %v, want ErrCacheMiss", err)
	}
	if _, err := pc.GetPage(ctx, "other"); err != nil {
		t.Errorf("unrelated slug evicted: %v", err)
	}
}
