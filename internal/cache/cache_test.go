// Questlog - Game Playtime and Achievement Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/questlog

package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

// newTestCache returns a cache driven by a manual clock.
func newTestCache[V any](t *testing.T, ttl time.Duration) (*Cache[V], *time.Time) {
	t.Helper()
	c := New[V](ttl)
	t.Cleanup(c.Close)

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	return c, &now
}

func TestCacheBasicOperations(t *testing.T) {
	c, _ := newTestCache[string](t, time.Minute)

	c.Set("key1", "value1")
	value, exists := c.Get("key1")
	if !exists {
		t.Error("Expected key1 to exist")
	}
	if value != "value1" {
		t.Errorf("Expected value1, got %v", value)
	}

	if _, exists := c.Get("key2"); exists {
		t.Error("Expected key2 to not exist")
	}
}

func TestCacheExpiration(t *testing.T) {
	c, now := newTestCache[int](t, time.Minute)

	c.Set("key1", 1)
	if _, exists := c.Get("key1"); !exists {
		t.Fatal("Expected key1 to exist immediately after set")
	}

	*now = now.Add(61 * time.Second)
	if _, exists := c.Get("key1"); exists {
		t.Error("Expected key1 to be expired")
	}

	stats := c.GetStats()
	if stats.Evictions != 1 || stats.TotalKeys != 0 {
		t.Errorf("stats after expiry = %+v", stats)
	}
}

func TestCacheClear(t *testing.T) {
	c, _ := newTestCache[string](t, time.Minute)

	c.Set("key1", "value1")
	c.Set("key2", "value2")
	c.Set("key3", "value3")

	c.Clear()
	for _, key := range []string{"key1", "key2", "key3"} {
		if _, exists := c.Get(key); exists {
			t.Errorf("Expected %s to be cleared", key)
		}
	}

	stats := c.GetStats()
	if stats.Evictions != 3 || stats.TotalKeys != 0 {
		t.Errorf("stats = %+v, want 3 evictions and 0 keys", stats)
	}
}

func TestCacheCleanup(t *testing.T) {
	c, now := newTestCache[int](t, time.Minute)

	c.Set("a", 1)
	*now = now.Add(50 * time.Second)
	c.Set("b", 2)
	*now = now.Add(20 * time.Second)

	c.cleanup()

	stats := c.GetStats()
	if stats.TotalKeys != 1 || stats.Evictions != 1 {
		t.Errorf("stats after cleanup = %+v, want 1 key and 1 eviction", stats)
	}
	if !stats.LastCleanup.Equal(*now) {
		t.Errorf("LastCleanup = %v, want %v", stats.LastCleanup, *now)
	}
}

func TestCacheHitRate(t *testing.T) {
	c, _ := newTestCache[int](t, time.Minute)

	if rate := c.GetStats().HitRate(); rate != 0 {
		t.Errorf("HitRate() on empty cache = %v, want 0", rate)
	}

	c.Set("k", 1)
	c.Get("k")
	c.Get("k")
	c.Get("k")
	c.Get("missing")

	if rate := c.GetStats().HitRate(); rate != 75 {
		t.Errorf("HitRate() = %v, want 75", rate)
	}
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := New[int](time.Minute)
	defer c.Close()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("key-%d-%d", id, j%10)
				c.Set(key, j)
				c.Get(key)
				if j%25 == 0 {
					c.Clear()
				}
			}
		}(i)
	}
	wg.Wait()
}

func TestCacheCloseIsIdempotent(t *testing.T) {
	c := New[string](time.Minute)
	c.Close()
	c.Close()
}

func TestCacheSetIfGeneration(t *testing.T) {
	c, _ := newTestCache[string](t, time.Minute)

	gen := c.Generation()
	if !c.SetIfGeneration("cards", "fresh", gen) {
		t.Fatal("SetIfGeneration() with current generation = false")
	}

	stale := c.Generation()
	c.Clear()
	if c.Generation() == stale {
		t.Fatal("Clear() did not advance the generation")
	}
	if c.SetIfGeneration("cards", "stale", stale) {
		t.Error("SetIfGeneration() stored a value loaded before Clear()")
	}
	if _, ok := c.Get("cards"); ok {
		t.Error("stale value is cached after Clear()")
	}
}
