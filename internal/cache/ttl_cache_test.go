package cache

import (
	"testing"
	"time"
)

func TestGetSet(t *testing.T) {
	c := New[string, int](time.Minute)

	if _, ok := c.Get("missing"); ok {
		t.Error("empty cache should miss")
	}

	c.Set("answer", 42)
	got, ok := c.Get("answer")
	if !ok || got != 42 {
		t.Errorf("Get(answer) = %d, %v; want 42, true", got, ok)
	}

	if _, ok := c.Get("other"); ok {
		t.Error("absent key should miss even in a fresh cache")
	}
}

func TestExpiration(t *testing.T) {
	c := New[string, string](10 * time.Millisecond)

	c.Set("k", "v")
	if c.IsExpired() {
		t.Error("cache should be fresh right after Set")
	}

	time.Sleep(20 * time.Millisecond)
	if !c.IsExpired() {
		t.Error("cache should expire after the TTL")
	}
	if _, ok := c.Get("k"); ok {
		t.Error("expired cache must miss")
	}

	// A new Set revives the whole cache.
	c.Set("k", "v2")
	got, ok := c.Get("k")
	if !ok || got != "v2" {
		t.Errorf("Get after revive = %q, %v; want v2, true", got, ok)
	}
}

func TestNewCacheStartsExpired(t *testing.T) {
	c := New[string, int](time.Hour)
	if !c.IsExpired() {
		t.Error("a never-written cache reads as expired")
	}
}

func TestInvalidate(t *testing.T) {
	c := New[string, int](time.Hour)
	c.Set("a", 1)
	c.Set("b", 2)

	c.Invalidate()

	if !c.IsExpired() {
		t.Error("cache should read as expired after Invalidate")
	}
	if _, ok := c.Get("a"); ok {
		t.Error("invalidated entries must miss")
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d after Invalidate, want 0", c.Len())
	}
}

func TestLen(t *testing.T) {
	c := New[int, string](time.Hour)
	for i := 0; i < 5; i++ {
		c.Set(i, "x")
	}
	if c.Len() != 5 {
		t.Errorf("Len() = %d, want 5", c.Len())
	}
	c.Set(0, "y")
	if c.Len() != 5 {
		t.Errorf("Len() after overwrite = %d, want 5", c.Len())
	}
}
