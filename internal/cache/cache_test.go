package cache

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestMemoryCacheSetGet(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()
	if _, ok, _ := c.Get(ctx, "missing"); ok {
		t.Fatalf("expected miss")
	}
	if err := c.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := c.Get(ctx, "k")
	if err != nil || !ok || string(v) != "v" {
		t.Fatalf("expected hit, got %q %v %v", v, ok, err)
	}
}

func TestMemoryCacheExpires(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 2, 15, 10, 0, 0, 0, time.UTC)
	c := NewMemory()
	c.now = func() time.Time { return now }
	_ = c.Set(ctx, "k", []byte("v"), time.Minute)

	now = now.Add(59 * time.Second)
	if _, ok, _ := c.Get(ctx, "k"); !ok {
		t.Fatalf("expected hit before expiry")
	}
	now = now.Add(time.Second)
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Fatalf("expected miss at expiry")
	}
	st, _ := c.Status(ctx)
	if st.Entries != 0 || st.Backend != "memory" {
		t.Fatalf("unexpected status %+v", st)
	}
}

func TestMemoryCacheDeleteAndClear(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()
	_ = c.Set(ctx, "a", []byte("1"), time.Minute)
	_ = c.Set(ctx, "b", []byte("2"), time.Minute)
	_ = c.Delete(ctx, "a")
	if st, _ := c.Status(ctx); st.Entries != 1 {
		t.Fatalf("expected 1 entry, got %d", st.Entries)
	}
	_ = c.Clear(ctx)
	if st, _ := c.Status(ctx); st.Entries != 0 {
		t.Fatalf("expected empty cache, got %d", st.Entries)
	}
}

func TestMemoryCacheCopiesValues(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()
	buf := []byte("abc")
	_ = c.Set(ctx, "k", buf, time.Minute)
	buf[0] = 'x'
	v, _, _ := c.Get(ctx, "k")
	if string(v) != "abc" {
		t.Fatalf("expected stored copy, got %q", v)
	}
}

func TestNoopCacheNeverHits(t *testing.T) {
	ctx := context.Background()
	c := NewNoop()
	_ = c.Set(ctx, "k", []byte("v"), time.Minute)
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Fatalf("expected noop miss")
	}
}

func TestRedisCacheRoundTrip(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}
	ctx := context.Background()
	c, err := NewRedis(url, "test-dashboard:")
	if err != nil {
		t.Fatalf("new redis: %v", err)
	}
	defer c.Close()
	if err := c.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}
	_ = c.Clear(ctx)

	if err := c.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := c.Get(ctx, "k")
	if err != nil || !ok || string(v) != "v" {
		t.Fatalf("expected hit, got %q %v %v", v, ok, err)
	}
	st, err := c.Status(ctx)
	if err != nil || st.Entries != 1 {
		t.Fatalf("unexpected status %+v %v", st, err)
	}
	if err := c.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Fatalf("expected miss after clear")
	}
}
