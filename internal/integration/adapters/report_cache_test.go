package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) (*redisReportCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisReportCache(client, time.Minute).(*redisReportCache), mr
}

func TestRedisReportCache_Version(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t)

	t.Run("untouched log reads as version zero", func(t *testing.T) {
		version, err := cache.Version(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if version != 0 {
			t.Errorf("expected version 0, got %d", version)
		}
	})

	t.Run("invalidate bumps the version", func(t *testing.T) {
		if err := cache.Invalidate(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := cache.Invalidate(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		version, err := cache.Version(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if version != 2 {
			t.Errorf("expected version 2, got %d", version)
		}
	})
}

func TestRedisReportCache_GetSet(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestCache(t)

	t.Run("missing key is a miss without error", func(t *testing.T) {
		payload, ok, err := cache.Get(ctx, "absent")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok || payload != nil {
			t.Errorf("expected a miss, got ok=%v payload=%q", ok, payload)
		}
	})

	t.Run("stored payload round-trips", func(t *testing.T) {
		if err := cache.Set(ctx, "report|heatmap|v0", []byte(`{"cells":[]}`)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		payload, ok, err := cache.Get(ctx, "report|heatmap|v0")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok || string(payload) != `{"cells":[]}` {
			t.Errorf("expected the stored payload, got ok=%v payload=%q", ok, payload)
		}
	})

	t.Run("payloads carry the configured TTL", func(t *testing.T) {
		if err := cache.Set(ctx, "expiring", []byte("x")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		mr.FastForward(2 * time.Minute)

		_, ok, err := cache.Get(ctx, "expiring")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Error("expected the payload to have expired")
		}
	})

	t.Run("invalidation does not touch stored payloads", func(t *testing.T) {
		if err := cache.Set(ctx, "orphan", []byte("x")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := cache.Invalidate(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Old payloads stay until their TTL; version-keyed lookups just
		// stop finding them.
		_, ok, err := cache.Get(ctx, "orphan")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			t.Error("expected the orphaned payload to still exist")
		}
	})
}
