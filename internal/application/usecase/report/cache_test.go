package report

import (
	"context"
	"errors"
	"testing"
	"time"
)

// memoryCache is an in-process ReportCache for tests.
type memoryCache struct {
	version    int64
	versionErr error
	payloads   map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{payloads: map[string][]byte{}}
}

func (c *memoryCache) Version(ctx context.Context) (int64, error) {
	return c.version, c.versionErr
}

func (c *memoryCache) Invalidate(ctx context.Context) error {
	c.version++
	return nil
}

func (c *memoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	payload, ok := c.payloads[key]
	return payload, ok, nil
}

func (c *memoryCache) Set(ctx context.Context, key string, payload []byte) error {
	c.payloads[key] = payload
	return nil
}

func TestCacheKey(t *testing.T) {
	ctx := context.Background()

	t.Run("embeds the report name and version", func(t *testing.T) {
		cache := newMemoryCache()
		cache.version = 7

		key, ok := cacheKey(ctx, cache, "by-category", "all|q=|s=|e=")
		if !ok {
			t.Fatal("expected a usable key")
		}
		want := "report|by-category|v7|all|q=|s=|e="
		if key != want {
			t.Errorf("expected %q, got %q", want, key)
		}
	})

	t.Run("invalidation changes the key", func(t *testing.T) {
		cache := newMemoryCache()
		before, _ := cacheKey(ctx, cache, "heatmap")
		if err := cache.Invalidate(ctx); err != nil {
			t.Fatal(err)
		}
		after, _ := cacheKey(ctx, cache, "heatmap")
		if before == after {
			t.Error("expected a different key after invalidation")
		}
	})

	t.Run("nil cache disables caching", func(t *testing.T) {
		if _, ok := cacheKey(ctx, nil, "heatmap"); ok {
			t.Error("expected caching disabled without a cache")
		}
	})

	t.Run("version failure disables caching", func(t *testing.T) {
		cache := newMemoryCache()
		cache.versionErr = errors.New("connection refused")
		if _, ok := cacheKey(ctx, cache, "heatmap"); ok {
			t.Error("expected caching disabled on version failure")
		}
	})
}

func TestCacheLookupAndStore(t *testing.T) {
	ctx := context.Background()
	cache := newMemoryCache()

	type payload struct {
		Total int `json:"total"`
	}

	t.Run("miss returns false", func(t *testing.T) {
		var out payload
		if cacheLookup(ctx, cache, "missing", &out) {
			t.Error("expected a miss")
		}
	})

	t.Run("stored payload round-trips", func(t *testing.T) {
		cacheStore(ctx, cache, "k", payload{Total: 42})

		var out payload
		if !cacheLookup(ctx, cache, "k", &out) {
			t.Fatal("expected a hit")
		}
		if out.Total != 42 {
			t.Errorf("expected 42, got %d", out.Total)
		}
	})

	t.Run("corrupt payload reads as a miss", func(t *testing.T) {
		cache.payloads["bad"] = []byte("{not json")

		var out payload
		if cacheLookup(ctx, cache, "bad", &out) {
			t.Error("expected corrupt payload treated as a miss")
		}
	})
}

func TestCriteriaKey(t *testing.T) {
	t.Run("distinct criteria yield distinct keys", func(t *testing.T) {
		start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
		criteria := []FilterCriteria{
			{Range: RangeAll},
			{Range: RangeWeek},
			{Range: RangeAll, SearchTerm: "coffee"},
			{Range: RangeCustom, CustomStart: &start, CustomEnd: &end},
		}

		seen := map[string]bool{}
		for _, c := range criteria {
			key := criteriaKey(c)
			if seen[key] {
				t.Errorf("duplicate key %q", key)
			}
			seen[key] = true
		}
	})

	t.Run("search term is normalized", func(t *testing.T) {
		a := criteriaKey(FilterCriteria{Range: RangeAll, SearchTerm: "  Coffee "})
		b := criteriaKey(FilterCriteria{Range: RangeAll, SearchTerm: "coffee"})
		if a != b {
			t.Errorf("expected normalized terms to share a key, got %q and %q", a, b)
		}
	})
}
