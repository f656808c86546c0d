// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pocket-ledger/backend/internal/application/adapter"
)

// versionKey holds the monotonically increasing log version. Every mutation
// to transactions, accounts or categories bumps it, which changes the key
// of every subsequently computed report and lets stale entries expire.
const versionKey = "pocket-ledger:report-version"

// payloadPrefix namespaces the cached report payloads.
const payloadPrefix = "pocket-ledger:report:"

// redisReportCache implements the adapter.ReportCache interface on redis.
type redisReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisReportCache creates a new redis-backed report cache instance.
func NewRedisReportCache(client *redis.Client, ttl time.Duration) adapter.ReportCache {
	return &redisReportCache{
		client: client,
		ttl:    ttl,
	}
}

// Version returns the current log version counter. A missing key reads as
// zero, the version of an untouched log.
func (c *redisReportCache) Version(ctx context.Context) (int64, error) {
	version, err := c.client.Get(ctx, versionKey).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	return version, nil
}

// Invalidate bumps the log version, orphaning all cached payloads. The
// orphans are reclaimed by their TTL.
func (c *redisReportCache) Invalidate(ctx context.Context) error {
	return c.client.Incr(ctx, versionKey).Err()
}

// Get retrieves a cached payload.
func (c *redisReportCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, payloadPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return payload, true, nil
}

// Set stores a payload under the given key with the configured TTL.
func (c *redisReportCache) Set(ctx context.Context, key string, payload []byte) error {
	return c.client.Set(ctx, payloadPrefix+key, payload, c.ttl).Err()
}
