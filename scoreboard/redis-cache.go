package scoreboard

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ctforge/backend/logger"
	"github.com/redis/go-redis/v9"
)

const snapshotCacheKey = "scoreboard:snapshot"

// A short TTL keeps the cached copy near-realtime even if an invalidation
// is lost.
const snapshotCacheTTL = 15 * time.Second

// RedisCache is the Redis-backed SnapshotCache. Cache failures are logged
// and reported as misses, so a cold or unreachable Redis only costs
// latency.
type RedisCache struct {
	rdb *redis.Client
}

func NewRedisCache(rdb *redis.Client) *RedisCache {
	return &RedisCache{rdb: rdb}
}

func (c *RedisCache) Get(ctx context.Context) (*Snapshot, bool) {
	val, err := c.rdb.Get(ctx, snapshotCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.FromContext(ctx).Warn("scoreboard cache read failed", "error", err)
		}
		return nil, false
	}
	var snap Snapshot
	if err := json.Unmarshal(val, &snap); err != nil {
		return nil, false
	}
	return &snap, true
}

func (c *RedisCache) Set(ctx context.Context, snap *Snapshot) {
	val, err := json.Marshal(snap)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, snapshotCacheKey, val, snapshotCacheTTL).Err(); err != nil {
		logger.FromContext(ctx).Warn("scoreboard cache write failed", "error", err)
	}
}

func (c *RedisCache) Invalidate(ctx context.Context) {
	if err := c.rdb.Del(ctx, snapshotCacheKey).Err(); err != nil {
		logger.FromContext(ctx).Warn("scoreboard cache invalidation failed", "error", err)
	}
}
