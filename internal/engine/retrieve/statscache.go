// internal/engine/retrieve/statscache.go
package retrieve

import (
	"context"
	"strconv"
	"sync"
	"time"

	"creator-match/internal/common/logger"

	"github.com/redis/go-redis/v9"
)

const statsCacheKey = "vectorindex:stats:record_count"

// StatsCache is a time-bounded cache of the index's total corpus size. Many
// concurrent requests read it; whichever request finds its entry stale
// refreshes it. Last-writer-wins is fine since staleness only affects
// retrieval-width sizing, not correctness.
type StatsCache struct {
	index VectorIndex
	redis *redis.Client
	ttl   time.Duration
	log   logger.Logger

	mu        sync.RWMutex
	count     int
	fetchedAt time.Time
}

// NewStatsCache builds a cache over index. redisClient may be nil; the
// in-process copy then carries the whole load.
func NewStatsCache(index VectorIndex, redisClient *redis.Client, ttl time.Duration, log logger.Logger) *StatsCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &StatsCache{
		index: index,
		redis: redisClient,
		ttl:   ttl,
		log:   log.WithFields(map[string]interface{}{"component": "stats-cache"}),
	}
}

// RecordCount returns the cached corpus size, refreshing when stale.
func (c *StatsCache) RecordCount(ctx context.Context) (int, error) {
	c.mu.RLock()
	count, fetchedAt := c.count, c.fetchedAt
	c.mu.RUnlock()

	if !fetchedAt.IsZero() && time.Since(fetchedAt) < c.ttl {
		return count, nil
	}

	if c.redis != nil {
		if val, err := c.redis.Get(ctx, statsCacheKey).Result(); err == nil {
			if n, convErr := strconv.Atoi(val); convErr == nil && n > 0 {
				c.store(n)
				return n, nil
			}
		}
	}

	stats, err := c.index.Stats(ctx)
	if err != nil {
		// Serve the stale value if we ever had one.
		if !fetchedAt.IsZero() {
			c.log.Warn("stats refresh failed, serving stale count", map[string]interface{}{
				"error": err.Error(),
				"count": count,
			})
			return count, nil
		}
		return 0, err
	}

	c.store(stats.RecordCount)

	if c.redis != nil {
		if err := c.redis.Set(ctx, statsCacheKey, strconv.Itoa(stats.RecordCount), c.ttl).Err(); err != nil {
			c.log.Debug("failed to cache stats in redis", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return stats.RecordCount, nil
}

func (c *StatsCache) store(count int) {
	c.mu.Lock()
	c.count = count
	c.fetchedAt = time.Now()
	c.mu.Unlock()
}
