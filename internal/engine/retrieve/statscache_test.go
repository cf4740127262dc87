// internal/engine/retrieve/statscache_test.go
package retrieve

import (
	"context"
	"errors"
	"testing"
	"time"

	"creator-match/internal/common/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func setupRedis(t *testing.T) *redis.Client {
	mr, err := miniredis.Run()
	assert.NoError(t, err)
	t.Cleanup(mr.Close)

	return redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
}

func TestStatsCache_FreshValueServedInProcess(t *testing.T) {
	index := &fakeIndex{stats: IndexStats{RecordCount: 120}}
	cache := NewStatsCache(index, nil, time.Minute, logger.NewTestLogger(t))

	count, err := cache.RecordCount(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 120, count)
	assert.Equal(t, 1, index.statsCalls)

	count, err = cache.RecordCount(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 120, count)
	assert.Equal(t, 1, index.statsCalls, "fresh entry must not hit the index again")
}

func TestStatsCache_RedisHitSkipsIndex(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectGet("vectorindex:stats:record_count").SetVal("250")

	index := &fakeIndex{stats: IndexStats{RecordCount: 999}}
	cache := NewStatsCache(index, client, time.Minute, logger.NewTestLogger(t))

	count, err := cache.RecordCount(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 250, count)
	assert.Equal(t, 0, index.statsCalls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsCache_RedisMissRefreshesFromIndex(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectGet("vectorindex:stats:record_count").RedisNil()
	mock.ExpectSet("vectorindex:stats:record_count", "120", time.Minute).SetVal("OK")

	index := &fakeIndex{stats: IndexStats{RecordCount: 120}}
	cache := NewStatsCache(index, client, time.Minute, logger.NewTestLogger(t))

	count, err := cache.RecordCount(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 120, count)
	assert.Equal(t, 1, index.statsCalls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsCache_ServesStaleOnRefreshFailure(t *testing.T) {
	index := &fakeIndex{stats: IndexStats{RecordCount: 80}}
	cache := NewStatsCache(index, nil, time.Nanosecond, logger.NewTestLogger(t))

	count, err := cache.RecordCount(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 80, count)

	time.Sleep(time.Millisecond)
	index.statsErr = errors.New("index down")

	count, err = cache.RecordCount(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 80, count)
}

func TestStatsCache_ErrorWithoutPriorValue(t *testing.T) {
	index := &fakeIndex{statsErr: errors.New("index down")}
	cache := NewStatsCache(index, nil, time.Minute, logger.NewTestLogger(t))

	_, err := cache.RecordCount(context.Background())
	assert.Error(t, err)
}

func TestStatsCache_SharedAcrossInstancesViaRedis(t *testing.T) {
	client := setupRedis(t)

	first := &fakeIndex{stats: IndexStats{RecordCount: 340}}
	cache := NewStatsCache(first, client, time.Minute, logger.NewTestLogger(t))

	count, err := cache.RecordCount(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 340, count)
	assert.Equal(t, 1, first.statsCalls)

	// A second instance sharing the same Redis picks up the cached
	// count without touching the index.
	second := &fakeIndex{stats: IndexStats{RecordCount: 999}}
	other := NewStatsCache(second, client, time.Minute, logger.NewTestLogger(t))

	count, err = other.RecordCount(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 340, count)
	assert.Equal(t, 0, second.statsCalls)
}
