package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache TTLs. Trend data only changes when a new run is saved, so short
// TTLs are enough to absorb dashboard refresh bursts.
const (
	RunsCacheTTL    = time.Minute
	SamplesCacheTTL = 5 * time.Minute
)

// CacheService provides a Redis cache-aside layer for the dashboard read
// side (run list and per-channel sample history).
type CacheService struct {
	rdb *redis.Client

	// Optional hooks for cache hit/miss metrics.
	OnHit  func()
	OnMiss func()
}

// NewCacheService creates a CacheService. If redisURL is empty or the
// connection fails, the returned service has a nil client and every
// operation becomes a no-op.
func NewCacheService(redisURL string) *CacheService {
	if redisURL == "" {
		log.Println("redis: no URL configured, caching disabled")
		return &CacheService{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("redis: invalid URL %q, caching disabled: %v", redisURL, err)
		return &CacheService{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis: connection failed, caching disabled: %v", err)
		return &CacheService{}
	}

	log.Println("redis: connected, caching enabled")
	return &CacheService{rdb: rdb}
}

// Client returns the underlying Redis client (for health checks). May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

// Get retrieves a cached value into out. Returns false on miss or when the
// cache is disabled.
func (c *CacheService) Get(ctx context.Context, key string, out any) bool {
	if c.rdb == nil {
		return false
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		c.miss()
		return false
	}
	if err != nil {
		log.Printf("cache: get %s error: %v", key, err)
		c.miss()
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		c.miss()
		return false
	}
	c.hit()
	return true
}

// Set stores a value under the key with the given TTL.
func (c *CacheService) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	if c.rdb == nil {
		return
	}
	b, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, b, ttl).Err(); err != nil {
		log.Printf("cache: set %s error: %v", key, err)
	}
}

// InvalidateRuns drops the cached run list (called after a run is saved).
func (c *CacheService) InvalidateRuns(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, RunsKey()).Err(); err != nil {
		log.Printf("cache: invalidate runs error: %v", err)
	}
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func (c *CacheService) hit() {
	if c.OnHit != nil {
		c.OnHit()
	}
}

func (c *CacheService) miss() {
	if c.OnMiss != nil {
		c.OnMiss()
	}
}

// RunsKey is the cache key for the run list.
func RunsKey() string {
	return "runs"
}

// SamplesKey is the cache key for one channel's sample history.
func SamplesKey(channelID string) string {
	return fmt.Sprintf("channel_samples:%s", channelID)
}

// TrendKey is the cache key for one channel's aggregated trend series.
func TrendKey(channelID string) string {
	return fmt.Sprintf("channel_trend:%s", channelID)
}
