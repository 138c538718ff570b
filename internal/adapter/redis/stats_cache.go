package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/seo-review-backend/internal/domain"
)

const (
	statsKey = "seo-review:stats"
	genKey   = "seo-review:stats:gen"
)

// cachedStats is the stored payload. Gen is the generation the counts were
// taken in; an entry from an older generation is treated as a miss.
type cachedStats struct {
	Gen   int64              `json:"gen"`
	Stats domain.ReviewStats `json:"stats"`
}

// StatsCache keeps the collection-wide review counters for a short TTL.
//
// Every Invalidate bumps a generation counter. Get reports the current
// generation and Set tags the entry with the generation the caller read, so
// counts taken before an invalidation can never be served after it.
type StatsCache struct {
	client goredis.Cmdable
	ttl    time.Duration
}

// NewStatsCache creates a cache storing stats for ttl.
func NewStatsCache(client goredis.Cmdable, ttl time.Duration) *StatsCache {
	return &StatsCache{client: client, ttl: ttl}
}

// Get returns the cached stats and the current generation. ok is false on a
// miss; gen is valid either way and should be passed to Set.
func (c *StatsCache) Get(ctx context.Context) (stats domain.ReviewStats, gen int64, ok bool, err error) {
	vals, err := c.client.MGet(ctx, genKey, statsKey).Result()
	if err != nil {
		return domain.ReviewStats{}, 0, false, fmt.Errorf("get stats: %w", err)
	}

	if s, isStr := vals[0].(string); isStr {
		if gen, err = strconv.ParseInt(s, 10, 64); err != nil {
			return domain.ReviewStats{}, 0, false, fmt.Errorf("decode stats generation: %w", err)
		}
	}

	raw, isStr := vals[1].(string)
	if !isStr {
		return domain.ReviewStats{}, gen, false, nil
	}
	var entry cachedStats
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return domain.ReviewStats{}, gen, false, fmt.Errorf("decode stats: %w", err)
	}
	if entry.Gen != gen {
		return domain.ReviewStats{}, gen, false, nil
	}
	return entry.Stats, gen, true, nil
}

// Set stores stats counted in generation gen until the TTL expires.
func (c *StatsCache) Set(ctx context.Context, gen int64, stats domain.ReviewStats) error {
	data, err := json.Marshal(cachedStats{Gen: gen, Stats: stats})
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}
	if err := c.client.Set(ctx, statsKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("set stats: %w", err)
	}
	return nil
}

// Invalidate starts a new generation and drops the cached stats so the next
// read recounts.
func (c *StatsCache) Invalidate(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		p.Incr(ctx, genKey)
		p.Del(ctx, statsKey)
		return nil
	})
	if err != nil {
		return fmt.Errorf("invalidate stats: %w", err)
	}
	return nil
}

// Ping reports whether Redis is reachable.
func (c *StatsCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
