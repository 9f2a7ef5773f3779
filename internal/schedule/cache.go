package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kedaikopi-dev/barista-roster/backend/internal/config"
	"github.com/kedaikopi-dev/barista-roster/backend/internal/domain"
)

const cacheIndexKey = "schedule:cached_ranges"

// Cache keeps the last grouped view served for each date range so reads can
// degrade gracefully when the store is unreachable. It is strictly
// best-effort: every redis failure is logged and treated as a miss, never
// propagated to the request.
type Cache struct {
	cfg *config.Config
	rdb *redis.Client
}

func NewCache(cfg *config.Config, rdb *redis.Client) *Cache {
	return &Cache{
		cfg: cfg,
		rdb: rdb,
	}
}

func rangeKey(from, to time.Time) string {
	return fmt.Sprintf("schedule:%s:%s", from.Format(DateLayout), to.Format(DateLayout))
}

func (c *Cache) opCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(c.cfg.Redis.OperationTimeout)*time.Second)
}

// Get returns the cached grouped view for the range, or (nil, false) on miss
// or any redis failure.
func (c *Cache) Get(from, to time.Time) (domain.GroupedSchedule, bool) {
	ctx, cancel := c.opCtx()
	defer cancel()

	payload, err := c.rdb.Get(ctx, rangeKey(from, to)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("schedule cache read failed", "error", err)
		}
		return nil, false
	}

	grouped := make(domain.GroupedSchedule)
	if err := json.Unmarshal(payload, &grouped); err != nil {
		slog.Warn("schedule cache entry corrupt, dropping", "error", err)
		_ = c.rdb.Del(ctx, rangeKey(from, to)).Err()
		return nil, false
	}

	return grouped, true
}

// Set stores the grouped view for the range and records the key in the range
// index so Invalidate can find it later.
func (c *Cache) Set(from, to time.Time, grouped domain.GroupedSchedule) {
	payload, err := json.Marshal(grouped)
	if err != nil {
		slog.Warn("schedule cache marshal failed", "error", err)
		return
	}

	ctx, cancel := c.opCtx()
	defer cancel()

	key := rangeKey(from, to)
	expiration := time.Duration(c.cfg.Redis.CacheExpiration) * time.Second

	if err := c.rdb.Set(ctx, key, payload, expiration).Err(); err != nil {
		slog.Warn("schedule cache write failed", "error", err)
		return
	}
	if err := c.rdb.SAdd(ctx, cacheIndexKey, key).Err(); err != nil {
		slog.Warn("schedule cache index update failed", "error", err)
	}
}

// Invalidate drops every cached range. Called after each write to the
// schedule so no reader is ever served a view older than the write.
func (c *Cache) Invalidate() {
	ctx, cancel := c.opCtx()
	defer cancel()

	keys, err := c.rdb.SMembers(ctx, cacheIndexKey).Result()
	if err != nil {
		slog.Warn("schedule cache invalidation failed", "error", err)
		return
	}

	keys = append(keys, cacheIndexKey)
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		slog.Warn("schedule cache invalidation failed", "error", err)
	}
}

// RemoveBarista rewrites every cached range with the barista id filtered out.
// Deleting a barista cascades over its assignments in the store, and this
// keeps the fallback view consistent with that cascade even if the store goes
// away immediately afterwards.
func (c *Cache) RemoveBarista(baristaID int64) {
	ctx, cancel := c.opCtx()
	defer cancel()

	keys, err := c.rdb.SMembers(ctx, cacheIndexKey).Result()
	if err != nil {
		slog.Warn("schedule cache filter failed", "error", err)
		return
	}

	for _, key := range keys {
		payload, err := c.rdb.Get(ctx, key).Bytes()
		if err != nil {
			continue
		}

		grouped := make(domain.GroupedSchedule)
		if err := json.Unmarshal(payload, &grouped); err != nil {
			_ = c.rdb.Del(ctx, key).Err()
			continue
		}

		filtered, err := json.Marshal(FilterBarista(grouped, baristaID))
		if err != nil {
			continue
		}

		expiration := time.Duration(c.cfg.Redis.CacheExpiration) * time.Second
		if err := c.rdb.Set(ctx, key, filtered, expiration).Err(); err != nil {
			slog.Warn("schedule cache filter write failed", "key", key, "error", err)
		}
	}
}
