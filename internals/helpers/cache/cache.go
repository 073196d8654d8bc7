// Package cache is a small JSON cache over Redis. A nil client turns every call into a miss.
package cache

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-redis/redis/v8"

	"ucentric_backend/internals/helpers/applog"
	"ucentric_backend/internals/middlewares/metrics"
)

type Cache struct {
	rdb    *redis.Client
	prefix string
}

// Connect parses REDIS_URL and pings once; empty url gives a disabled cache.
func Connect(ctx context.Context, url, prefix string) (*Cache, error) {
	if strings.TrimSpace(url) == "" {
		applog.Log.Info("[CACHE] REDIS_URL not set, cache disabled")
		return New(nil, prefix), nil
	}
	opt, err := redis.ParseURL(url)
	if err != nil {
		return New(nil, prefix), err
	}
	rdb := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return New(nil, prefix), err
	}
	applog.Log.Info("[CACHE] redis connected")
	return New(rdb, prefix), nil
}

func New(rdb *redis.Client, prefix string) *Cache {
	return &Cache{rdb: rdb, prefix: prefix}
}

func (c *Cache) Enabled() bool { return c != nil && c.rdb != nil }

func (c *Cache) key(k string) string {
	if c.prefix == "" {
		return k
	}
	return c.prefix + ":" + k
}

// GetJSON decodes the cached value into dst. found=false on miss, disabled cache or redis error.
func (c *Cache) GetJSON(ctx context.Context, key string, dst any) bool {
	if !c.Enabled() {
		return false
	}
	raw, err := c.rdb.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			applog.WithContext(ctx).WithError(err).WithField("key", key).Warn("[CACHE] get failed")
		}
		metrics.CacheLookups.WithLabelValues(key, "miss").Inc()
		return false
	}
	if err := sonic.Unmarshal(raw, dst); err != nil {
		applog.WithContext(ctx).WithError(err).WithField("key", key).Warn("[CACHE] corrupt entry")
		metrics.CacheLookups.WithLabelValues(key, "miss").Inc()
		return false
	}
	metrics.CacheLookups.WithLabelValues(key, "hit").Inc()
	return true
}

func (c *Cache) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) {
	if !c.Enabled() {
		return
	}
	raw, err := sonic.Marshal(v)
	if err != nil {
		applog.WithContext(ctx).WithError(err).WithField("key", key).Warn("[CACHE] encode failed")
		return
	}
	if err := c.rdb.Set(ctx, c.key(key), raw, ttl).Err(); err != nil {
		applog.WithContext(ctx).WithError(err).WithField("key", key).Warn("[CACHE] set failed")
	}
}

func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if !c.Enabled() || len(keys) == 0 {
		return
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = c.key(k)
	}
	if err := c.rdb.Del(ctx, full...).Err(); err != nil {
		applog.WithContext(ctx).WithError(err).Warn("[CACHE] delete failed")
	}
}

// Remember returns the cached value or calls load and stores its result.
func Remember[T any](ctx context.Context, c *Cache, key string, ttl time.Duration, load func(context.Context) (T, error)) (T, error) {
	var v T
	if c.GetJSON(ctx, key, &v) {
		return v, nil
	}
	v, err := load(ctx)
	if err != nil {
		return v, err
	}
	c.SetJSON(ctx, key, v, ttl)
	return v, nil
}

func (c *Cache) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.rdb.Close()
}

// Shared keys; writers of the underlying tables invalidate them.
const (
	KeyMasterData = "master-data"
	KeyCareers    = "careers"
)
