// Package cache provides the result cache implementations behind the
// aigen.Cache contract: a Redis-backed store for deployments and an
// in-memory map for single-instance or test use. Both are best-effort;
// every failure degrades to a cache miss.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/quybuiquang/skill-quest-cafe/internal/aigen"
)

func NewRedisClient(addr, pass string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: pass,
		DB:       db,
	})
}

func Ping(ctx context.Context, c *redis.Client) error {
	return c.Ping(ctx).Err()
}

// Redis stores generation results as JSON values with a server-side TTL,
// so expired entries disappear without any sweeping on our side.
type Redis struct {
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

func NewRedis(rdb *redis.Client, ttl time.Duration, log *zap.Logger) *Redis {
	if log == nil {
		log = zap.NewNop()
	}
	return &Redis{rdb: rdb, ttl: ttl, log: log}
}

func (r *Redis) Get(ctx context.Context, key string) (*aigen.GenerationResult, bool) {
	val, err := r.rdb.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			r.log.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	var res aigen.GenerationResult
	if err := json.Unmarshal([]byte(val), &res); err != nil {
		r.log.Warn("cache entry corrupt, dropping", zap.String("key", key), zap.Error(err))
		r.rdb.Del(ctx, key)
		return nil, false
	}
	return &res, true
}

func (r *Redis) Put(ctx context.Context, key string, res *aigen.GenerationResult) {
	b, err := json.Marshal(res)
	if err != nil {
		r.log.Warn("cache marshal failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := r.rdb.Set(ctx, key, b, r.ttl).Err(); err != nil {
		r.log.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}
