package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shopdarven/storefront/internal/config"
)

const scanBatchSize = 100

// deleteIfValueScript compares and deletes in one round trip so no other writer can slip in between.
const deleteIfValueScript = `if redis.call("GET", KEYS[1]) == ARGV[1] then return redis.call("DEL", KEYS[1]) end return 0`

type redisCache struct {
	client redis.UniversalClient
	cfg    *config.CacheConfig
}

func NewRedisCache(client redis.UniversalClient, cfg *config.CacheConfig) Cache {
	return &redisCache{
		client: client,
		cfg:    cfg,
	}
}

func (r *redisCache) ttl(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return r.cfg.DefaultTTL
	}

	return ttl
}

func (r *redisCache) Get(ctx context.Context, key string, value any) (bool, error) {

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {

		if errors.Is(err, redis.Nil) {
			return false, nil
		}

		return false, fmt.Errorf("failed to get key %s from redis: %w", key, err)

	}

	if err := json.Unmarshal(data, value); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache data for key %s: %w", key, err)
	}

	return true, nil
}

func (r *redisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}

	if err := r.client.Set(ctx, key, data, r.ttl(ttl)).Err(); err != nil {
		return fmt.Errorf("failed to set key %s in redis: %w", key, err)
	}

	return nil

}

func (r *redisCache) SetNX(ctx context.Context, key string, value any, ttl time.Duration) (bool, error) {

	data, err := json.Marshal(value)
	if err != nil {
		return false, fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}

	ok, err := r.client.SetNX(ctx, key, data, r.ttl(ttl)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to setnx key %s in redis: %w", key, err)
	}

	return ok, nil
}

func (r *redisCache) Delete(ctx context.Context, key string) error {

	err := r.client.Del(ctx, key).Err()
	if err != nil {
		return fmt.Errorf("failed to delete key %s from redis: %w", key, err)
	}

	return nil

}

func (r *redisCache) DeleteIfValue(ctx context.Context, key string, value any) (bool, error) {

	data, err := json.Marshal(value)
	if err != nil {
		return false, fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}

	deleted, err := r.client.Eval(ctx, deleteIfValueScript, []string{key}, string(data)).Int64()
	if err != nil {
		return false, fmt.Errorf("failed to conditionally delete key %s from redis: %w", key, err)
	}

	return deleted == 1, nil
}

// DeleteByPrefix removes every key under prefix. SCAN keeps the server responsive on large keyspaces.
func (r *redisCache) DeleteByPrefix(ctx context.Context, prefix string) error {

	match := prefix + ":*"

	var cursor uint64

	for {
		keys, next, err := r.client.Scan(ctx, cursor, match, scanBatchSize).Result()
		if err != nil {
			return fmt.Errorf("failed to scan keys %s in redis: %w", match, err)
		}

		if len(keys) > 0 {
			if err := r.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("failed to delete keys %s from redis: %w", match, err)
			}
		}

		if next == 0 {
			return nil
		}

		cursor = next
	}
}

func (r *redisCache) Close() error {
	return nil
}
