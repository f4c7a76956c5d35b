package localstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/dawarpower/internal/profile"

	"github.com/go-redis/redis/v8"
)

// keyPrefix keeps the coach keys apart from the rate limiter's keys in the
// same redis database.
const keyPrefix = "coach::"

type RedisStorage struct {
	redisClient *redis.Client
}

func NewRedisStorage(redisClient *redis.Client) *RedisStorage {
	return &RedisStorage{
		redisClient: redisClient,
	}
}

func (rs *RedisStorage) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := rs.redisClient.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, profile.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return raw, nil
}

func (rs *RedisStorage) Set(ctx context.Context, key string, value []byte) error {
	if err := rs.redisClient.Set(ctx, keyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (rs *RedisStorage) Delete(ctx context.Context, key string) error {
	if err := rs.redisClient.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

// Close is a no-op, the client is shared and closed by its owner.
func (rs *RedisStorage) Close() error {
	return nil
}
