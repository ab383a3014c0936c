package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisKV 基于 Redis 的键值存储，GET/SET 单个键
type RedisKV struct {
	client *redis.Client
}

// NewRedisKV 创建 Redis 键值存储
func NewRedisKV(client *redis.Client) *RedisKV {
	return &RedisKV{client: client}
}

func (r *RedisKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return value, true, nil
}

func (r *RedisKV) Set(ctx context.Context, key string, value []byte) error {
	// 不设置 TTL，过期由管理器的惰性清理负责
	return r.client.Set(ctx, key, value, 0).Err()
}
