// Package storage 将分发上下文保存到 Redis，使重启后的 watcher 不会重复通知。
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/palemoky/holdem-watch/internal/dispatch"
)

const (
	// Redis key 前缀
	contextKeyPrefix = "watch:ctx:"

	// DefaultExpiration 上下文默认过期时间
	DefaultExpiration = 6 * time.Hour
)

// RedisStore Redis 存储
type RedisStore struct {
	client     *redis.Client
	expiration time.Duration
}

// NewRedisStore 创建 Redis 存储，expiration <= 0 时使用默认过期时间
func NewRedisStore(client *redis.Client, expiration time.Duration) *RedisStore {
	if expiration <= 0 {
		expiration = DefaultExpiration
	}
	return &RedisStore{client: client, expiration: expiration}
}

// SaveContext 保存会话上下文
func (rs *RedisStore) SaveContext(ctx context.Context, sessionID string, c *dispatch.Context) error {
	if c == nil {
		return nil
	}

	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("序列化会话上下文失败: %w", err)
	}

	return rs.client.Set(ctx, contextKeyPrefix+sessionID, data, rs.expiration).Err()
}

// LoadContext 加载会话上下文，不存在时返回 nil, nil
func (rs *RedisStore) LoadContext(ctx context.Context, sessionID string) (*dispatch.Context, error) {
	data, err := rs.client.Get(ctx, contextKeyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var c dispatch.Context
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("反序列化会话上下文失败: %w", err)
	}
	return &c, nil
}

// DeleteContext 删除会话上下文
func (rs *RedisStore) DeleteContext(ctx context.Context, sessionID string) error {
	return rs.client.Del(ctx, contextKeyPrefix+sessionID).Err()
}

// ListSessions 获取所有已保存上下文的会话 ID
func (rs *RedisStore) ListSessions(ctx context.Context) ([]string, error) {
	var (
		cursor uint64
		ids    []string
	)
	for {
		keys, next, err := rs.client.Scan(ctx, cursor, contextKeyPrefix+"*", 100).Result()
		if err != nil {
			return nil, err
		}
		for _, key := range keys {
			ids = append(ids, key[len(contextKeyPrefix):])
		}
		if next == 0 {
			return ids, nil
		}
		cursor = next
	}
}

// Ping 检查 Redis 连接
func (rs *RedisStore) Ping(ctx context.Context) error {
	return rs.client.Ping(ctx).Err()
}
