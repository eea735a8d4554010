package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/GreatJeff90/bookstore/internal/repository"

	"github.com/redis/go-redis/v9"
)

// RedisStore はプロフィールごとにRedisのハッシュ1つを使う。
// キー: <prefix>profile:<profileID>、フィールド: cart / currentUser
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) hashKey(profileID string) string {
	return s.prefix + "profile:" + profileID
}

func (s *RedisStore) GetItem(ctx context.Context, profileID string, key string) (string, error) {
	v, err := s.client.HGet(ctx, s.hashKey(profileID), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", repository.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis hget: %w", err)
	}
	return v, nil
}

func (s *RedisStore) SetItem(ctx context.Context, profileID string, key string, value string) error {
	if err := s.client.HSet(ctx, s.hashKey(profileID), key, value).Err(); err != nil {
		return fmt.Errorf("redis hset: %w", err)
	}
	return nil
}

func (s *RedisStore) RemoveItem(ctx context.Context, profileID string, key string) error {
	if err := s.client.HDel(ctx, s.hashKey(profileID), key).Err(); err != nil {
		return fmt.Errorf("redis hdel: %w", err)
	}
	return nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

var _ repository.Storage = (*RedisStore)(nil)
