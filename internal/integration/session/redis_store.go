// Package session implements the refresh token session store.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/finance-academy/backend/internal/application/adapter"
)

// redisStore implements adapter.SessionStore on Redis keys with a TTL.
type redisStore struct {
	client *redis.Client
}

// NewRedisStore creates a session store backed by Redis.
func NewRedisStore(client *redis.Client) adapter.SessionStore {
	return &redisStore{client: client}
}

// SetToken stores the key with the user ID as value.
func (s *redisStore) SetToken(ctx context.Context, key string, userID uuid.UUID, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, userID.String(), ttl).Err(); err != nil {
		return fmt.Errorf("failed to set session %s: %w", key, err)
	}
	return nil
}

// GetToken reads the owner of the key.
func (s *redisStore) GetToken(ctx context.Context, key string) (uuid.UUID, bool, error) {
	value, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("failed to get session %s: %w", key, err)
	}

	userID, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("corrupt session %s: %w", key, err)
	}
	return userID, true, nil
}

// ClearToken deletes the key.
func (s *redisStore) ClearToken(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to clear session %s: %w", key, err)
	}
	return nil
}

// NewRedisClient parses a redis:// URL and verifies the server answers PING.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}
