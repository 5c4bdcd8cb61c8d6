package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const redisKeyPrefix = "dashboard:session:"

// RedisStore хранит слоты сессий в Redis с TTL
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func slotKey(sessionID, slot string) string {
	return fmt.Sprintf("%s%s:%s", redisKeyPrefix, sessionID, slot)
}

func (s *RedisStore) Get(ctx context.Context, sessionID, slot string) (string, error) {
	val, err := s.client.Get(ctx, slotKey(sessionID, slot)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrSlotNotFound
		}
		return "", fmt.Errorf("%w: Get: %v", ErrExecQuery, err)
	}
	return val, nil
}

func (s *RedisStore) Set(ctx context.Context, sessionID, slot, value string) error {
	if err := s.client.Set(ctx, slotKey(sessionID, slot), value, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set: %v", ErrExecQuery, err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	keys := []string{slotKey(sessionID, SlotToken), slotKey(sessionID, SlotUser)}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("%w: Clear: %v", ErrExecQuery, err)
	}
	return nil
}
