package otp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"afyalinks/internal/service/auth"
)

const keyPrefix = "otp:"

// Store keeps one pending code per phone number in redis. The TTL doubles
// as the code's expiry, nothing has to reap stale entries.
type Store struct {
	client *redis.Client
}

func New(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

func (s *Store) Set(ctx context.Context, phone, code string, ttl time.Duration) error {
	if err := s.client.Set(ctx, keyPrefix+phone, code, ttl).Err(); err != nil {
		return fmt.Errorf("unexpected otp store set error: %w", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, phone string) (string, error) {
	code, err := s.client.Get(ctx, keyPrefix+phone).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", auth.ErrOTPExpired
		}
		return "", fmt.Errorf("unexpected otp store get error: %w", err)
	}
	return code, nil
}

func (s *Store) Delete(ctx context.Context, phone string) error {
	if err := s.client.Del(ctx, keyPrefix+phone).Err(); err != nil {
		return fmt.Errorf("unexpected otp store delete error: %w", err)
	}
	return nil
}
