package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultRedisPrefix = "studeaf:"

	// VerificationTTL bounds how long a password change verification token
	// survives in redis.
	VerificationTTL = 10 * time.Minute
)

// RedisStore keeps the session in redis so several terminals can share one
// login.
type RedisStore struct {
	client *redis.Client
	prefix string
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore wraps an existing client. An empty prefix uses "studeaf:".
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	return &RedisStore{client: client, prefix: prefix}
}

// OpenRedisStore parses url, connects and pings.
func OpenRedisStore(ctx context.Context, url string) (*RedisStore, error) {
	if url == "" {
		return nil, errors.New("redis url is empty")
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return NewRedisStore(client, ""), nil
}

func (s *RedisStore) Token(ctx context.Context) (string, error) {
	v, _, err := s.Get(ctx, KeyToken)
	return v, err
}

func (s *RedisStore) SetToken(ctx context.Context, token string) error {
	return s.Set(ctx, KeyToken, token)
}

func (s *RedisStore) ClearToken(ctx context.Context) error {
	return s.Delete(ctx, KeyToken)
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return v, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	var ttl time.Duration
	if key == KeyVerificationToken {
		ttl = VerificationTTL
	}
	if err := s.client.Set(ctx, s.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

// SetMany uses a MULTI/EXEC pipeline so the values land together.
func (s *RedisStore) SetMany(ctx context.Context, values map[string]string) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for k, v := range values {
			var ttl time.Duration
			if k == KeyVerificationToken {
				ttl = VerificationTTL
			}
			pipe.Set(ctx, s.prefix+k, v, ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to set %d values: %w", len(values), err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = s.prefix + k
	}
	if err := s.client.Del(ctx, full...).Err(); err != nil {
		return fmt.Errorf("failed to delete %v: %w", keys, err)
	}
	return nil
}

// DeletePrefix scans rather than using KEYS so large databases are not
// blocked.
func (s *RedisStore) DeletePrefix(ctx context.Context, prefix string) error {
	iter := s.client.Scan(ctx, 0, s.prefix+prefix+"*", 100).Iterator()
	var batch []string
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan %s*: %w", prefix, err)
	}
	if len(batch) == 0 {
		return nil
	}
	if err := s.client.Del(ctx, batch...).Err(); err != nil {
		return fmt.Errorf("failed to delete %s*: %w", prefix, err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
