package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "skillscan/internal/errors"
)

// RedisConfig configures the Redis-backed session store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
	Breaker  BreakerConfig
}

// RedisStore persists sessions in Redis so replicas share state. All
// calls go through a circuit breaker; when Redis is unhealthy the breaker
// fails fast instead of stacking timeouts.
type RedisStore struct {
	client  *redis.Client
	ttl     time.Duration
	breaker *StoreBreaker
}

const redisKeyPrefix = "skillscan:session:"

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, cfg RedisConfig, logger *apperrors.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, apperrors.NewSessionError(
			apperrors.ErrCodeSessionStore,
			fmt.Sprintf("failed to connect to redis at %s", cfg.Addr),
			err,
		).WithContext("addr", cfg.Addr)
	}

	return &RedisStore{
		client:  client,
		ttl:     cfg.TTL,
		breaker: NewStoreBreaker("session-redis", cfg.Breaker, logger),
	}, nil
}

func (r *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	data, err := r.breaker.Execute(func() ([]byte, error) {
		data, err := r.client.Get(ctx, redisKeyPrefix+id).Bytes()
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return data, err
	})
	if err != nil {
		if err == ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, storeError("failed to load session", id, err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, storeError("failed to decode session", id, err)
	}
	return &s, nil
}

func (r *RedisStore) Put(ctx context.Context, s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return storeError("failed to encode session", s.ID, err)
	}

	_, err = r.breaker.Execute(func() ([]byte, error) {
		return nil, r.client.Set(ctx, redisKeyPrefix+s.ID, data, r.ttl).Err()
	})
	if err != nil {
		return storeError("failed to store session", s.ID, err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	_, err := r.breaker.Execute(func() ([]byte, error) {
		return nil, r.client.Del(ctx, redisKeyPrefix+id).Err()
	})
	if err != nil {
		return storeError("failed to delete session", id, err)
	}
	return nil
}

func (r *RedisStore) Count(ctx context.Context) (int, error) {
	var count int
	_, err := r.breaker.Execute(func() ([]byte, error) {
		var cursor uint64
		for {
			keys, next, err := r.client.Scan(ctx, cursor, redisKeyPrefix+"*", 100).Result()
			if err != nil {
				return nil, err
			}
			count += len(keys)
			cursor = next
			if cursor == 0 {
				return nil, nil
			}
		}
	})
	if err != nil {
		return 0, storeError("failed to count sessions", "", err)
	}
	return count, nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}

// BreakerStats exposes the store's circuit breaker state.
func (r *RedisStore) BreakerStats() map[string]any {
	return r.breaker.Stats()
}

func storeError(message, id string, cause error) error {
	err := apperrors.NewSessionError(apperrors.ErrCodeSessionStore, message, cause)
	if id != "" {
		err = err.WithContext("session_id", id)
	}
	return err
}
