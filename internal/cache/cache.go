package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache keys for the upstream collections the front-end re-serves.
const (
	KeyItems     = "items"
	KeyMensagens = "mensagens"
	KeyEvento    = "evento"
	KeyStats     = "stats"
)

const keyPrefix = "nkw:cache:%s"

// Redis is a read-through cache over go-redis. Values are stored as JSON
// with a single TTL; guest lookups are never cached here because stats
// must be recomputed wholesale on every refresh.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}

func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func (r *Redis) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	val, err := r.client.Get(ctx, fmt.Sprintf(keyPrefix, key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("get %s from redis: %w", key, err)
	}

	if err := json.Unmarshal([]byte(val), out); err != nil {
		return false, fmt.Errorf("unmarshal cached %s: %w", key, err)
	}
	return true, nil
}

func (r *Redis) SetJSON(ctx context.Context, key string, val any) error {
	b, err := json.Marshal(val)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}

	if err := r.client.Set(ctx, fmt.Sprintf(keyPrefix, key), b, r.ttl).Err(); err != nil {
		return fmt.Errorf("set %s in redis: %w", key, err)
	}
	return nil
}

func (r *Redis) Invalidate(ctx context.Context, keys ...string) error {
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = fmt.Sprintf(keyPrefix, k)
	}

	if err := r.client.Del(ctx, full...).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("invalidate cache keys: %w", err)
	}
	return nil
}

// Noop serves every read as a miss. Used when redis is disabled and in
// tests that exercise the upstream path directly.
type Noop struct{}

func (Noop) GetJSON(ctx context.Context, key string, out any) (bool, error) { return false, nil }
func (Noop) SetJSON(ctx context.Context, key string, val any) error         { return nil }
func (Noop) Invalidate(ctx context.Context, keys ...string) error           { return nil }
