package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

type Config struct {
	Addr     string
	Password string
	DB       int
}

// RedisClient wraps go-redis with small JSON helpers. Callers treat the
// cache as best-effort and keep working when it is unavailable.
type RedisClient struct {
	Client *redis.Client
}

func NewRedisClient(cfg *Config) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "redis ping")
	}

	return &RedisClient{Client: client}, nil
}

// GetJSON loads key into dest. The bool reports whether the key was found.
func (r *RedisClient) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	val, err := r.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "redis get")
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, errors.Wrap(err, "cache unmarshal")
	}
	return true, nil
}

func (r *RedisClient) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "cache marshal")
	}
	return errors.Wrap(r.Client.Set(ctx, key, data, ttl).Err(), "redis set")
}

func (r *RedisClient) Delete(ctx context.Context, keys ...string) error {
	return errors.Wrap(r.Client.Del(ctx, keys...).Err(), "redis del")
}

func (r *RedisClient) Close() error {
	return r.Client.Close()
}
