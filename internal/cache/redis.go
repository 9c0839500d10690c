package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/Domenick1991/airport-service/config"
	"github.com/Domenick1991/airport-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client     redis.UniversalClient
	flightsTTL time.Duration
	tokensTTL  time.Duration
}

func NewRedisCache(cfg config.RedisConfig, flightsTTL, tokensTTL time.Duration) *RedisCache {
	return newWithClient(
		redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		flightsTTL,
		tokensTTL,
	)
}

func newWithClient(client redis.UniversalClient, flightsTTL, tokensTTL time.Duration) *RedisCache {
	return &RedisCache{client: client, flightsTTL: flightsTTL, tokensTTL: tokensTTL}
}

// GetFlights returns nil, nil on a cache miss.
func (c *RedisCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	var flights []domain.Flight
	ok, err := c.getJSON(ctx, flightsKey(), &flights)
	if err != nil || !ok {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	return c.setJSON(ctx, flightsKey(), flights, c.flightsTTL)
}

func (c *RedisCache) InvalidateFlights(ctx context.Context) error {
	return c.client.Del(ctx, flightsKey()).Err()
}

// GetIdentity returns nil, nil when token is not cached.
func (c *RedisCache) GetIdentity(ctx context.Context, token string) (*domain.Identity, error) {
	var id domain.Identity
	ok, err := c.getJSON(ctx, tokenKey(token), &id)
	if err != nil || !ok {
		return nil, err
	}
	return &id, nil
}

func (c *RedisCache) SetIdentity(ctx context.Context, token string, identity domain.Identity) error {
	return c.setJSON(ctx, tokenKey(token), identity, c.tokensTTL)
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) getJSON(ctx context.Context, key string, dst any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (c *RedisCache) setJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, ttl).Err()
}

func flightsKey() string {
	return "cache:flights"
}

// Raw tokens are never written to Redis.
func tokenKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "cache:token:" + hex.EncodeToString(sum[:])
}
