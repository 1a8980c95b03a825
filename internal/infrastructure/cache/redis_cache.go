// Package cache implementa el cache de estadísticas sobre Redis.
// Las respuestas son lecturas puras con TTL corto; si Redis no está
// configurado la aplicación funciona igual, solo sin cache.
package cache

import (
	"context"
	"errors"
	"time"

	redis "github.com/redis/go-redis/v9"
	"github.com/tu-usuario/ventas-pro/internal/application/statistics"
)

var _ statistics.Cache = (*RedisCache)(nil)

// RedisCache adaptador Redis para statistics.Cache.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache construye el cliente Redis.
func NewRedisCache(addr, password string, db int) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisCache{client: client}
}

// Ping verifica la conexión.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close cierra el cliente.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// Get devuelve el valor cacheado o (nil, nil) si la clave no existe.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

// Set guarda el valor con el TTL indicado.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}
