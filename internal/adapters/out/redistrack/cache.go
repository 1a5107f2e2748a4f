// Package redistrack implements the tracking cache on Redis. Public
// tracking lookups are read-heavy and anonymous, so snapshots are served
// from Redis and refilled from the database on miss.
package redistrack

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "tracking:"

// Cache is a Redis-backed ports.TrackingCache.
type Cache struct {
	client *redis.Client
}

// NewCache wraps an existing Redis client.
func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// Get returns the cached snapshot, or ports.ErrCacheMiss.
func (c *Cache) Get(ctx context.Context, trackingNumber string) ([]byte, error) {
	val, err := c.client.Get(ctx, keyPrefix+trackingNumber).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ports.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}
	return val, nil
}

// Set stores the snapshot with the given TTL.
func (c *Cache) Set(ctx context.Context, trackingNumber string, snapshot []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, keyPrefix+trackingNumber, snapshot, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Invalidate removes the snapshot, if any.
func (c *Cache) Invalidate(ctx context.Context, trackingNumber string) error {
	if err := c.client.Del(ctx, keyPrefix+trackingNumber).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// NoopCache is used when no Redis address is configured. Every Get is a
// miss and writes are discarded, so tracking falls through to the database.
type NoopCache struct{}

// NewNoopCache creates a cache that never stores anything.
func NewNoopCache() NoopCache {
	return NoopCache{}
}

func (NoopCache) Get(context.Context, string) ([]byte, error) {
	return nil, ports.ErrCacheMiss
}

func (NoopCache) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}

func (NoopCache) Invalidate(context.Context, string) error {
	return nil
}
