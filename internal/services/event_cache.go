package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const listingKeyPrefix = "events:published:"

// RedisEventCache caches published event listings in redis. Cache failures
// degrade to the database; they are logged and never surfaced to callers.
type RedisEventCache struct {
	client *redis.Client
	log    *logrus.Logger
}

// NewRedisEventCache creates a new redis-backed event cache
func NewRedisEventCache(client *redis.Client, log *logrus.Logger) *RedisEventCache {
	return &RedisEventCache{client: client, log: log}
}

// GetListing retrieves a cached listing page. The second return value reports
// a cache hit.
func (c *RedisEventCache) GetListing(ctx context.Context, key string) (*EventListing, bool) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.WithError(err).Warn("event cache read failed")
		}
		return nil, false
	}

	listing := &EventListing{}
	if err := json.Unmarshal(payload, listing); err != nil {
		c.log.WithError(err).Warn("event cache payload corrupt, dropping key")
		c.client.Del(ctx, key)
		return nil, false
	}

	return listing, true
}

// SetListing stores a listing page with a TTL
func (c *RedisEventCache) SetListing(ctx context.Context, key string, listing *EventListing, ttl time.Duration) {
	payload, err := json.Marshal(listing)
	if err != nil {
		c.log.WithError(err).Warn("event cache marshal failed")
		return
	}

	if err := c.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		c.log.WithError(err).Warn("event cache write failed")
	}
}

// Invalidate drops every cached listing. Called on moderation transitions so
// the public listing never shows stale status for longer than one request.
func (c *RedisEventCache) Invalidate(ctx context.Context) {
	iter := c.client.Scan(ctx, 0, listingKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			c.log.WithError(err).Warn("event cache invalidation failed")
			return
		}
	}
	if err := iter.Err(); err != nil {
		c.log.WithError(err).Warn("event cache invalidation scan failed")
	}
}
