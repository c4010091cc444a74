package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// CategoryCacheTTL bounds staleness of the distinct-category listing.
	// Mutations invalidate eagerly; the TTL is the backstop.
	CategoryCacheTTL = 5 * time.Minute

	categoryCacheKey = "inventory:categories"
)

// CategoryCache caches the distinct, sorted category listing served by
// GET /categories. The listing is read on every dashboard load but only
// changes when an item is created, updated or deleted.
type CategoryCache struct {
	client *RedisClient
}

// NewCategoryCache creates a CategoryCache backed by the given RedisClient.
func NewCategoryCache(r *RedisClient) *CategoryCache {
	return &CategoryCache{client: r}
}

// Get retrieves the cached category listing.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *CategoryCache) Get(ctx context.Context) ([]string, error) {
	data, err := c.client.Client().Get(ctx, categoryCacheKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, redis.Nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}
	var categories []string
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return categories, nil
}

// Set stores the category listing with the standard TTL.
func (c *CategoryCache) Set(ctx context.Context, categories []string) error {
	data, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Client().Set(ctx, categoryCacheKey, data, CategoryCacheTTL).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Invalidate drops the cached listing. Called after any mutation that can
// change the category set.
func (c *CategoryCache) Invalidate(ctx context.Context) error {
	if err := c.client.Client().Del(ctx, categoryCacheKey).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}
