package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

const (
	// Redis key prefixes
	categoryListKey = "trivia:categories"
)

// ErrMiss is returned when the cache holds no entry for a key
var ErrMiss = errors.New("cache miss")

// CategoryCache keeps the category listing in Redis. Categories are read-only
// for the API so a TTL is the only invalidation needed.
type CategoryCache struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewCategoryCache creates a new category cache
func NewCategoryCache(client *redis.Client, ttl time.Duration) *CategoryCache {
	return &CategoryCache{redis: client, ttl: ttl}
}

// GetCategories retrieves the cached category listing
func (c *CategoryCache) GetCategories(ctx context.Context) ([]domain.Category, error) {
	data, err := c.redis.Get(ctx, categoryListKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMiss
		}
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	var categories []domain.Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("failed to unmarshal categories: %w", err)
	}
	return categories, nil
}

// StoreCategories caches the category listing
func (c *CategoryCache) StoreCategories(ctx context.Context, categories []domain.Category) error {
	data, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("failed to marshal categories: %w", err)
	}

	if err := c.redis.Set(ctx, categoryListKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store categories: %w", err)
	}
	return nil
}

// Invalidate drops the cached listing
func (c *CategoryCache) Invalidate(ctx context.Context) error {
	if err := c.redis.Del(ctx, categoryListKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate categories: %w", err)
	}
	return nil
}
