// Package cache memoizes expensive aggregate results in Redis, keyed by
// query signature. Cache failures degrade to recomputation; they are never
// surfaced to callers.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/mzansijobs/careerhub/internal/types"
)

// ErrMiss is returned when the key is absent or expired.
var ErrMiss = errors.New("cache miss")

// Cache wraps a Redis client with JSON marshaling and TTLs.
type Cache struct {
	client *redis.Client
	logger *zap.Logger
}

// New connects to Redis and verifies the connection.
func New(addr, password string, db int, logger *zap.Logger) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &Cache{client: client, logger: logger}, nil
}

// Close releases the client.
func (c *Cache) Close() error {
	return c.client.Close()
}

// Get unmarshals the cached value for key into dest.
func (c *Cache) Get(ctx context.Context, key string, dest any) error {
	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return ErrMiss
	}
	if err != nil {
		return fmt.Errorf("get %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("unmarshal cached %s: %w", key, err)
	}
	return nil
}

// Set stores value under key with a TTL.
func (c *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// FacetsKey derives the cache key for a filter's facet aggregation. The
// signature covers only predicate fields, so pages of the same query share
// one entry.
func FacetsKey(f *types.SearchFilter) string {
	sig := *f
	sig.Page = 0
	sig.Limit = 0
	sig.SortBy = ""
	return "facets:" + Signature(sig)
}

// Signature hashes a value's canonical JSON form into a stable hex key
// fragment.
func Signature(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		// Marshaling a filter cannot realistically fail; an empty
		// signature just disables sharing for this query.
		return "unhashable"
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:16])
}
