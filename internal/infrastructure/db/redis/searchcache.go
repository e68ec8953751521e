package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/docuvault/dms/internal/core/domain"
)

const (
	searchCacheTTL = 5 * time.Minute
	connectTimeout = 5 * time.Second
)

// Config holds the Redis connection settings for the search cache store.
type Config struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// Connect opens a Redis client for the cache store and pings it before
// handing it out, so a dead cache backend fails at startup rather than on
// the first search.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = connectTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

// SearchCache caches search responses in Redis, keyed by the normalized
// query. Entries expire after searchCacheTTL; there is no explicit
// invalidation, so results may lag writes by up to the TTL.
type SearchCache struct {
	client *redis.Client
}

func NewSearchCache(client *redis.Client) *SearchCache {
	return &SearchCache{client: client}
}

// Get returns the cached result set and whether the key was present.
func (c *SearchCache) Get(ctx context.Context, query string) ([]domain.Document, bool, error) {
	raw, err := c.client.Get(ctx, c.key(query)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("search cache get: %w", err)
	}

	var docs []domain.Document
	if err := json.Unmarshal(raw, &docs); err != nil {
		// Treat a corrupt entry as a miss; it will be overwritten.
		return nil, false, nil
	}
	return docs, true, nil
}

// Set stores the result set under the normalized query key.
func (c *SearchCache) Set(ctx context.Context, query string, docs []domain.Document) error {
	raw, err := json.Marshal(docs)
	if err != nil {
		return fmt.Errorf("search cache marshal: %w", err)
	}
	return c.client.Set(ctx, c.key(query), raw, searchCacheTTL).Err()
}

func (c *SearchCache) key(query string) string {
	return "search:" + strings.ToLower(strings.TrimSpace(query))
}
