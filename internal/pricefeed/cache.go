package pricefeed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/innajain/ledger-sub000/internal/core/domain"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// keyPrefix is the prefix for all price cache keys.
const keyPrefix = "price:"

// Cache memoizes price lookups in Redis with a TTL so external call volume
// stays bounded. Only successful lookups are written; failures never poison
// the cache.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache creates a price cache with the given TTL.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// cachedPrice is the serialized form. The price travels as a string so no
// precision is lost.
type cachedPrice struct {
	Price string    `json:"price"`
	AsOf  time.Time `json:"as_of"`
}

func cacheKey(kind, code string) string {
	return fmt.Sprintf("%s%s:%s", keyPrefix, kind, code)
}

// Get retrieves a cached quote. The second return is false on a miss.
func (c *Cache) Get(ctx context.Context, kind, code string) (*domain.PriceQuote, bool, error) {
	val, err := c.client.Get(ctx, cacheKey(kind, code)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get cached price: %w", err)
	}

	var cached cachedPrice
	if err := json.Unmarshal([]byte(val), &cached); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cached price: %w", err)
	}
	price, err := decimal.NewFromString(cached.Price)
	if err != nil {
		return nil, false, fmt.Errorf("failed to parse cached price: %w", err)
	}

	return &domain.PriceQuote{Price: price, AsOf: cached.AsOf}, true, nil
}

// Set stores a quote under price:<kind>:<code> with the cache TTL.
func (c *Cache) Set(ctx context.Context, kind, code string, quote domain.PriceQuote) error {
	data, err := json.Marshal(cachedPrice{Price: quote.Price.String(), AsOf: quote.AsOf})
	if err != nil {
		return fmt.Errorf("failed to marshal price: %w", err)
	}
	if err := c.client.Set(ctx, cacheKey(kind, code), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cached price: %w", err)
	}
	return nil
}

// Flush removes every cached price. Used by the admin bulk-flush operation.
func (c *Cache) Flush(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()

	pipe := c.client.Pipeline()
	count := 0
	for iter.Next(ctx) {
		pipe.Del(ctx, iter.Val())
		count++
		if count >= 100 {
			if _, err := pipe.Exec(ctx); err != nil {
				return fmt.Errorf("failed to flush price cache: %w", err)
			}
			pipe = c.client.Pipeline()
			count = 0
		}
	}
	if count > 0 {
		if _, err := pipe.Exec(ctx); err != nil {
			return fmt.Errorf("failed to flush price cache: %w", err)
		}
	}
	return iter.Err()
}
