package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)

	// GetOrCompute returns the cached value for key if present and fresh,
	// otherwise runs compute exactly once (deduplicating concurrent callers
	// for the same key) and caches its result for ttl. Only successful
	// computes are cached; callers that need failures remembered encode the
	// failure in the value itself.
	GetOrCompute(ctx context.Context, key string, ttl time.Duration, compute func(ctx context.Context) (interface{}, error)) (interface{}, error)
}

// PDPClient fetches live data from a product detail page.
// Both operations are single-attempt: the caller decides retry policy.
type PDPClient interface {
	// FetchLivePrice returns the price in whole euros extracted from the page.
	// ErrPageUnreachable when the page cannot be fetched, ErrValueNotFound
	// when it was fetched but carried no recognizable price.
	FetchLivePrice(ctx context.Context, url string) (int, error)

	// FetchLiveImage returns the main product image URL from the page,
	// with the same error contract as FetchLivePrice.
	FetchLiveImage(ctx context.Context, url string) (string, error)
}
