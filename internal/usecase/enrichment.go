package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/giusMaffi/stiga-product-finder/internal/domain"
)

// liveResult is the cached outcome of a single PDP fetch attempt. Failures
// are cached too, so an unreachable page is not hammered on every request:
// a cached miss is honored until its TTL expires.
type liveResult struct {
	price     int
	image     string
	found     bool
	reachable bool
}

// EnrichmentServiceConfig holds TTLs for the two live-data caches
type EnrichmentServiceConfig struct {
	PriceTTL time.Duration
	ImageTTL time.Duration
}

// EnrichmentService provides cached best-effort live price/image lookup.
// It never fails: every outcome degrades to "no value".
type EnrichmentService struct {
	client     domain.PDPClient
	priceCache domain.CacheRepository
	imageCache domain.CacheRepository
	priceTTL   time.Duration
	imageTTL   time.Duration
}

// NewEnrichmentService creates an enrichment service with independent price
// and image caches
func NewEnrichmentService(
	client domain.PDPClient,
	priceCache domain.CacheRepository,
	imageCache domain.CacheRepository,
	config EnrichmentServiceConfig,
) *EnrichmentService {
	priceTTL := config.PriceTTL
	if priceTTL == 0 {
		priceTTL = 30 * time.Minute
	}
	imageTTL := config.ImageTTL
	if imageTTL == 0 {
		imageTTL = 60 * time.Minute
	}

	return &EnrichmentService{
		client:     client,
		priceCache: priceCache,
		imageCache: imageCache,
		priceTTL:   priceTTL,
		imageTTL:   imageTTL,
	}
}

// LivePrice returns the live price for a PDP URL. found reports whether a
// price was extracted; reachable reports whether the page itself could be
// fetched (possibly known only from cache).
func (s *EnrichmentService) LivePrice(ctx context.Context, url string) (price int, found bool, reachable bool) {
	res := s.lookup(ctx, s.priceCache, url, s.priceTTL, func(ctx context.Context) liveResult {
		p, err := s.client.FetchLivePrice(ctx, url)
		return resultFromFetch(err, liveResult{price: p})
	})
	return res.price, res.found, res.reachable
}

// LiveImage returns the live image URL for a PDP URL, with the same
// semantics as LivePrice.
func (s *EnrichmentService) LiveImage(ctx context.Context, url string) (image string, found bool, reachable bool) {
	res := s.lookup(ctx, s.imageCache, url, s.imageTTL, func(ctx context.Context) liveResult {
		img, err := s.client.FetchLiveImage(ctx, url)
		return resultFromFetch(err, liveResult{image: img})
	})
	return res.image, res.found, res.reachable
}

// lookup runs the cache-then-fetch flow. The compute never returns an error,
// so successes and misses alike end up cached for the TTL.
func (s *EnrichmentService) lookup(
	ctx context.Context,
	cache domain.CacheRepository,
	url string,
	ttl time.Duration,
	fetch func(ctx context.Context) liveResult,
) liveResult {
	v, err := cache.GetOrCompute(ctx, url, ttl, func(ctx context.Context) (interface{}, error) {
		return fetch(ctx), nil
	})
	if err != nil {
		return liveResult{}
	}
	res, ok := v.(liveResult)
	if !ok {
		return liveResult{}
	}
	return res
}

// resultFromFetch folds a fetch outcome into a cacheable liveResult
func resultFromFetch(err error, value liveResult) liveResult {
	switch {
	case err == nil:
		value.found = true
		value.reachable = true
		return value
	case errors.Is(err, domain.ErrValueNotFound):
		return liveResult{reachable: true}
	default:
		return liveResult{}
	}
}
