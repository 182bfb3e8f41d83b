package usecase

import (
	"context"
	"sort"
	"sync"

	"github.com/giusMaffi/stiga-product-finder/internal/domain"
	"github.com/giusMaffi/stiga-product-finder/internal/infrastructure/catalog"
)

// SearchOptions selects which live enrichments a request wants
type SearchOptions struct {
	LivePrice bool
	LiveImage bool
}

// SearchServiceConfig holds orchestration policy knobs
type SearchServiceConfig struct {
	// StrictEnrichment drops products whose PDP could not be fetched, so no
	// card ever links to an unconfirmed page. When false (the default),
	// fetch failures pass the product through with its catalog data.
	StrictEnrichment bool

	// EnrichConcurrency bounds the enrichment fan-out. 1 (the default)
	// fetches strictly sequentially.
	EnrichConcurrency int
}

// SearchService composes filter, enrichment, scoring, sorting and truncation
// into the product search pipeline
type SearchService struct {
	catalog     *catalog.Catalog
	enricher    *EnrichmentService
	strict      bool
	concurrency int
}

// NewSearchService creates the search orchestrator over an immutable catalog
func NewSearchService(cat *catalog.Catalog, enricher *EnrichmentService, config SearchServiceConfig) *SearchService {
	concurrency := config.EnrichConcurrency
	if concurrency < 1 {
		concurrency = 1
	}

	return &SearchService{
		catalog:     cat,
		enricher:    enricher,
		strict:      config.StrictEnrichment,
		concurrency: concurrency,
	}
}

// Search runs the pipeline: hard filter in catalog order, optional live
// enrichment on copies of the surviving products, scoring, a stable
// descending sort (ties keep catalog order), then truncation to the limit.
func (s *SearchService) Search(ctx context.Context, q *domain.SearchQuery, opts SearchOptions) (*domain.SearchResult, error) {
	if q == nil || q.SurfaceM2 < 1 || q.SlopePct < 0 {
		return nil, domain.ErrInvalidQuery
	}
	q.Normalize()

	candidates := HardFilter(s.catalog.Products(), q)

	if opts.LivePrice || opts.LiveImage {
		candidates = s.enrichAll(ctx, candidates, opts)
	}

	scored := make([]domain.ScoredProduct, 0, len(candidates))
	for i := range candidates {
		scored = append(scored, domain.ScoredProduct{
			Product: candidates[i],
			Score:   ScoreProduct(&candidates[i], q),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	total := len(scored)
	if len(scored) > q.Limit {
		scored = scored[:q.Limit]
	}

	return &domain.SearchResult{Items: scored, Total: total}, nil
}

// enrichAll overlays live data onto copies of the candidates, preserving
// order. Entries dropped by strict mode come back nil and are compacted out.
func (s *SearchService) enrichAll(ctx context.Context, products []domain.Product, opts SearchOptions) []domain.Product {
	results := make([]*domain.Product, len(products))

	if s.concurrency == 1 {
		for i := range products {
			results[i] = s.enrichOne(ctx, products[i], opts)
		}
	} else {
		sem := make(chan struct{}, s.concurrency)
		var wg sync.WaitGroup
		for i := range products {
			wg.Add(1)
			sem <- struct{}{}
			go func(i int) {
				defer wg.Done()
				defer func() { <-sem }()
				results[i] = s.enrichOne(ctx, products[i], opts)
			}(i)
		}
		wg.Wait()
	}

	out := make([]domain.Product, 0, len(products))
	for _, p := range results {
		if p != nil {
			out = append(out, *p)
		}
	}
	return out
}

// enrichOne fetches live data for a single product and overlays it onto a
// copy. The shared catalog entry is never mutated.
func (s *SearchService) enrichOne(ctx context.Context, p domain.Product, opts SearchOptions) *domain.Product {
	if p.PDPURL == "" {
		return &p
	}

	enriched := p.Clone()
	reachable := true

	if opts.LivePrice {
		price, found, ok := s.enricher.LivePrice(ctx, p.PDPURL)
		if !ok {
			reachable = false
		}
		if found {
			v := price
			enriched.PriceEUR = &v
		}
	}

	if opts.LiveImage {
		image, found, ok := s.enricher.LiveImage(ctx, p.PDPURL)
		if !ok {
			reachable = false
		}
		if found {
			enriched.ImageURL = image
		}
	}

	if !reachable && s.strict {
		return nil
	}
	return &enriched
}
