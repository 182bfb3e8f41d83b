package catalog

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/giusMaffi/stiga-product-finder/internal/domain"
)

// Catalog is the immutable, ordered product list loaded at startup.
// It is passed by reference into the search service and treated as
// read-only for the lifetime of the process.
type Catalog struct {
	products []domain.Product
}

// New builds a catalog from an already-filtered product list.
// Intended for tests and synthetic catalogs.
func New(products []domain.Product) *Catalog {
	cp := make([]domain.Product, len(products))
	copy(cp, products)
	return &Catalog{products: cp}
}

// Load reads the product catalog from a JSON file, discarding entries whose
// detail-page URL is not under one of the allowed domains. Discarded entries
// never enter the search pipeline.
func Load(path string, allowedDomains []string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	var all []domain.Product
	if err := json.Unmarshal(raw, &all); err != nil {
		return nil, fmt.Errorf("%w: malformed catalog file: %v", domain.ErrCatalogUnavailable, err)
	}

	kept := make([]domain.Product, 0, len(all))
	skipped := 0
	for _, p := range all {
		if !urlAllowed(p.PDPURL, allowedDomains) {
			skipped++
			continue
		}
		kept = append(kept, p)
	}

	log.Printf("[CATALOG] Loaded %d products (%d skipped for non-allowed PDP domain)", len(kept), skipped)
	return &Catalog{products: kept}, nil
}

// urlAllowed reports whether url falls under one of the allowed domain prefixes
func urlAllowed(url string, allowedDomains []string) bool {
	for _, dom := range allowedDomains {
		if strings.HasPrefix(url, dom) {
			return true
		}
	}
	return false
}

// Products returns a copy of the catalog in load order
func (c *Catalog) Products() []domain.Product {
	cp := make([]domain.Product, len(c.products))
	copy(cp, c.products)
	return cp
}

// Len returns the number of products in the catalog
func (c *Catalog) Len() int {
	return len(c.products)
}
