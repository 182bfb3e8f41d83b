package domain

import "errors"

var (
	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrInvalidQuery is returned when query parameters are invalid
	ErrInvalidQuery = errors.New("invalid query parameters")

	// ErrPageUnreachable is returned when a product detail page cannot be fetched
	ErrPageUnreachable = errors.New("product page unreachable")

	// ErrValueNotFound is returned when a page was fetched but no usable
	// price or image could be extracted from it
	ErrValueNotFound = errors.New("no value found in page")

	// ErrCatalogUnavailable is returned when the product catalog cannot be loaded
	ErrCatalogUnavailable = errors.New("product catalog unavailable")
)
