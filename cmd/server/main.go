package main

import (
	"fmt"
	"log"
	"os"

	"github.com/giusMaffi/stiga-product-finder/config"
	httpDelivery "github.com/giusMaffi/stiga-product-finder/internal/delivery/http"
	"github.com/giusMaffi/stiga-product-finder/internal/infrastructure/cache"
	"github.com/giusMaffi/stiga-product-finder/internal/infrastructure/catalog"
	"github.com/giusMaffi/stiga-product-finder/internal/infrastructure/pdp"
	"github.com/giusMaffi/stiga-product-finder/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting STIGA Product Finder v1.2.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Load the product catalog once; it is immutable for the process lifetime
	cat, err := catalog.Load(cfg.Catalog.Path, cfg.Catalog.AllowedDomains)
	if err != nil {
		log.Printf("WARNING: %v - starting with an empty catalog", err)
		cat = catalog.New(nil)
	}

	// Independent live-data caches with their own TTLs
	priceCache := cache.NewMemoryCache()
	imageCache := cache.NewMemoryCache()
	log.Printf("Live cache TTLs: price=%s image=%s", cfg.Cache.PriceTTL, cfg.Cache.ImageTTL)

	pdpClient := pdp.NewClient(cfg.PDP.UserAgent, cfg.PDP.Timeout, cfg.PDP.RequestsPerMinute)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		pdpClient.SetDebug(true)
		log.Printf("PDP client debug mode enabled")
	}

	// Initialize usecase layer
	enrichmentService := usecase.NewEnrichmentService(
		pdpClient,
		priceCache,
		imageCache,
		usecase.EnrichmentServiceConfig{
			PriceTTL: cfg.Cache.PriceTTL,
			ImageTTL: cfg.Cache.ImageTTL,
		},
	)

	searchService := usecase.NewSearchService(cat, enrichmentService, usecase.SearchServiceConfig{
		StrictEnrichment:  cfg.Enrichment.Strict,
		EnrichConcurrency: cfg.Enrichment.Concurrency,
	})

	log.Printf("Enrichment: strict=%v, concurrency=%d", cfg.Enrichment.Strict, cfg.Enrichment.Concurrency)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(searchService, cat, cfg.Server.Environment)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
