package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/giusMaffi/stiga-product-finder/internal/domain"
	"github.com/giusMaffi/stiga-product-finder/internal/infrastructure/catalog"
	"github.com/giusMaffi/stiga-product-finder/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	searchService *usecase.SearchService
	catalog       *catalog.Catalog
	environment   string
}

// NewHandler creates a new HTTP handler
func NewHandler(searchService *usecase.SearchService, cat *catalog.Catalog, environment string) *Handler {
	return &Handler{
		searchService: searchService,
		catalog:       cat,
		environment:   environment,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":          "ok",
		"env":             h.environment,
		"products_loaded": h.catalog.Len(),
	})
}

// ListProducts returns the full loaded catalog
func (h *Handler) ListProducts(c *gin.Context) {
	products := h.catalog.Products()
	c.JSON(http.StatusOK, gin.H{
		"count": len(products),
		"items": products,
	})
}

// SearchProducts handles GET /products/search. Query enums validate against
// their closed vocabulary; features arrive as a CSV parameter.
func (h *Handler) SearchProducts(c *gin.Context) {
	var query domain.SearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if features := c.Query("features"); features != "" {
		for _, f := range strings.Split(features, ",") {
			if f = strings.TrimSpace(f); f != "" {
				query.Features = append(query.Features, f)
			}
		}
	}
	query.Normalize()

	opts := usecase.SearchOptions{
		LivePrice: boolQuery(c, "live_price"),
		LiveImage: boolQuery(c, "live_image"),
	}

	result, err := h.searchService.Search(c.Request.Context(), &query, opts)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cards := make([]domain.Card, 0, len(result.Items))
	for i := range result.Items {
		cards = append(cards, usecase.BuildCard(&result.Items[i].Product, result.Items[i].Score))
	}

	c.JSON(http.StatusOK, domain.SearchResponse{
		Items: cards,
		Meta: map[string]interface{}{
			"total":           result.Total,
			"limit":           query.Limit,
			"filters_applied": query,
		},
	})
}

// boolQuery reads a boolean query parameter, treating malformed values as false
func boolQuery(c *gin.Context, name string) bool {
	v, err := strconv.ParseBool(c.DefaultQuery(name, "false"))
	if err != nil {
		return false
	}
	return v
}
