package http

import (
	"github.com/gin-gonic/gin"
	"github.com/giusMaffi/stiga-product-finder/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	products := router.Group("/products")
	{
		products.GET("/all", handler.ListProducts)
		products.GET("/search", handler.SearchProducts)
	}

	return router
}
