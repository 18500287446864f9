package http

import (
	"github.com/gin-gonic/gin"

	"github.com/kiranabill/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))

	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		ocr := v1.Group("/ocr")
		{
			ocr.POST("/process-text", handler.ProcessReceiptText)
		}

		transactions := v1.Group("/transactions")
		{
			transactions.POST("", handler.AddTransaction)
			transactions.POST("/voice-process", handler.VoiceProcess)
			transactions.GET("/daily-summary", handler.DailySummary)
			transactions.POST("/detect-mismatch", handler.DetectMismatch)
		}

		products := v1.Group("/products")
		{
			products.GET("", handler.ListProducts)
			products.POST("", handler.AddProduct)
			products.PUT("/:id", handler.UpdateProduct)
			products.DELETE("/:id", handler.DeleteProduct)
			products.POST("/search", handler.SearchProducts)
		}
	}

	return router
}
