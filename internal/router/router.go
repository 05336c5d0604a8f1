package router

import (
	"github.com/gin-gonic/gin"

	"leasedesk/internal/config"
	"leasedesk/internal/handler"
	"leasedesk/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	agreementH *handler.AgreementHandler,
	exportH *handler.ExportHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Agreement routes
	agreements := v1.Group("/agreements")
	agreements.POST("/upload", agreementH.Upload)
	agreements.GET("", agreementH.List)
	agreements.GET("/:id", agreementH.Get)
	agreements.POST("/:id/reextract", agreementH.Reextract)
	agreements.DELETE("/:id", agreementH.Delete)
	agreements.GET("/:id/original", agreementH.OriginalURL)
	agreements.GET("/:id/original/download", agreementH.DownloadOriginal)

	// Export routes
	export := v1.Group("/export")
	export.GET("/csv", exportH.ExportCSV)
	export.GET("/xlsx", exportH.ExportXLSX)

	return r
}
