package router

import (
	"github.com/gin-gonic/gin"

	"kagaz/internal/handler"
	"kagaz/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	allowedOrigins []string,
	documentH *handler.DocumentHandler,
	parseH *handler.ParseHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	docs := v1.Group("/documents")
	docs.POST("", documentH.Create)
	docs.GET("", documentH.List)
	docs.GET("/:id", documentH.GetByID)
	docs.DELETE("/:id", documentH.Delete)
	docs.POST("/:id/generate", documentH.Generate)
	docs.POST("/:id/command", documentH.Command)
	docs.GET("/:id/export", documentH.Export)

	parse := v1.Group("/parse")
	parse.POST("/item", parseH.TokenizeItem)
	parse.POST("/freeform", parseH.Freeform)

	return r
}
