package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"resumebuilder_backend/internal/handlers"
	"resumebuilder_backend/internal/middleware"
)

// Setup registers the full route tree. Everything under /api is split into a
// public group and a gated group; the gate is the only place that rejects
// unauthenticated requests.
func Setup(r *gin.Engine, h *handlers.AppHandlers) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": "resume-builder", "status": "ok"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")

	public := api.Group("")
	{
		h.Auth.RegisterPublicRoutes(public)
	}

	protected := api.Group("")
	protected.Use(middleware.RequireAuth())
	{
		h.Auth.RegisterProtectedRoutes(protected)
		h.Resume.RegisterRoutes(protected)
		h.Payment.RegisterRoutes(protected)
		h.Template.RegisterRoutes(protected)
		h.Email.RegisterRoutes(protected)
	}
}
