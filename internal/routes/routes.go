package routes

import (
	"net/http"

	"parkhub_backend/internal/handlers"
	"parkhub_backend/internal/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes registers the full API surface under /api/v1.
func SetupRoutes(router *gin.Engine, h *handlers.AppHandlers) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")

	public := api.Group("")
	authed := api.Group("", middleware.AuthMiddleware())
	admin := api.Group("", middleware.AuthMiddleware(), middleware.AdminMiddleware())

	h.Auth.RegisterRoutes(public, authed)
	h.User.RegisterRoutes(authed, admin)
	h.Vehicle.RegisterRoutes(authed)
	h.Slot.RegisterRoutes(authed, admin)
	h.Request.RegisterRoutes(authed, admin)
	h.Log.RegisterRoutes(admin)
}
