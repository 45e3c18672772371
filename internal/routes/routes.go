package routes

import (
	"net/http"
	"time"

	"vk_randomizer_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers, photosDir string) {
	// Служебные эндпоинты
	ginRouter.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "VK Randomizer API",
			"version": "1.0.0",
		})
	})
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// Загруженные фотографии раздаются как статика
	if photosDir != "" {
		ginRouter.Static("/photos", photosDir)
	}

	// HTTP API v1
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.RaffleHandler.RegisterRoutes(api)
		appHandlers.CommunityHandler.RegisterRoutes(api)
		appHandlers.NotificationHandler.RegisterRoutes(api)
		appHandlers.NotificationCardHandler.RegisterRoutes(api)
		appHandlers.CommunityModalHandler.RegisterRoutes(api)
		appHandlers.CardHandler.RegisterRoutes(api)
		appHandlers.UploadHandler.RegisterRoutes(api)
	}
}
