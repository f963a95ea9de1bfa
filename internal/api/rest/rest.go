package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-catalog/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes; a bearer token, when sent, identifies the viewer
	v1 := router.Group("/api/v1", middleware.OptionalAuth(authCfg))
	{
		// NFT endpoints (public read access)
		v1.GET("/nfts", handler.ListNFTs)
		v1.GET("/nfts/series", handler.ListSeries)
		v1.GET("/nfts/:id", handler.GetNFT)
		v1.GET("/nfts/:id/history", handler.GetNFTHistory)
		v1.POST("/nfts/:id/like", middleware.Auth(authCfg), handler.LikeNFT)
		v1.PUT("/nfts/:id/categories", middleware.APIKeyAuth(authCfg), handler.TagNFT)

		// View counter (public, deduplicated per IP)
		v1.POST("/views", handler.RecordView)

		// Series endpoints
		v1.GET("/series/:id/status", handler.GetSeriesStatus)

		// Category endpoints
		v1.GET("/categories", handler.ListCategories)
		v1.POST("/categories", middleware.APIKeyAuth(authCfg), handler.CreateCategory)

		// User endpoints
		v1.GET("/users/:id", handler.GetUser)
		v1.GET("/users/:id/stats", handler.GetUserStats)
		v1.PUT("/users/:id", middleware.Auth(authCfg), handler.UpdateProfile)
		v1.POST("/users/:id/follow", middleware.Auth(authCfg), handler.Follow)
		v1.DELETE("/users/:id/follow", middleware.Auth(authCfg), handler.Unfollow)
	}
}
