package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"

	"geogame/internal/handler"
	"geogame/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	GameHandler *handler.GameHandler
	UserHandler *handler.UserHandler
	PostHandler *handler.PostHandler
	NewRelicApp *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Game API consumed by the mobile client.
	game := router.Group("/gameapi")
	{
		game.POST("/nearbyplayers", deps.GameHandler.NearbyPlayers)
		game.POST("/getPostIfReached", deps.GameHandler.GetPostIfReached)
	}

	// Admin/registration surface.
	v1 := router.Group("/v1")
	{
		users := v1.Group("/users")
		{
			users.POST("/register", deps.UserHandler.Register)
			users.GET("", deps.UserHandler.GetAll)
			users.GET("/:userName", deps.UserHandler.Get)
		}

		posts := v1.Group("/posts")
		{
			posts.POST("", deps.PostHandler.Create)
			posts.GET("", deps.PostHandler.GetAll)
		}
	}

	return router
}
