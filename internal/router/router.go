package router

import (
	"github.com/gin-gonic/gin"

	"github.com/bakebook/backend/internal/api"
	"github.com/bakebook/backend/internal/middleware"
)

// SetupRouter configures the application routes. The rate limiter and image
// handler are optional; they are skipped when Redis or S3 is not configured.
func SetupRouter(
	authHandler *api.AuthHandler,
	recipeHandler *api.RecipeHandler,
	ingredientHandler *api.IngredientHandler,
	imageHandler *api.ImageHandler,
	validator middleware.TokenValidator,
	recipeLimiter *middleware.RateLimiter,
) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS())

	// Auth routes
	v1 := router.Group("/api/v1")
	authHandler.RegisterRoutes(v1)

	// Everything under /api requires a session before any database work
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware(validator))
	{
		var createExtra []gin.HandlerFunc
		if recipeLimiter != nil {
			createExtra = append(createExtra, recipeLimiter.RateLimitMiddleware())
		}
		recipeHandler.RegisterRoutes(protected, createExtra...)
		ingredientHandler.RegisterRoutes(protected)
		if imageHandler != nil {
			imageHandler.RegisterRoutes(protected)
		}
	}

	return router
}
