package api

import (
	"context"
	"fmt"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bakebook/backend/internal/database"
	"github.com/bakebook/backend/internal/middleware"
	"github.com/bakebook/backend/internal/service"
	"github.com/bakebook/backend/internal/types"
)

const testJWTSecret = "test-secret"

// setupTestRouter wires real services over an in-memory database behind the
// same route layout the server mounts
func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	authService := service.NewAuthService(db, testJWTSecret)
	recipeService := service.NewRecipeService(db)
	ingredientService := service.NewIngredientService(db)

	router := gin.New()

	v1 := router.Group("/api/v1")
	NewAuthHandler(authService).RegisterRoutes(v1)

	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware(authService))
	NewRecipeHandler(recipeService).RegisterRoutes(protected)
	NewIngredientHandler(ingredientService).RegisterRoutes(protected)

	return router, db
}

// registerTestUser creates an account through the real auth service and
// returns a token usable as a Bearer credential
func registerTestUser(t *testing.T, db *gorm.DB, name string) string {
	t.Helper()

	authService := service.NewAuthService(db, testJWTSecret)
	token, err := authService.Register(context.Background(), &types.RegisterRequest{
		Name:     name,
		Email:    name + "@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	return token
}
