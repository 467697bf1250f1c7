package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bakebook/backend/config"
	"github.com/bakebook/backend/internal/api"
	"github.com/bakebook/backend/internal/database"
	"github.com/bakebook/backend/internal/middleware"
	"github.com/bakebook/backend/internal/router"
	"github.com/bakebook/backend/internal/service"
)

// Server wires the whole application together and owns the HTTP listener
type Server struct {
	http *http.Server
}

// New builds the server from configuration: database, optional Redis and S3,
// services, handlers, routes.
func New(cfg *config.Config) (*Server, error) {
	db, err := database.New(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	s3Config, err := config.NewS3Config(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)
	recipeService := service.NewRecipeService(db)
	ingredientService := service.NewIngredientService(db)

	var imageHandler *api.ImageHandler
	if s3Config != nil {
		imageHandler = api.NewImageHandler(service.NewImageService(s3Config))
	}

	var recipeLimiter *middleware.RateLimiter
	if redisClient != nil {
		recipeLimiter = middleware.NewRecipeCreationRateLimiter(redisClient)
	}

	engine := router.SetupRouter(
		api.NewAuthHandler(authService),
		api.NewRecipeHandler(recipeService),
		api.NewIngredientHandler(ingredientService),
		imageHandler,
		authService,
		recipeLimiter,
	)

	return &Server{
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: engine,
		},
	}, nil
}

// Start runs the HTTP listener until Shutdown is called
func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
