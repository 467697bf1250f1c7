package service

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/bakebook/backend/internal/models"
	"github.com/bakebook/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IRecipeService defines the interface for recipe operations. Every
// operation takes the caller's session explicitly.
type IRecipeService interface {
	CreateRecipe(ctx context.Context, session *types.Session, req *types.CreateRecipeRequest) (*models.Recipe, error)
	GetRecipe(ctx context.Context, session *types.Session, id uuid.UUID) (*types.RecipeDetail, error)
	ListRecipes(ctx context.Context, session *types.Session) ([]types.RecipeSummary, error)
	DeleteRecipe(ctx context.Context, session *types.Session, id uuid.UUID) error
}

// IIngredientService defines the interface for the shared ingredient catalog
type IIngredientService interface {
	SearchMasterIngredients(ctx context.Context, query string) ([]models.MasterIngredient, error)
}

// IImageService defines the interface for recipe image storage
type IImageService interface {
	UploadRecipeImage(ctx context.Context, userID uuid.UUID, filename, contentType string, body io.Reader, size int64) (string, error)
}
