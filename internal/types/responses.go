package types

import (
	"time"

	"github.com/google/uuid"

	"github.com/bakebook/backend/internal/models"
)

// AuthorInfo is the minimal author projection returned with a full recipe
type AuthorInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image,omitempty"`
}

// RecipeDetail is the full recipe returned by Get: ingredients in creation
// order, steps by step number, tags, and the author projection.
type RecipeDetail struct {
	models.Recipe
	Author AuthorInfo `json:"author"`
}

// RecipeSummary is one list entry: recipe fields plus tags and child counts,
// without the nested ingredient/step bodies.
type RecipeSummary struct {
	ID              uuid.UUID `json:"id"`
	CreatedAt       time.Time `json:"createdAt"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	Category        string    `json:"category"`
	PrepTime        *int      `json:"prepTime,omitempty"`
	CookTime        *int      `json:"cookTime,omitempty"`
	Servings        *int      `json:"servings,omitempty"`
	Difficulty      string    `json:"difficulty,omitempty"`
	Image           string    `json:"image,omitempty"`
	TotalCost       float64   `json:"totalCost"`
	Tags            []string  `json:"tags"`
	IngredientCount int64     `json:"ingredientCount"`
	StepCount       int64     `json:"stepCount"`
}
