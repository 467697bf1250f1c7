package models

import (
	"time"

	"github.com/google/uuid"
)

// Recipe is the aggregate root: one dish, owned by one user. Ingredients,
// steps and tags live and die with it (ON DELETE CASCADE).
type Recipe struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Category    string    `gorm:"size:50;not null" json:"category"`
	PrepTime    *int      `json:"prepTime,omitempty"`
	CookTime    *int      `json:"cookTime,omitempty"`
	Servings    *int      `json:"servings,omitempty"`
	Difficulty  string    `gorm:"size:20" json:"difficulty,omitempty"`
	Image       string    `gorm:"size:255" json:"image,omitempty"`
	TotalCost   float64   `json:"totalCost"`
	AuthorID    uuid.UUID `gorm:"type:uuid;not null;index" json:"authorId"`

	Author      *User        `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Ingredients []Ingredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients,omitempty"`
	Steps       []Step       `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"steps,omitempty"`
	Tags        []Tag        `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"tags,omitempty"`
}

// Ingredient is one line item of a recipe. The integer primary key doubles as
// creation order, which is the display order.
type Ingredient struct {
	ID                 uint       `gorm:"primarykey" json:"id"`
	RecipeID           uuid.UUID  `gorm:"type:uuid;not null;index" json:"recipeId"`
	IngredientName     string     `gorm:"size:255;not null" json:"ingredientName"`
	Quantity           float64    `gorm:"not null" json:"quantity"`
	Unit               string     `gorm:"size:20;not null" json:"unit"`
	Notes              string     `gorm:"type:text" json:"notes,omitempty"`
	CalculatedPrice    float64    `json:"calculatedPrice"`
	MasterIngredientID *uuid.UUID `gorm:"type:uuid" json:"masterIngredientId,omitempty"`
}

// Step is an ordered instruction. StepNumber is contiguous from 1 in
// submission order and is the only ordering key, never the row id.
type Step struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	RecipeID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_recipe_step" json:"recipeId"`
	StepNumber  int       `gorm:"not null;uniqueIndex:idx_recipe_step" json:"stepNumber"`
	Instruction string    `gorm:"type:text;not null" json:"instruction"`
	Duration    *int      `json:"duration,omitempty"`
}

// Tag is a free-text label on one recipe. No cross-recipe uniqueness.
type Tag struct {
	ID       uint      `gorm:"primarykey" json:"-"`
	RecipeID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Tag      string    `gorm:"size:100;not null" json:"tag"`
}

// MasterIngredient is a shared catalog entry used for autocomplete and price
// lookup. Recipes reference it optionally through Ingredient.
type MasterIngredient struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Name         string    `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Unit         string    `gorm:"size:20;not null" json:"unit"`
	PricePerUnit float64   `json:"pricePerUnit"`
}
