package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bakebook/backend/internal/models"
	"github.com/bakebook/backend/internal/types"
)

// RecipeService is the authoritative CRUD boundary for recipe aggregates.
// It enforces ownership and payload shape on every request.
type RecipeService struct {
	db       *gorm.DB
	validate *validator.Validate
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{
		db:       db,
		validate: validator.New(),
	}
}

// CreateRecipe validates the payload and writes the recipe together with its
// ingredients, steps and tags in one transaction. Step numbers are assigned
// from submission order, 1-based. TotalCost is the sum of the provided
// ingredient prices, computed once here and stored.
func (s *RecipeService) CreateRecipe(ctx context.Context, session *types.Session, req *types.CreateRecipeRequest) (*models.Recipe, error) {
	if session == nil {
		return nil, ErrUnauthorized
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	recipe := &models.Recipe{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		PrepTime:    req.PrepTime,
		CookTime:    req.CookTime,
		Servings:    req.Servings,
		Difficulty:  req.Difficulty,
		Image:       req.Image,
		AuthorID:    session.UserID,
	}

	for _, ing := range req.Ingredients {
		recipe.TotalCost += ing.CalculatedPrice

		row := models.Ingredient{
			IngredientName:  ing.Name,
			Quantity:        ing.Quantity,
			Unit:            ing.Unit,
			Notes:           ing.Notes,
			CalculatedPrice: ing.CalculatedPrice,
		}
		if ing.MasterID != "" {
			masterID, err := uuid.Parse(ing.MasterID)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid masterId %q", ErrValidation, ing.MasterID)
			}
			row.MasterIngredientID = &masterID
		}
		recipe.Ingredients = append(recipe.Ingredients, row)
	}

	for i, step := range req.Steps {
		recipe.Steps = append(recipe.Steps, models.Step{
			StepNumber:  i + 1,
			Instruction: step.Instruction,
			Duration:    step.Duration,
		})
	}

	for _, tag := range req.Tags {
		recipe.Tags = append(recipe.Tags, models.Tag{Tag: tag})
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(recipe).Error
	})
	if err != nil {
		return nil, err
	}
	return recipe, nil
}

// GetRecipe loads one recipe owned by the caller, with ingredients in
// creation order, steps by step number, tags, and the author projection.
// Nonexistence and foreign ownership both come back as ErrRecipeNotFound.
func (s *RecipeService) GetRecipe(ctx context.Context, session *types.Session, id uuid.UUID) (*types.RecipeDetail, error) {
	if session == nil {
		return nil, ErrUnauthorized
	}

	var recipe models.Recipe
	err := s.db.WithContext(ctx).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Steps", func(db *gorm.DB) *gorm.DB { return db.Order("step_number ASC") }).
		Preload("Tags").
		Preload("Author").
		First(&recipe, "id = ? AND author_id = ?", id, session.UserID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	author := types.AuthorInfo{Name: session.Name, Email: session.Email, Image: session.Image}
	if recipe.Author != nil {
		author = types.AuthorInfo{
			Name:  recipe.Author.Name,
			Email: recipe.Author.Email,
			Image: recipe.Author.Image,
		}
		recipe.Author = nil
	}

	return &types.RecipeDetail{Recipe: recipe, Author: author}, nil
}

// ListRecipes returns summaries of the caller's recipes, newest first, with
// tags and ingredient/step counts instead of the nested bodies.
func (s *RecipeService) ListRecipes(ctx context.Context, session *types.Session) ([]types.RecipeSummary, error) {
	if session == nil {
		return nil, ErrUnauthorized
	}

	var recipes []models.Recipe
	err := s.db.WithContext(ctx).
		Preload("Tags").
		Where("author_id = ?", session.UserID).
		Order("created_at DESC").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(recipes))
	for i := range recipes {
		ids[i] = recipes[i].ID
	}

	ingredientCounts, err := s.countByRecipe(ctx, &models.Ingredient{}, ids)
	if err != nil {
		return nil, err
	}
	stepCounts, err := s.countByRecipe(ctx, &models.Step{}, ids)
	if err != nil {
		return nil, err
	}

	summaries := make([]types.RecipeSummary, 0, len(recipes))
	for _, r := range recipes {
		tags := make([]string, 0, len(r.Tags))
		for _, t := range r.Tags {
			tags = append(tags, t.Tag)
		}
		summaries = append(summaries, types.RecipeSummary{
			ID:              r.ID,
			CreatedAt:       r.CreatedAt,
			Title:           r.Title,
			Description:     r.Description,
			Category:        r.Category,
			PrepTime:        r.PrepTime,
			CookTime:        r.CookTime,
			Servings:        r.Servings,
			Difficulty:      r.Difficulty,
			Image:           r.Image,
			TotalCost:       r.TotalCost,
			Tags:            tags,
			IngredientCount: ingredientCounts[r.ID],
			StepCount:       stepCounts[r.ID],
		})
	}
	return summaries, nil
}

func (s *RecipeService) countByRecipe(ctx context.Context, model interface{}, ids []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}

	var rows []struct {
		RecipeID uuid.UUID
		N        int64
	}
	err := s.db.WithContext(ctx).Model(model).
		Select("recipe_id, COUNT(*) AS n").
		Where("recipe_id IN ?", ids).
		Group("recipe_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.RecipeID] = row.N
	}
	return counts, nil
}

// DeleteRecipe removes a recipe and all of its children in one transaction.
// Deleting a nonexistent or already-deleted recipe is an error, not a no-op.
func (s *RecipeService) DeleteRecipe(ctx context.Context, session *types.Session, id uuid.UUID) error {
	if session == nil {
		return ErrUnauthorized
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipe models.Recipe
		if err := tx.First(&recipe, "id = ? AND author_id = ?", id, session.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRecipeNotFound
			}
			return err
		}

		// The FK constraints cascade on the database side; deleting the
		// children here keeps the same guarantee on engines where the
		// constraint is not enforced.
		if err := tx.Where("recipe_id = ?", id).Delete(&models.Ingredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.Step{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.Tag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&recipe).Error
	})
}
