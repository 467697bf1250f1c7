package integration

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bakebook/backend/internal/service"
	"github.com/bakebook/backend/internal/testdb"
	"github.com/bakebook/backend/internal/types"
)

// TestRecipeLifecyclePostgres runs the whole create/get/list/delete flow
// against a real PostgreSQL instance. SQLite covers the same paths in unit
// tests; this catches dialect differences in ordering and cascades.
func TestRecipeLifecyclePostgres(t *testing.T) {
	if os.Getenv("INTEGRATION_TESTS") == "" {
		t.Skip("set INTEGRATION_TESTS=1 to run container-based tests")
	}

	db := testdb.Setup(t)
	authService := service.NewAuthService(db, "test-secret")
	recipeService := service.NewRecipeService(db)
	ctx := context.Background()

	token, err := authService.Register(ctx, &types.RegisterRequest{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	claims, err := authService.ValidateToken(token)
	require.NoError(t, err)
	session := types.NewSession(claims)

	created, err := recipeService.CreateRecipe(ctx, session, &types.CreateRecipeRequest{
		Title:    "Sourdough",
		Category: "Bread",
		Ingredients: []types.CreateIngredientRequest{
			{Name: "Flour", Quantity: 500, Unit: "g", CalculatedPrice: 0.60},
			{Name: "Water", Quantity: 350, Unit: "ml"},
			{Name: "Salt", Quantity: 10, Unit: "g", CalculatedPrice: 0.02},
		},
		Steps: []types.CreateStepRequest{
			{Instruction: "Mix flour and water, rest 30 minutes"},
			{Instruction: "Add salt and starter, fold"},
			{Instruction: "Proof overnight and bake"},
		},
		Tags: []string{"sourdough", "weekend"},
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.62, created.TotalCost, 1e-9)

	detail, err := recipeService.GetRecipe(ctx, session, created.ID)
	require.NoError(t, err)
	require.Len(t, detail.Steps, 3)
	for i, step := range detail.Steps {
		assert.Equal(t, i+1, step.StepNumber)
	}
	assert.Equal(t, "alice", detail.Author.Name)

	summaries, err := recipeService.ListRecipes(ctx, session)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.EqualValues(t, 3, summaries[0].IngredientCount)

	require.NoError(t, recipeService.DeleteRecipe(ctx, session, created.ID))
	_, err = recipeService.GetRecipe(ctx, session, created.ID)
	assert.ErrorIs(t, err, service.ErrRecipeNotFound)
}
