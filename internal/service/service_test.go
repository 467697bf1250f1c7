package service

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bakebook/backend/internal/database"
	"github.com/bakebook/backend/internal/models"
	"github.com/bakebook/backend/internal/types"
)

// setupTestDB opens a fresh in-memory database per test
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

// createTestUser inserts a user row and returns the matching session
func createTestUser(t *testing.T, db *gorm.DB, name string) *types.Session {
	t.Helper()

	user := models.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        name + "@example.com",
		PasswordHash: "irrelevant",
	}
	require.NoError(t, db.Create(&user).Error)
	return &types.Session{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
	}
}

func validCreateRequest() *types.CreateRecipeRequest {
	return &types.CreateRecipeRequest{
		Title:    "Classic Chocolate Cake",
		Category: "Cake",
		Ingredients: []types.CreateIngredientRequest{
			{Name: "Flour", Quantity: 500, Unit: "g", CalculatedPrice: 0.60},
			{Name: "Dark chocolate", Quantity: 200, Unit: "g", CalculatedPrice: 4.00},
		},
		Steps: []types.CreateStepRequest{
			{Instruction: "Mix the dry ingredients"},
			{Instruction: "Fold in the melted chocolate"},
			{Instruction: "Bake at 180C for 40 minutes"},
		},
		Tags: []string{"chocolate", "birthday"},
	}
}
