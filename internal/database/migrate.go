package database

import (
	"gorm.io/gorm"

	"github.com/bakebook/backend/internal/models"
)

// Migrate runs GORM auto-migration for every table the application owns
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.MasterIngredient{},
		&models.Recipe{},
		&models.Ingredient{},
		&models.Step{},
		&models.Tag{},
	)
}
