package main

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm/clause"

	"github.com/bakebook/backend/config"
	"github.com/bakebook/backend/internal/database"
	"github.com/bakebook/backend/internal/models"
)

// Baseline master ingredient catalog for autocomplete and price lookup.
// Prices are per unit in the row's unit.
var catalog = []models.MasterIngredient{
	{Name: "All-purpose flour", Unit: "kg", PricePerUnit: 1.20},
	{Name: "Bread flour", Unit: "kg", PricePerUnit: 1.60},
	{Name: "Granulated sugar", Unit: "kg", PricePerUnit: 1.10},
	{Name: "Brown sugar", Unit: "kg", PricePerUnit: 1.40},
	{Name: "Powdered sugar", Unit: "kg", PricePerUnit: 1.80},
	{Name: "Butter", Unit: "g", PricePerUnit: 0.012},
	{Name: "Eggs", Unit: "piece", PricePerUnit: 0.35},
	{Name: "Whole milk", Unit: "l", PricePerUnit: 1.05},
	{Name: "Heavy cream", Unit: "ml", PricePerUnit: 0.004},
	{Name: "Vanilla extract", Unit: "tsp", PricePerUnit: 0.50},
	{Name: "Baking powder", Unit: "tsp", PricePerUnit: 0.05},
	{Name: "Baking soda", Unit: "tsp", PricePerUnit: 0.03},
	{Name: "Active dry yeast", Unit: "g", PricePerUnit: 0.04},
	{Name: "Salt", Unit: "tsp", PricePerUnit: 0.01},
	{Name: "Dark chocolate", Unit: "g", PricePerUnit: 0.02},
	{Name: "Cocoa powder", Unit: "g", PricePerUnit: 0.015},
	{Name: "Cream cheese", Unit: "g", PricePerUnit: 0.009},
	{Name: "Almond flour", Unit: "g", PricePerUnit: 0.011},
	{Name: "Honey", Unit: "tbsp", PricePerUnit: 0.25},
	{Name: "Cinnamon", Unit: "tsp", PricePerUnit: 0.08},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	for i := range catalog {
		catalog[i].ID = uuid.New()
	}

	// Existing rows keep their ids; reruns only update prices.
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"unit", "price_per_unit"}),
	}).Create(&catalog).Error
	if err != nil {
		log.Fatalf("failed to seed catalog: %v", err)
	}

	log.Printf("Seeded %d master ingredients", len(catalog))
}
