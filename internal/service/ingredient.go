package service

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/bakebook/backend/internal/models"
)

// IngredientService answers autocomplete and price lookups against the
// shared master ingredient catalog.
type IngredientService struct {
	db *gorm.DB
}

func NewIngredientService(db *gorm.DB) *IngredientService {
	return &IngredientService{db: db}
}

// SearchMasterIngredients returns up to 10 catalog entries whose name
// matches the query, case-insensitively. Queries shorter than two
// characters return nothing, matching the autocomplete threshold.
func (s *IngredientService) SearchMasterIngredients(ctx context.Context, query string) ([]models.MasterIngredient, error) {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return []models.MasterIngredient{}, nil
	}

	var matches []models.MasterIngredient
	like := "%" + strings.ToLower(query) + "%"
	err := s.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", like).
		Order("name ASC").
		Limit(10).
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// PriceFor computes the line price of quantity units of a catalog entry
func PriceFor(master *models.MasterIngredient, quantity float64) float64 {
	if master == nil || quantity <= 0 {
		return 0
	}
	return master.PricePerUnit * quantity
}
