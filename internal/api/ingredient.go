package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bakebook/backend/internal/service"
)

type IngredientHandler struct {
	ingredientService service.IIngredientService
}

func NewIngredientHandler(ingredientService service.IIngredientService) *IngredientHandler {
	return &IngredientHandler{ingredientService: ingredientService}
}

func (h *IngredientHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/ingredients/search", h.Search)
}

// Search backs the wizard's ingredient autocomplete
func (h *IngredientHandler) Search(c *gin.Context) {
	matches, err := h.ingredientService.SearchMasterIngredients(c.Request.Context(), c.Query("q"))
	if err != nil {
		log.Printf("Error: ingredient search failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search ingredients"})
		return
	}

	c.JSON(http.StatusOK, matches)
}
