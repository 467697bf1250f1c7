package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bakebook/backend/internal/middleware"
	"github.com/bakebook/backend/internal/service"
	"github.com/bakebook/backend/internal/types"
)

type RecipeHandler struct {
	recipeService service.IRecipeService
}

func NewRecipeHandler(recipeService service.IRecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

// RegisterRoutes mounts the recipe routes. Both delete paths exist because
// the web client historically called either one; they are the same operation.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup, extra ...gin.HandlerFunc) {
	recipe := router.Group("/recipe")
	{
		recipe.POST("/save", append(extra, h.CreateRecipe)...)
		recipe.DELETE("/delete/:id", h.DeleteRecipe)
	}

	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.DELETE("/:id", h.DeleteRecipe)
	}
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipeService.CreateRecipe(c.Request.Context(), session, &req)
	if err != nil {
		h.respondError(c, "create recipe", err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	recipes, err := h.recipeService.ListRecipes(c.Request.Context(), session)
	if err != nil {
		h.respondError(c, "list recipes", err)
		return
	}

	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// An unparseable id cannot belong to the caller either way.
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found or unauthorized"})
		return
	}

	recipe, err := h.recipeService.GetRecipe(c.Request.Context(), session, id)
	if err != nil {
		h.respondError(c, "get recipe", err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found or unauthorized"})
		return
	}

	if err := h.recipeService.DeleteRecipe(c.Request.Context(), session, id); err != nil {
		h.respondError(c, "delete recipe", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// respondError translates service errors to status codes. Provider-level
// detail is logged, never returned to the client.
func (h *RecipeHandler) respondError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrRecipeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found or unauthorized"})
	default:
		log.Printf("Error: failed to %s: %v", op, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + op})
	}
}
