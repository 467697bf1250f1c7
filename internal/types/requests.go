package types

// CreateRecipeRequest is the single payload the wizard submits. The service
// re-validates it with these tags as the authoritative gate, so malformed
// shapes fail with a validation error before anything touches the database.
type CreateRecipeRequest struct {
	Title       string                    `json:"title" binding:"required" validate:"required"`
	Description string                    `json:"description"`
	Category    string                    `json:"category" binding:"required" validate:"required,oneof=Cake Bread Pastry Candy Cookies Other"`
	PrepTime    *int                      `json:"prepTime" validate:"omitempty,gte=0"`
	CookTime    *int                      `json:"cookTime" validate:"omitempty,gte=0"`
	Servings    *int                      `json:"servings" validate:"omitempty,gt=0"`
	Difficulty  string                    `json:"difficulty" validate:"omitempty,oneof=Easy Medium Hard"`
	Image       string                    `json:"image" validate:"omitempty,uri"`
	Ingredients []CreateIngredientRequest `json:"ingredients" binding:"required" validate:"required,min=1,dive"`
	Steps       []CreateStepRequest       `json:"steps" binding:"required" validate:"required,min=1,dive"`
	Tags        []string                  `json:"tags" validate:"omitempty,dive,required"`
}

// CreateIngredientRequest is one ingredient line of a create payload
type CreateIngredientRequest struct {
	Name            string  `json:"name" validate:"required"`
	Quantity        float64 `json:"quantity" validate:"required,gt=0"`
	Unit            string  `json:"unit" validate:"required,oneof=g kg ml l cup tbsp tsp piece"`
	Notes           string  `json:"notes"`
	CalculatedPrice float64 `json:"calculatedPrice" validate:"gte=0"`
	MasterID        string  `json:"masterId" validate:"omitempty,uuid"`
}

// CreateStepRequest is one direction of a create payload. Step numbers are
// not part of the request; they are assigned from submission order.
type CreateStepRequest struct {
	Instruction string `json:"instruction" validate:"required"`
	Duration    *int   `json:"duration" validate:"omitempty,gte=0"`
}

// RegisterRequest is the body for account registration
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Image    string `json:"image"`
}

// LoginRequest is the body for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
