// Package wizard implements the recipe-creation flow: a linear state machine
// that collects a complete recipe across ordered stages and produces exactly
// one create call on submit. A Wizard is not safe for concurrent use; it
// models a single user's form session.
package wizard

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/bakebook/backend/internal/models"
	"github.com/bakebook/backend/internal/types"
)

// Stage is one of the ordered wizard stages
type Stage int

const (
	StageDetails Stage = iota
	StageIngredients
	StageDirections
)

func (s Stage) String() string {
	switch s {
	case StageDetails:
		return "Details"
	case StageIngredients:
		return "Ingredients"
	case StageDirections:
		return "Directions"
	}
	return "Unknown"
}

var (
	ErrDetailsIncomplete = errors.New("title and category are required")
	ErrNoIngredients     = errors.New("at least one ingredient is required")
	ErrNoSteps           = errors.New("at least one step is required")
	ErrSubmitInFlight    = errors.New("a submit is already in flight")
)

// RecipeCreator is the single service call the wizard makes
type RecipeCreator interface {
	CreateRecipe(ctx context.Context, session *types.Session, req *types.CreateRecipeRequest) (*models.Recipe, error)
}

// Details holds the first-stage fields
type Details struct {
	Title       string
	Description string
	Category    string
	PrepTime    *int
	CookTime    *int
	Servings    *int
	Difficulty  string
	Image       string
}

// Ingredient is one in-memory ingredient line. ID is a client-generated
// temporary id so removal stays unambiguous even with duplicated content.
type Ingredient struct {
	ID              string
	Name            string
	Quantity        float64
	Unit            string
	Notes           string
	CalculatedPrice float64
	MasterID        string
}

// Step is one in-memory direction, identified like Ingredient
type Step struct {
	ID          string
	Instruction string
	Duration    *int
}

// Wizard accumulates form state locally; nothing is persisted until Submit.
type Wizard struct {
	stage       Stage
	details     Details
	ingredients []Ingredient
	steps       []Step
	tags        []string

	submitting bool
	creator    RecipeCreator
	session    *types.Session
}

// New starts a wizard at the Details stage for the given session
func New(creator RecipeCreator, session *types.Session) *Wizard {
	return &Wizard{creator: creator, session: session}
}

// Stage reports the current stage
func (w *Wizard) Stage() Stage {
	return w.stage
}

// SetDetails replaces the first-stage fields. Allowed at any stage; the
// guards only apply when moving forward.
func (w *Wizard) SetDetails(d Details) {
	w.details = d
}

// Details returns the current first-stage fields
func (w *Wizard) Details() Details {
	return w.details
}

// Next advances one stage. A failed guard returns the validation error and
// leaves the stage unchanged.
func (w *Wizard) Next() error {
	switch w.stage {
	case StageDetails:
		if strings.TrimSpace(w.details.Title) == "" || strings.TrimSpace(w.details.Category) == "" {
			return ErrDetailsIncomplete
		}
		w.stage = StageIngredients
	case StageIngredients:
		if len(w.ingredients) == 0 {
			return ErrNoIngredients
		}
		w.stage = StageDirections
	case StageDirections:
		// Final stage; Submit finishes the flow.
	}
	return nil
}

// Back moves one stage backwards. Always permitted, never discards data.
func (w *Wizard) Back() {
	if w.stage > StageDetails {
		w.stage--
	}
}

// AddIngredient appends an ingredient line and returns its temporary id.
// Name and a positive quantity are required; the unit defaults to grams.
func (w *Wizard) AddIngredient(ing Ingredient) (string, error) {
	if strings.TrimSpace(ing.Name) == "" || ing.Quantity <= 0 {
		return "", errors.New("ingredient name and quantity are required")
	}
	if ing.Unit == "" {
		ing.Unit = "g"
	}
	ing.ID = uuid.NewString()
	w.ingredients = append(w.ingredients, ing)
	return ing.ID, nil
}

// RemoveIngredient removes by temporary id, not by position
func (w *Wizard) RemoveIngredient(id string) bool {
	for i, ing := range w.ingredients {
		if ing.ID == id {
			w.ingredients = append(w.ingredients[:i], w.ingredients[i+1:]...)
			return true
		}
	}
	return false
}

// Ingredients returns the current ingredient lines
func (w *Wizard) Ingredients() []Ingredient {
	return w.ingredients
}

// AddStep appends a direction and returns its temporary id
func (w *Wizard) AddStep(instruction string, duration *int) (string, error) {
	if strings.TrimSpace(instruction) == "" {
		return "", errors.New("step instruction is required")
	}
	step := Step{ID: uuid.NewString(), Instruction: instruction, Duration: duration}
	w.steps = append(w.steps, step)
	return step.ID, nil
}

// RemoveStep removes by temporary id
func (w *Wizard) RemoveStep(id string) bool {
	for i, step := range w.steps {
		if step.ID == id {
			w.steps = append(w.steps[:i], w.steps[i+1:]...)
			return true
		}
	}
	return false
}

// Steps returns the current directions
func (w *Wizard) Steps() []Step {
	return w.steps
}

// AddTag records a tag. Duplicates within this wizard are silently ignored.
func (w *Wizard) AddTag(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return false
	}
	for _, t := range w.tags {
		if t == tag {
			return false
		}
	}
	w.tags = append(w.tags, tag)
	return true
}

// RemoveTag drops a tag by value
func (w *Wizard) RemoveTag(tag string) {
	for i, t := range w.tags {
		if t == tag {
			w.tags = append(w.tags[:i], w.tags[i+1:]...)
			return
		}
	}
}

// Tags returns the current tag set in insertion order
func (w *Wizard) Tags() []string {
	return w.tags
}

// Payload assembles the single create request from the accumulated state
func (w *Wizard) Payload() *types.CreateRecipeRequest {
	req := &types.CreateRecipeRequest{
		Title:       w.details.Title,
		Description: w.details.Description,
		Category:    w.details.Category,
		PrepTime:    w.details.PrepTime,
		CookTime:    w.details.CookTime,
		Servings:    w.details.Servings,
		Difficulty:  w.details.Difficulty,
		Image:       w.details.Image,
		Tags:        w.tags,
	}
	for _, ing := range w.ingredients {
		req.Ingredients = append(req.Ingredients, types.CreateIngredientRequest{
			Name:            ing.Name,
			Quantity:        ing.Quantity,
			Unit:            ing.Unit,
			Notes:           ing.Notes,
			CalculatedPrice: ing.CalculatedPrice,
			MasterID:        ing.MasterID,
		})
	}
	for _, step := range w.steps {
		req.Steps = append(req.Steps, types.CreateStepRequest{
			Instruction: step.Instruction,
			Duration:    step.Duration,
		})
	}
	return req
}

// Submit sends the assembled payload once. It is only permitted from the
// Directions stage with every earlier guard satisfied, and at most one
// submit may be in flight. On failure the wizard state is preserved
// unchanged so the user can retry without re-entering anything.
func (w *Wizard) Submit(ctx context.Context) (*models.Recipe, error) {
	if w.submitting {
		return nil, ErrSubmitInFlight
	}
	if strings.TrimSpace(w.details.Title) == "" || strings.TrimSpace(w.details.Category) == "" {
		return nil, ErrDetailsIncomplete
	}
	if len(w.ingredients) == 0 {
		return nil, ErrNoIngredients
	}
	if w.stage != StageDirections || len(w.steps) == 0 {
		return nil, ErrNoSteps
	}

	w.submitting = true
	defer func() { w.submitting = false }()

	return w.creator.CreateRecipe(ctx, w.session, w.Payload())
}
