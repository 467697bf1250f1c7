package wizard

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bakebook/backend/internal/models"
	"github.com/bakebook/backend/internal/types"
)

// fakeCreator records create calls and returns a canned result
type fakeCreator struct {
	calls   int
	lastReq *types.CreateRecipeRequest
	err     error
	hook    func() // runs inside CreateRecipe, before returning
}

func (f *fakeCreator) CreateRecipe(ctx context.Context, session *types.Session, req *types.CreateRecipeRequest) (*models.Recipe, error) {
	f.calls++
	f.lastReq = req
	if f.hook != nil {
		f.hook()
	}
	if f.err != nil {
		return nil, f.err
	}
	return &models.Recipe{ID: uuid.New(), Title: req.Title, AuthorID: session.UserID}, nil
}

func testSession() *types.Session {
	return &types.Session{UserID: uuid.New(), Name: "alice", Email: "alice@example.com"}
}

func TestNextRequiresDetails(t *testing.T) {
	w := New(&fakeCreator{}, testSession())

	// Empty title: rejected, stage unchanged
	w.SetDetails(Details{Category: "Bread"})
	assert.ErrorIs(t, w.Next(), ErrDetailsIncomplete)
	assert.Equal(t, StageDetails, w.Stage())

	// Empty category: same
	w.SetDetails(Details{Title: "Toast"})
	assert.ErrorIs(t, w.Next(), ErrDetailsIncomplete)
	assert.Equal(t, StageDetails, w.Stage())

	w.SetDetails(Details{Title: "Toast", Category: "Bread"})
	require.NoError(t, w.Next())
	assert.Equal(t, StageIngredients, w.Stage())
}

func TestNextRequiresIngredients(t *testing.T) {
	w := New(&fakeCreator{}, testSession())
	w.SetDetails(Details{Title: "Toast", Category: "Bread"})
	require.NoError(t, w.Next())

	assert.ErrorIs(t, w.Next(), ErrNoIngredients)
	assert.Equal(t, StageIngredients, w.Stage())

	_, err := w.AddIngredient(Ingredient{Name: "Bread", Quantity: 2, Unit: "piece"})
	require.NoError(t, err)
	require.NoError(t, w.Next())
	assert.Equal(t, StageDirections, w.Stage())
}

func TestBackKeepsData(t *testing.T) {
	w := New(&fakeCreator{}, testSession())
	w.SetDetails(Details{Title: "Toast", Category: "Bread"})
	require.NoError(t, w.Next())

	_, err := w.AddIngredient(Ingredient{Name: "Bread", Quantity: 2, Unit: "piece"})
	require.NoError(t, err)
	require.NoError(t, w.Next())

	w.Back()
	w.Back()
	assert.Equal(t, StageDetails, w.Stage())

	// Nothing was discarded
	assert.Equal(t, "Toast", w.Details().Title)
	assert.Len(t, w.Ingredients(), 1)

	// Back at Details is a no-op
	w.Back()
	assert.Equal(t, StageDetails, w.Stage())
}

func TestRemoveByIdentity(t *testing.T) {
	w := New(&fakeCreator{}, testSession())

	// Two identical lines; removal by id is unambiguous
	first, err := w.AddIngredient(Ingredient{Name: "Egg", Quantity: 1, Unit: "piece"})
	require.NoError(t, err)
	second, err := w.AddIngredient(Ingredient{Name: "Egg", Quantity: 1, Unit: "piece"})
	require.NoError(t, err)

	assert.True(t, w.RemoveIngredient(first))
	require.Len(t, w.Ingredients(), 1)
	assert.Equal(t, second, w.Ingredients()[0].ID)

	assert.False(t, w.RemoveIngredient("no-such-id"))

	stepID, err := w.AddStep("Crack the egg", nil)
	require.NoError(t, err)
	assert.True(t, w.RemoveStep(stepID))
	assert.Empty(t, w.Steps())
}

func TestAddIngredientDefaultsAndGuards(t *testing.T) {
	w := New(&fakeCreator{}, testSession())

	_, err := w.AddIngredient(Ingredient{Quantity: 1})
	assert.Error(t, err)

	_, err = w.AddIngredient(Ingredient{Name: "Egg"})
	assert.Error(t, err)

	id, err := w.AddIngredient(Ingredient{Name: "Egg", Quantity: 1})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, "g", w.Ingredients()[0].Unit)
}

func TestTagsDeduplicated(t *testing.T) {
	w := New(&fakeCreator{}, testSession())

	assert.True(t, w.AddTag("quick"))
	assert.False(t, w.AddTag("quick")) // silently ignored
	assert.False(t, w.AddTag("  "))
	assert.True(t, w.AddTag("healthy"))
	assert.Equal(t, []string{"quick", "healthy"}, w.Tags())

	w.RemoveTag("quick")
	assert.Equal(t, []string{"healthy"}, w.Tags())
}

func TestSubmit(t *testing.T) {
	creator := &fakeCreator{}
	w := New(creator, testSession())

	w.SetDetails(Details{Title: "Toast", Category: "Bread"})
	require.NoError(t, w.Next())
	_, err := w.AddIngredient(Ingredient{Name: "Bread", Quantity: 2, Unit: "piece", CalculatedPrice: 0.5})
	require.NoError(t, err)
	require.NoError(t, w.Next())
	_, err = w.AddStep("Toast it", nil)
	require.NoError(t, err)
	w.AddTag("quick")

	recipe, err := w.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Toast", recipe.Title)

	require.Equal(t, 1, creator.calls)
	req := creator.lastReq
	require.Len(t, req.Ingredients, 1)
	require.Len(t, req.Steps, 1)
	assert.Equal(t, "Bread", req.Ingredients[0].Name)
	assert.Equal(t, "Toast it", req.Steps[0].Instruction)
	assert.Equal(t, []string{"quick"}, req.Tags)
}

func TestSubmitGuards(t *testing.T) {
	creator := &fakeCreator{}
	w := New(creator, testSession())

	// Nothing entered yet
	_, err := w.Submit(context.Background())
	assert.ErrorIs(t, err, ErrDetailsIncomplete)

	w.SetDetails(Details{Title: "Toast", Category: "Bread"})
	_, err = w.Submit(context.Background())
	assert.ErrorIs(t, err, ErrNoIngredients)

	_, err = w.AddIngredient(Ingredient{Name: "Bread", Quantity: 2, Unit: "piece"})
	require.NoError(t, err)

	// Still at the Details stage: no submit without reaching Directions
	_, err = w.Submit(context.Background())
	assert.ErrorIs(t, err, ErrNoSteps)

	assert.Zero(t, creator.calls)
}

func TestSubmitFailurePreservesState(t *testing.T) {
	creator := &fakeCreator{err: errors.New("network down")}
	w := New(creator, testSession())

	w.SetDetails(Details{Title: "Toast", Category: "Bread"})
	require.NoError(t, w.Next())
	_, err := w.AddIngredient(Ingredient{Name: "Bread", Quantity: 2, Unit: "piece"})
	require.NoError(t, err)
	require.NoError(t, w.Next())
	_, err = w.AddStep("Toast it", nil)
	require.NoError(t, err)

	_, err = w.Submit(context.Background())
	require.Error(t, err)

	// State survives the failure; a retry submits the identical payload
	assert.Equal(t, StageDirections, w.Stage())
	firstPayload := creator.lastReq

	creator.err = nil
	_, err = w.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, creator.calls)
	assert.Equal(t, firstPayload, creator.lastReq)
}

func TestSubmitSingleFlight(t *testing.T) {
	creator := &fakeCreator{}
	w := New(creator, testSession())

	w.SetDetails(Details{Title: "Toast", Category: "Bread"})
	require.NoError(t, w.Next())
	_, err := w.AddIngredient(Ingredient{Name: "Bread", Quantity: 2, Unit: "piece"})
	require.NoError(t, err)
	require.NoError(t, w.Next())
	_, err = w.AddStep("Toast it", nil)
	require.NoError(t, err)

	// A second submit while the first is still running is rejected
	var nested error
	creator.hook = func() {
		_, nested = w.Submit(context.Background())
	}

	_, err = w.Submit(context.Background())
	require.NoError(t, err)
	assert.ErrorIs(t, nested, ErrSubmitInFlight)
	assert.Equal(t, 1, creator.calls)
}
