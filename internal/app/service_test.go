package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hazemq/souschef/internal/community"
	"github.com/hazemq/souschef/internal/domain"
	"github.com/hazemq/souschef/internal/kitchen"
	"github.com/hazemq/souschef/internal/logger"
	"github.com/hazemq/souschef/internal/planner"
	"github.com/hazemq/souschef/internal/recipe"
)

// fakeAI returns canned normalized values, standing in for the edge client.
type fakeAI struct {
	recipe *domain.Recipe
	err    error
}

func (f *fakeAI) Extract(ctx context.Context, url string) (*domain.Recipe, error) {
	if f.err != nil {
		return nil, f.err
	}
	r := *f.recipe
	return &r, nil
}

func (f *fakeAI) Caption(ctx context.Context, image string) (*domain.Caption, error) {
	return &domain.Caption{Caption: "a golden pie", Tags: []string{"baking"}}, nil
}

func (f *fakeAI) MealPlan(ctx context.Context, recipes []domain.Recipe, target float64) (*domain.MealPlan, error) {
	return &domain.MealPlan{Days: make([]domain.MealDay, 7)}, nil
}

func (f *fakeAI) Scan(ctx context.Context, image string) ([]domain.ScanSuggestion, error) {
	return []domain.ScanSuggestion{{Title: "Frittata", MatchedIngredients: []string{"eggs"}}}, nil
}

func newService(ai AIClient) *Service {
	log := logger.New(logger.LevelOff, nil)
	return New(ai,
		recipe.NewMemoryLibrary(log),
		kitchen.NewMemoryStore(log),
		community.NewMemoryFeed(log),
		planner.New(log),
		log,
	)
}

func TestExtractAndSave(t *testing.T) {
	svc := newService(&fakeAI{recipe: &domain.Recipe{
		Title: "Apple Pie",
		Steps: []string{"Make dough", "Bake"},
	}})
	ctx := context.Background()

	r, err := svc.ExtractAndSave(ctx, "https://example.com/pie")
	require.NoError(t, err)
	require.NotEmpty(t, r.ID)

	saved, err := svc.library.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Apple Pie", saved.Title)
}

func TestStartCookingRejectsIncompleteRecipe(t *testing.T) {
	svc := newService(&fakeAI{recipe: &domain.Recipe{Title: "Half a Recipe", Incomplete: true}})
	ctx := context.Background()

	r, err := svc.ExtractAndSave(ctx, "https://example.com/partial")
	require.NoError(t, err, "partial extractions are still saved")

	_, _, err = svc.StartCooking(ctx, r.ID)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr, "but they never reach cook mode")
}

func TestStartCooking(t *testing.T) {
	svc := newService(&fakeAI{recipe: &domain.Recipe{
		Title: "Apple Pie",
		Steps: []string{"Make dough", "Bake", "Cool"},
	}})
	ctx := context.Background()

	r, err := svc.ExtractAndSave(ctx, "https://example.com/pie")
	require.NoError(t, err)

	session, full, err := svc.StartCooking(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, session.Len())
	assert.Equal(t, 0, session.Index())
	assert.Equal(t, "Apple Pie", full.Title)
}

func TestGeneratePlanUsesLibraryPool(t *testing.T) {
	svc := newService(&fakeAI{recipe: &domain.Recipe{
		Title:     "Stir Fry",
		Steps:     []string{"Fry on the stove"},
		Nutrients: domain.NutrientProfile{"calories": 650},
	}})
	ctx := context.Background()

	// Empty library: planning has nothing to work with.
	_, err := svc.GeneratePlan(ctx, kitchen.DefaultProfile, 2000, nil)
	var perr *domain.EmptyPoolError
	require.ErrorAs(t, err, &perr)

	_, err = svc.ExtractAndSave(ctx, "https://example.com/stirfry")
	require.NoError(t, err)

	plan, err := svc.GeneratePlan(ctx, kitchen.DefaultProfile, 2000, nil)
	require.NoError(t, err)
	require.Len(t, plan.Days, 7)
	for _, day := range plan.Days {
		assert.NotEmpty(t, day.Meals)
	}
}

func TestGeneratePlanUnknownProfile(t *testing.T) {
	svc := newService(&fakeAI{})
	_, err := svc.GeneratePlan(context.Background(), "houseboat", 2000, nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPublishPost(t *testing.T) {
	svc := newService(&fakeAI{})
	ctx := context.Background()

	caption, err := svc.CaptionPhoto(ctx, "img://pie")
	require.NoError(t, err)

	id, err := svc.PublishPost(ctx, "ChefAnna", "img://pie", caption.Caption, caption.Tags)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	posts, err := svc.feed.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "a golden pie", posts[0].Caption)
}
