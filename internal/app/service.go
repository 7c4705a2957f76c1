// Package app wires the AI edge client, the stores and the planner into
// the operations the UI calls. It owns no UI state; everything it returns
// is a domain value or an explicit error.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/hazemq/souschef/internal/cook"
	"github.com/hazemq/souschef/internal/domain"
	"github.com/hazemq/souschef/internal/planner"
)

// AIClient is the slice of the edge client the service needs. Declared
// here so tests can substitute a fake.
type AIClient interface {
	Extract(ctx context.Context, url string) (*domain.Recipe, error)
	Caption(ctx context.Context, image string) (*domain.Caption, error)
	MealPlan(ctx context.Context, recipes []domain.Recipe, caloriesTarget float64) (*domain.MealPlan, error)
	Scan(ctx context.Context, image string) ([]domain.ScanSuggestion, error)
}

// Service is the application façade.
type Service struct {
	ai        AIClient
	library   domain.RecipeLibrary
	profiles  domain.ProfileStore
	feed      domain.PostFeed
	assembler *planner.Assembler
	log       *zap.SugaredLogger
}

// New creates the service.
func New(ai AIClient, library domain.RecipeLibrary, profiles domain.ProfileStore, feed domain.PostFeed, assembler *planner.Assembler, log *zap.SugaredLogger) *Service {
	return &Service{
		ai:        ai,
		library:   library,
		profiles:  profiles,
		feed:      feed,
		assembler: assembler,
		log:       log,
	}
}

// ExtractAndSave extracts a recipe from a link and saves it to the
// library. Partial extractions are saved too, flagged incomplete, so the
// user can fix them up; they stay out of cook mode and planning pools.
func (s *Service) ExtractAndSave(ctx context.Context, url string) (*domain.Recipe, error) {
	r, err := s.ai.Extract(ctx, url)
	if err != nil {
		return nil, err
	}

	id, err := s.library.Add(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("saving extracted recipe: %w", err)
	}
	r.ID = id

	s.log.Infow("extracted recipe", "id", id, "title", r.Title, "incomplete", r.Incomplete)
	return r, nil
}

// CaptionPhoto generates a caption for a photo.
func (s *Service) CaptionPhoto(ctx context.Context, image string) (*domain.Caption, error) {
	return s.ai.Caption(ctx, image)
}

// PublishPost publishes a photo post to the community feed. The caption
// usually comes from CaptionPhoto, possibly edited by the user.
func (s *Service) PublishPost(ctx context.Context, author, image, caption string, tags []string) (string, error) {
	return s.feed.Publish(ctx, domain.Post{
		Author:   author,
		ImageURI: image,
		Caption:  caption,
		Tags:     tags,
	})
}

// SuggestFromScan asks for recipe suggestions matching a fridge photo.
func (s *Service) SuggestFromScan(ctx context.Context, image string) ([]domain.ScanSuggestion, error) {
	return s.ai.Scan(ctx, image)
}

// GeneratePlan assembles a weekly plan locally from the library's pool,
// constrained by the named kitchen profile.
func (s *Service) GeneratePlan(ctx context.Context, profileName string, caloriesTarget float64, avoid []string) (*domain.MealPlan, error) {
	kitchen, err := s.profiles.Get(ctx, profileName)
	if err != nil {
		return nil, fmt.Errorf("loading kitchen profile %q: %w", profileName, err)
	}

	pool, err := s.library.Pool(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading recipe pool: %w", err)
	}

	return s.assembler.Assemble(pool, planner.Preferences{
		CaloriesTarget: caloriesTarget,
		Avoid:          avoid,
		Kitchen:        kitchen,
	})
}

// RequestRemotePlan asks the mealplan endpoint for a plan over the
// library's pool, as a server-side alternative to GeneratePlan.
func (s *Service) RequestRemotePlan(ctx context.Context, caloriesTarget float64) (*domain.MealPlan, error) {
	pool, err := s.library.Pool(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading recipe pool: %w", err)
	}
	if len(pool) == 0 {
		return nil, &domain.EmptyPoolError{}
	}
	return s.ai.MealPlan(ctx, pool, caloriesTarget)
}

// StartCooking opens a cook session for a saved recipe. Incomplete
// recipes are rejected before a session is created.
func (s *Service) StartCooking(ctx context.Context, recipeID string) (*cook.Session, *domain.Recipe, error) {
	r, err := s.library.Get(ctx, recipeID)
	if err != nil {
		return nil, nil, fmt.Errorf("loading recipe: %w", err)
	}

	session, err := cook.NewSession(r)
	if err != nil {
		return nil, nil, err
	}

	s.log.Infow("started cook session", "session", session.ID(), "recipe", r.Title, "steps", session.Len())
	return session, r, nil
}
