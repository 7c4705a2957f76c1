// Package recipe provides recipe library implementations.
package recipe

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hazemq/souschef/internal/domain"
)

// Compile-time interface check.
var _ domain.RecipeLibrary = (*MemoryLibrary)(nil)

// MemoryLibrary holds the user's saved recipes in memory. Safe for
// concurrent use. Stored recipes are treated as immutable: Add copies the
// value in and Get hands out a copy, so callers never share state.
type MemoryLibrary struct {
	mu      sync.RWMutex
	recipes map[string]domain.Recipe
	log     *zap.SugaredLogger
}

// NewMemoryLibrary creates an empty in-memory recipe library.
func NewMemoryLibrary(log *zap.SugaredLogger) *MemoryLibrary {
	return &MemoryLibrary{
		recipes: make(map[string]domain.Recipe),
		log:     log,
	}
}

// Add stores a recipe and returns its ID, assigning one when absent.
// Incomplete recipes are accepted (partial extractions are useful to keep)
// but stay flagged so they never reach a cook session.
func (l *MemoryLibrary) Add(ctx context.Context, r *domain.Recipe) (string, error) {
	if r == nil {
		return "", fmt.Errorf("recipe is nil")
	}
	if err := r.Validate(); err != nil {
		return "", fmt.Errorf("validating recipe: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	l.recipes[r.ID] = *r
	l.log.Debugw("saved recipe", "id", r.ID, "title", r.Title, "incomplete", r.Incomplete)
	return r.ID, nil
}

// Get returns a copy of a recipe by ID.
func (l *MemoryLibrary) Get(ctx context.Context, id string) (*domain.Recipe, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	r, ok := l.recipes[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &r, nil
}

// List returns summaries of all saved recipes, sorted by title.
func (l *MemoryLibrary) List(ctx context.Context) ([]domain.RecipeSummary, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.RecipeSummary, 0, len(l.recipes))
	for _, r := range l.recipes {
		out = append(out, domain.RecipeSummary{ID: r.ID, Title: r.Title, Incomplete: r.Incomplete})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

// Search returns summaries whose title or ingredient names contain the
// query, case-insensitively.
func (l *MemoryLibrary) Search(ctx context.Context, query string) ([]domain.RecipeSummary, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return l.List(ctx)
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []domain.RecipeSummary
	for _, r := range l.recipes {
		if l.matches(&r, query) {
			out = append(out, domain.RecipeSummary{ID: r.ID, Title: r.Title, Incomplete: r.Incomplete})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (l *MemoryLibrary) matches(r *domain.Recipe, query string) bool {
	if strings.Contains(strings.ToLower(r.Title), query) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing.Name), query) {
			return true
		}
	}
	return false
}

// Remove deletes a recipe by ID.
func (l *MemoryLibrary) Remove(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.recipes[id]; !ok {
		return domain.ErrNotFound
	}
	delete(l.recipes, id)
	l.log.Debugw("removed recipe", "id", id)
	return nil
}

// Pool returns full copies of every complete recipe, for meal planning.
func (l *MemoryLibrary) Pool(ctx context.Context) ([]domain.Recipe, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.Recipe, 0, len(l.recipes))
	for _, r := range l.recipes {
		if r.Incomplete {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}
