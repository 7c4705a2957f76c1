// Package cook implements step-by-step cook-mode navigation over a fixed
// recipe. A session owns a copy of the steps taken at creation time; a
// re-extraction creates a new session, it never mutates one in progress.
package cook

import (
	"github.com/google/uuid"

	"github.com/hazemq/souschef/internal/domain"
)

// Session navigates the steps of one recipe. The index always stays in
// [0, Len()-1]; there is no terminal state beyond the last step — "done"
// is a presentation-level interpretation. Sessions live only as long as
// the screen presenting them and are never persisted.
type Session struct {
	id       string
	recipeID string
	steps    []string
	index    int
}

// NewSession starts a cook session for a recipe. Incomplete recipes are a
// precondition violation: callers must reject them before cook mode.
func NewSession(r *domain.Recipe) (*Session, error) {
	if !domain.CompleteRecipe(r) || r.Incomplete {
		return nil, &domain.ValidationError{Field: "steps", Reason: "recipe is incomplete"}
	}

	steps := make([]string, len(r.Steps))
	copy(steps, r.Steps)

	return &Session{
		id:       uuid.NewString(),
		recipeID: r.ID,
		steps:    steps,
	}, nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// RecipeID returns the recipe this session was created from.
func (s *Session) RecipeID() string { return s.recipeID }

// Len returns the number of steps.
func (s *Session) Len() int { return len(s.steps) }

// Index returns the current step index.
func (s *Session) Index() int { return s.index }

// Step returns the current step's instruction.
func (s *Session) Step() string { return s.steps[s.index] }

// AtStart reports whether the session is on the first step.
func (s *Session) AtStart() bool { return s.index == 0 }

// AtEnd reports whether the session is on the last step.
func (s *Session) AtEnd() bool { return s.index == len(s.steps)-1 }

// Next advances to the following step, clamping at the last one. Calling
// Next on the last step is a no-op, not an error.
func (s *Session) Next() string {
	if s.index < len(s.steps)-1 {
		s.index++
	}
	return s.steps[s.index]
}

// Previous moves back one step, clamping at the first one.
func (s *Session) Previous() string {
	if s.index > 0 {
		s.index--
	}
	return s.steps[s.index]
}

// JumpTo sets the current step. An index outside [0, Len()) fails with
// *domain.OutOfRangeError; the session is left unchanged.
func (s *Session) JumpTo(k int) error {
	if k < 0 || k >= len(s.steps) {
		return &domain.OutOfRangeError{Index: k, Len: len(s.steps)}
	}
	s.index = k
	return nil
}
