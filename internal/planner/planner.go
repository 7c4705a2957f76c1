// Package planner assembles a seven-day meal plan from a recipe pool by
// greedy constraint satisfaction. The policy favors deterministic,
// explainable picks over exact optimization: recipes are ranked once by
// penalty and dealt out across the week.
package planner

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/hazemq/souschef/internal/domain"
	"github.com/hazemq/souschef/internal/shopping"
)

// Scoring constants. A missing calorie figure ranks a recipe after every
// scored one without excluding it; a missing appliance demotes a recipe
// without excluding it (the user may substitute manually).
const (
	missingCaloriesPenalty  = 1e6
	missingAppliancePenalty = 1e3
)

// Defaults applied when Preferences leave a field zero.
const (
	defaultMealsPerDay = 3
	defaultServings    = 1
)

// Preferences constrain plan assembly.
type Preferences struct {
	CaloriesTarget float64
	Avoid          []string
	Kitchen        domain.KitchenProfile
	MealsPerDay    int
	Servings       int
}

// Assembler builds meal plans.
type Assembler struct {
	log *zap.SugaredLogger
}

// New creates an Assembler.
func New(log *zap.SugaredLogger) *Assembler {
	return &Assembler{log: log}
}

type scored struct {
	recipe  *domain.Recipe
	penalty float64
}

// Assemble produces a seven-day plan from the pool. Recipes touching an
// avoided ingredient and incomplete recipes are dropped; the rest are.
// ranked by calorie distance from the per-meal target with soft demotions
// for missing data and missing appliances. Days are filled lowest-penalty
// first without replacement, wrapping around when the pool is smaller than
// seven — a day is never left empty while the pool is non-empty. An empty
// filtered pool fails with *domain.EmptyPoolError.
func (a *Assembler) Assemble(pool []domain.Recipe, prefs Preferences) (*domain.MealPlan, error) {
	if prefs.MealsPerDay <= 0 {
		prefs.MealsPerDay = defaultMealsPerDay
	}
	if prefs.Servings <= 0 {
		prefs.Servings = defaultServings
	}

	usable := a.filter(pool, prefs.Avoid)
	if len(usable) == 0 {
		return nil, &domain.EmptyPoolError{PoolSize: len(pool)}
	}

	perMealTarget := prefs.CaloriesTarget / float64(prefs.MealsPerDay)
	ranked := make([]scored, 0, len(usable))
	for _, r := range usable {
		ranked = append(ranked, scored{recipe: r, penalty: a.penalty(r, perMealTarget, prefs.Kitchen)})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].penalty < ranked[j].penalty })

	plan := &domain.MealPlan{Days: make([]domain.MealDay, 0, 7)}
	for i, wd := range domain.AllWeekdays {
		pick := ranked[i%len(ranked)].recipe
		plan.Days = append(plan.Days, domain.MealDay{
			Day: wd,
			Meals: []domain.MealRef{
				{RecipeID: pick.ID, Title: pick.Title, Servings: prefs.Servings},
			},
		})
	}

	plan.ShoppingList = a.shoppingList(plan.Days, usable)
	a.log.Infow("assembled plan", "pool", len(pool), "usable", len(usable), "target_per_meal", perMealTarget)
	return plan, nil
}

// filter drops incomplete recipes and recipes whose ingredient names
// contain an avoided term (case-insensitive substring).
func (a *Assembler) filter(pool []domain.Recipe, avoid []string) []*domain.Recipe {
	terms := make([]string, 0, len(avoid))
	for _, t := range avoid {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			terms = append(terms, t)
		}
	}

	var usable []*domain.Recipe
	for i := range pool {
		r := &pool[i]
		if !domain.CompleteRecipe(r) || r.Incomplete {
			a.log.Debugw("dropping incomplete recipe", "title", r.Title)
			continue
		}
		if term := avoidedIngredient(r, terms); term != "" {
			a.log.Debugw("dropping recipe on avoid list", "title", r.Title, "term", term)
			continue
		}
		usable = append(usable, r)
	}
	return usable
}

func avoidedIngredient(r *domain.Recipe, terms []string) string {
	for _, ing := range r.Ingredients {
		name := strings.ToLower(ing.Name)
		for _, term := range terms {
			if strings.Contains(name, term) {
				return term
			}
		}
	}
	return ""
}

// penalty scores one recipe: calorie distance from the per-meal target,
// a fixed demotion when no calorie figure is known, and a fixed demotion
// per appliance the kitchen lacks.
func (a *Assembler) penalty(r *domain.Recipe, perMealTarget float64, kitchen domain.KitchenProfile) float64 {
	var p float64
	if calories, known := r.Nutrients.Calories(); known {
		p = calories - perMealTarget
		if p < 0 {
			p = -p
		}
	} else {
		p = missingCaloriesPenalty
	}

	for _, appliance := range requiredAppliances(r.Steps) {
		if !kitchen.HasAppliance(appliance) {
			p += missingAppliancePenalty
		}
	}
	return p
}

// shoppingList feeds every scheduled meal's ingredients through the
// consolidator, in day order. The list is always derived from Days.
func (a *Assembler) shoppingList(days []domain.MealDay, usable []*domain.Recipe) []domain.ShoppingListEntry {
	byID := make(map[string]*domain.Recipe, len(usable))
	for _, r := range usable {
		byID[r.ID] = r
	}

	var contributions []shopping.Contribution
	for _, day := range days {
		for _, meal := range day.Meals {
			r, ok := byID[meal.RecipeID]
			if !ok {
				continue
			}
			for _, ing := range r.Ingredients {
				contributions = append(contributions, shopping.Contribution{
					Ingredient: ing,
					Servings:   meal.Servings,
				})
			}
		}
	}
	return shopping.Consolidate(contributions)
}
