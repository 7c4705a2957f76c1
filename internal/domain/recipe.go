// Package domain defines the core types and predicates for the cooking
// assistant. All other packages depend on domain; domain depends on nothing.
package domain

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Ingredient is a single ingredient line. Quantity and Unit are nil when
// the source gave no usable figure.
type Ingredient struct {
	Name     string
	Quantity *float64
	Unit     *string
}

// IngredientKey returns the identity key for an ingredient: two ingredients
// are the same item iff their keys match. Casing and surrounding whitespace
// are not significant.
func IngredientKey(i Ingredient) string {
	return strings.ToLower(strings.TrimSpace(i.Name))
}

// NutrientProfile maps a nutrient name ("calories", "protein_g", ...) to a
// non-negative amount. A missing key means unknown, not zero.
type NutrientProfile map[string]float64

// Calories returns the calorie figure and whether one is known.
func (n NutrientProfile) Calories() (float64, bool) {
	if n == nil {
		return 0, false
	}
	v, ok := n["calories"]
	return v, ok
}

// Recipe is a normalized recipe. A Recipe with Incomplete set may exist
// transiently (partial extraction) but must never enter a cook session.
type Recipe struct {
	ID                  string
	Title               string
	Ingredients         []Ingredient
	Steps               []string
	TimeEstimateMinutes *float64
	Nutrients           NutrientProfile
	SourceURL           *string
	Incomplete          bool
}

// CompleteRecipe reports whether a recipe is usable in a cook session:
// a non-empty title and at least one step.
func CompleteRecipe(r *Recipe) bool {
	return r != nil && strings.TrimSpace(r.Title) != "" && len(r.Steps) >= 1
}

// Validate checks the fields required for a recipe to enter the library.
func (r *Recipe) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Steps, validation.Each(validation.Required)),
	)
}

// RecipeSummary is a lightweight view of a recipe for listing.
type RecipeSummary struct {
	ID         string
	Title      string
	Incomplete bool
}

// Caption is the normalized result of the photo-caption endpoint.
type Caption struct {
	Caption string
	Tags    []string
}

// ScanSuggestion is one suggested recipe from a fridge scan, together with
// the scanned ingredients it matched.
type ScanSuggestion struct {
	Title              string
	MatchedIngredients []string
}

// KitchenProfile describes the equipment available to the user. It is an
// input constraint to meal planning and is never mutated by an AI call.
type KitchenProfile struct {
	Name       string
	Appliances map[string]struct{}
	Utensils   map[string]struct{}
}

// HasAppliance reports whether the profile lists the appliance,
// case-insensitively.
func (k KitchenProfile) HasAppliance(name string) bool {
	_, ok := k.Appliances[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// NewKitchenProfile builds a named profile from appliance and utensil lists.
func NewKitchenProfile(name string, appliances, utensils []string) KitchenProfile {
	p := KitchenProfile{
		Name:       name,
		Appliances: make(map[string]struct{}, len(appliances)),
		Utensils:   make(map[string]struct{}, len(utensils)),
	}
	for _, a := range appliances {
		p.Appliances[strings.ToLower(strings.TrimSpace(a))] = struct{}{}
	}
	for _, u := range utensils {
		p.Utensils[strings.ToLower(strings.TrimSpace(u))] = struct{}{}
	}
	return p
}
