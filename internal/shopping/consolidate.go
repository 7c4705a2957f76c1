// Package shopping merges ingredient lists across recipes and days into a
// deduplicated shopping list.
package shopping

import (
	"strings"

	"github.com/hazemq/souschef/internal/domain"
)

// Contribution is one ingredient scaled by the servings it is cooked for.
type Contribution struct {
	Ingredient domain.Ingredient
	Servings   int
}

// group accumulates contributions sharing an ingredient key.
type group struct {
	name     string // first-seen casing
	total    float64
	unit     string // canonical trimmed lower-case unit of the group
	count    int
	mergable bool
}

// Consolidate merges contributions into shopping list entries, grouped by
// ingredient key. Quantities are summed (quantity × servings) only while
// every contribution in the group carries the same unit; a unit mismatch
// or an unknown quantity makes the whole entry's quantity unknown, but the
// entry is still listed so nothing is silently dropped. Output order is
// the first-seen order of each distinct ingredient key, which keeps a weak
// locality with the recipe order as entered. The function is deterministic:
// identical input yields identical output.
func Consolidate(contributions []Contribution) []domain.ShoppingListEntry {
	groups := make(map[string]*group)
	var order []string

	for _, c := range contributions {
		key := domain.IngredientKey(c.Ingredient)
		if key == "" {
			continue
		}

		g, seen := groups[key]
		if !seen {
			g = &group{name: strings.TrimSpace(c.Ingredient.Name), mergable: true}
			groups[key] = g
			order = append(order, key)
		}
		g.count++

		if !g.mergable {
			continue
		}
		if c.Ingredient.Quantity == nil {
			g.mergable = false
			continue
		}

		unit := ""
		if c.Ingredient.Unit != nil {
			unit = strings.ToLower(strings.TrimSpace(*c.Ingredient.Unit))
		}
		if g.count == 1 {
			g.unit = unit
		} else if g.unit != unit {
			g.mergable = false
			continue
		}

		servings := c.Servings
		if servings < 1 {
			servings = 1
		}
		g.total += *c.Ingredient.Quantity * float64(servings)
	}

	out := make([]domain.ShoppingListEntry, 0, len(order))
	for _, key := range order {
		g := groups[key]
		entry := domain.ShoppingListEntry{Name: g.name, SourceCount: g.count}
		if g.mergable {
			total := g.total
			entry.TotalQuantity = &total
			if g.unit != "" {
				unit := g.unit
				entry.Unit = &unit
			}
		}
		out = append(out, entry)
	}
	return out
}
