package edge

import "github.com/hazemq/souschef/internal/domain"

// Request bodies for the four endpoints. All requests go out as JSON.

type extractRequest struct {
	URL string `json:"url"`
}

type imageRequest struct {
	Image string `json:"image"`
}

type mealPlanRequest struct {
	Recipes     []recipePayload `json:"recipes"`
	Preferences preferences     `json:"preferences"`
}

type preferences struct {
	CaloriesTarget float64 `json:"calories_target"`
}

// recipePayload is the compact recipe shape the planner endpoint expects.
type recipePayload struct {
	ID          string             `json:"id,omitempty"`
	Title       string             `json:"title"`
	Ingredients []string           `json:"ingredients,omitempty"`
	Nutrients   map[string]float64 `json:"nutrients,omitempty"`
}

func newMealPlanRequest(recipes []domain.Recipe, caloriesTarget float64) mealPlanRequest {
	req := mealPlanRequest{
		Recipes:     make([]recipePayload, 0, len(recipes)),
		Preferences: preferences{CaloriesTarget: caloriesTarget},
	}
	for _, r := range recipes {
		p := recipePayload{ID: r.ID, Title: r.Title, Nutrients: r.Nutrients}
		for _, ing := range r.Ingredients {
			p.Ingredients = append(p.Ingredients, ing.Name)
		}
		req.Recipes = append(req.Recipes, p)
	}
	return req
}
