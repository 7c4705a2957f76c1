// Package normalize validates and coerces raw AI endpoint payloads into
// domain values. Each endpoint has one entry point; all of them either
// return a usable domain value or a *domain.ValidationError naming the
// first offending field.
package normalize

import (
	"encoding/json"
	"fmt"

	"github.com/hazemq/souschef/internal/domain"
)

// DefaultTitle is substituted when an extraction has no usable title.
// A missing title is recoverable; missing steps are not.
const DefaultTitle = "Untitled Recipe"

// Extract normalizes an /extract response into a Recipe. A missing or
// blank title defaults to DefaultTitle. Missing or empty steps yield a
// recipe flagged Incomplete; callers must not route it to a cook session.
func Extract(raw []byte) (*domain.Recipe, error) {
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, &domain.ValidationError{Field: "body", Reason: "not a JSON object"}
	}

	r := &domain.Recipe{Title: coerceString(body["title"])}
	if r.Title == "" {
		r.Title = DefaultTitle
	}

	for _, line := range coerceStrings(body["shopping_list"]) {
		r.Ingredients = append(r.Ingredients, ParseIngredientLine(line))
	}

	r.Steps = coerceStrings(body["steps"])
	r.Incomplete = len(r.Steps) == 0

	est, err := coerceNumber("time_estimate", body["time_estimate"])
	if err != nil {
		return nil, err
	}
	r.TimeEstimateMinutes = est

	nutrients, err := nutrientProfile(body["nutrition"])
	if err != nil {
		return nil, err
	}
	r.Nutrients = nutrients

	return r, nil
}

// nutrientProfile coerces a nutrition object. Negative or unparseable
// values are treated as unknown and dropped.
func nutrientProfile(v any) (domain.NutrientProfile, error) {
	if v == nil {
		return nil, nil
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, &domain.ValidationError{Field: "nutrition", Reason: "expected an object"}
	}

	profile := make(domain.NutrientProfile, len(obj))
	for name, val := range obj {
		n, err := coerceNumber(fmt.Sprintf("nutrition.%s", name), val)
		if err != nil {
			return nil, err
		}
		if n != nil && *n >= 0 {
			profile[name] = *n
		}
	}
	if len(profile) == 0 {
		return nil, nil
	}
	return profile, nil
}

// Caption normalizes a /caption response. An empty caption string is
// valid; an absent caption key is not.
func Caption(raw []byte) (*domain.Caption, error) {
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, &domain.ValidationError{Field: "body", Reason: "not a JSON object"}
	}

	v, present := body["caption"]
	if !present {
		return nil, &domain.ValidationError{Field: "caption", Reason: "missing"}
	}
	text, ok := v.(string)
	if !ok {
		return nil, &domain.ValidationError{Field: "caption", Reason: "expected a string"}
	}

	return &domain.Caption{Caption: text, Tags: coerceStrings(body["tags"])}, nil
}

// MealPlan normalizes a /mealplan response into a seven-day plan.
// Fewer than seven days is padded with empty MealDay entries (a partial
// plan is still usable); a duplicate weekday collapses to its last
// occurrence with a warning attached to the result.
func MealPlan(raw []byte) (*domain.MealPlan, error) {
	var body struct {
		Days         []json.RawMessage `json:"days"`
		ShoppingList []string          `json:"shopping_list"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, &domain.ValidationError{Field: "body", Reason: "not a JSON object"}
	}

	plan := &domain.MealPlan{}
	byDay := make(map[domain.Weekday]domain.MealDay, 7)

	for i, rawDay := range body.Days {
		day, err := mealDay(i, rawDay)
		if err != nil {
			return nil, err
		}
		if _, dup := byDay[day.Day]; dup {
			plan.Warnings = append(plan.Warnings,
				fmt.Sprintf("duplicate entry for %s: keeping the last occurrence", day.Day))
		}
		byDay[day.Day] = day
	}

	// Exactly seven days, Monday first, padding the ones the endpoint
	// left out.
	plan.Days = make([]domain.MealDay, 0, 7)
	for _, wd := range domain.AllWeekdays {
		if day, ok := byDay[wd]; ok {
			plan.Days = append(plan.Days, day)
			continue
		}
		plan.Days = append(plan.Days, domain.MealDay{Day: wd})
	}

	for _, line := range body.ShoppingList {
		ing := ParseIngredientLine(line)
		if ing.Name == "" {
			continue
		}
		plan.ShoppingList = append(plan.ShoppingList, domain.ShoppingListEntry{
			Name:          ing.Name,
			TotalQuantity: ing.Quantity,
			Unit:          ing.Unit,
			SourceCount:   1,
		})
	}

	return plan, nil
}

func mealDay(i int, raw json.RawMessage) (domain.MealDay, error) {
	var entry struct {
		Day   string `json:"day"`
		Meals []struct {
			Title    string `json:"title"`
			Servings any    `json:"servings"`
		} `json:"meals"`
	}
	if err := json.Unmarshal(raw, &entry); err != nil {
		return domain.MealDay{}, &domain.ValidationError{
			Field: fmt.Sprintf("days[%d]", i), Reason: "expected an object"}
	}

	wd, ok := domain.WeekdayFromString(entry.Day)
	if !ok {
		return domain.MealDay{}, &domain.ValidationError{
			Field: fmt.Sprintf("days[%d].day", i), Reason: fmt.Sprintf("unknown weekday %q", entry.Day)}
	}

	day := domain.MealDay{Day: wd}
	for j, m := range entry.Meals {
		if m.Title == "" {
			continue
		}
		servings := 1
		n, err := coerceNumber(fmt.Sprintf("days[%d].meals[%d].servings", i, j), m.Servings)
		if err != nil {
			return domain.MealDay{}, err
		}
		if n != nil && *n >= 1 {
			servings = int(*n)
		}
		day.Meals = append(day.Meals, domain.MealRef{Title: m.Title, Servings: servings})
	}
	return day, nil
}

// Scan normalizes a /scan response into suggestions. Entries with an empty
// title are dropped silently.
func Scan(raw []byte) ([]domain.ScanSuggestion, error) {
	var body struct {
		Recipes *[]struct {
			Title              string `json:"title"`
			MatchedIngredients []any  `json:"matchedIngredients"`
		} `json:"recipes"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, &domain.ValidationError{Field: "body", Reason: "not a JSON object"}
	}
	if body.Recipes == nil {
		return nil, &domain.ValidationError{Field: "recipes", Reason: "missing"}
	}

	out := make([]domain.ScanSuggestion, 0, len(*body.Recipes))
	for _, r := range *body.Recipes {
		if r.Title == "" {
			continue
		}
		s := domain.ScanSuggestion{Title: r.Title}
		for _, ing := range r.MatchedIngredients {
			if name := coerceString(ing); name != "" {
				s.MatchedIngredients = append(s.MatchedIngredients, name)
			}
		}
		out = append(out, s)
	}
	return out, nil
}
