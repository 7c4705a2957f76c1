package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hazemq/souschef/internal/domain"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name         string
		payload      string
		wantErr      string
		wantTitle    string
		wantComplete bool
		wantMinutes  *float64
	}{
		{
			name:         "full payload",
			payload:      `{"title":"Shakshuka","shopping_list":["4 eggs","1 can tomatoes"],"steps":["Simmer sauce","Crack eggs"],"time_estimate":25}`,
			wantTitle:    "Shakshuka",
			wantComplete: true,
			wantMinutes:  ptr(25.0),
		},
		{
			name:         "missing title defaults",
			payload:      `{"steps":["Stir"]}`,
			wantTitle:    DefaultTitle,
			wantComplete: true,
		},
		{
			name:         "missing steps flags incomplete",
			payload:      `{"title":"Mystery Dish","shopping_list":["1 cup rice"]}`,
			wantTitle:    "Mystery Dish",
			wantComplete: false,
		},
		{
			name:         "lenient time estimate",
			payload:      `{"title":"Stew","steps":["Simmer"],"time_estimate":"about 45 min"}`,
			wantTitle:    "Stew",
			wantComplete: true,
			wantMinutes:  ptr(45.0),
		},
		{
			name:         "unparseable time estimate falls back to nil",
			payload:      `{"title":"Stew","steps":["Simmer"],"time_estimate":"a while"}`,
			wantTitle:    "Stew",
			wantComplete: true,
		},
		{
			name:    "structurally wrong time estimate fails",
			payload: `{"title":"Stew","steps":["Simmer"],"time_estimate":{"min":20}}`,
			wantErr: "time_estimate",
		},
		{
			name:    "not json",
			payload: `[[`,
			wantErr: "body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Extract([]byte(tt.payload))
			if tt.wantErr != "" {
				var verr *domain.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.wantErr, verr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTitle, r.Title)
			assert.Equal(t, tt.wantComplete, domain.CompleteRecipe(r))
			assert.Equal(t, !tt.wantComplete, r.Incomplete)
			assert.Equal(t, tt.wantMinutes, r.TimeEstimateMinutes)
		})
	}
}

func TestExtractNutrition(t *testing.T) {
	r, err := Extract([]byte(`{"title":"Bowl","steps":["Mix"],"nutrition":{"calories":"520 kcal","protein_g":32,"fat_g":-4}}`))
	require.NoError(t, err)

	cal, ok := r.Nutrients.Calories()
	require.True(t, ok)
	assert.Equal(t, 520.0, cal)
	assert.Equal(t, 32.0, r.Nutrients["protein_g"])

	_, ok = r.Nutrients["fat_g"]
	assert.False(t, ok, "negative values are unknown, not stored")

	_, err = Extract([]byte(`{"title":"Bowl","steps":["Mix"],"nutrition":{"calories":[500]}}`))
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "nutrition.calories", verr.Field)
}

func TestCaption(t *testing.T) {
	c, err := Caption([]byte(`{"caption":"10-minute shakshuka","tags":["breakfast","eggs"]}`))
	require.NoError(t, err)
	assert.Equal(t, "10-minute shakshuka", c.Caption)
	assert.Equal(t, []string{"breakfast", "eggs"}, c.Tags)

	// Empty caption is valid.
	c, err = Caption([]byte(`{"caption":""}`))
	require.NoError(t, err)
	assert.Equal(t, "", c.Caption)

	// Absent caption key is not.
	_, err = Caption([]byte(`{"tags":["x"]}`))
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "caption", verr.Field)
}

func TestMealPlanPadsToSevenDays(t *testing.T) {
	plan, err := MealPlan([]byte(`{"days":[
		{"day":"Mon","meals":[{"title":"Pasta","servings":2}]},
		{"day":"Wed","meals":[{"title":"Soup","servings":1}]}
	]}`))
	require.NoError(t, err)

	require.Len(t, plan.Days, 7)
	for i, wd := range domain.AllWeekdays {
		assert.Equal(t, wd, plan.Days[i].Day)
	}
	assert.Len(t, plan.Days[0].Meals, 1)
	assert.Empty(t, plan.Days[1].Meals, "padded day has no meals")
	assert.Len(t, plan.Days[2].Meals, 1)
	assert.Empty(t, plan.Warnings)
}

func TestMealPlanDuplicateDayKeepsLast(t *testing.T) {
	plan, err := MealPlan([]byte(`{"days":[
		{"day":"Mon","meals":[{"title":"First","servings":1}]},
		{"day":"monday","meals":[{"title":"Second","servings":1}]}
	]}`))
	require.NoError(t, err)

	require.Len(t, plan.Days[0].Meals, 1)
	assert.Equal(t, "Second", plan.Days[0].Meals[0].Title)
	require.Len(t, plan.Warnings, 1)
	assert.Contains(t, plan.Warnings[0], "Mon")
}

func TestMealPlanUnknownWeekday(t *testing.T) {
	_, err := MealPlan([]byte(`{"days":[{"day":"Funday","meals":[]}]}`))
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "days[0].day", verr.Field)
}

func TestScanDropsEmptyTitles(t *testing.T) {
	got, err := Scan([]byte(`{"recipes":[
		{"title":"Veggie Omelette","matchedIngredients":["eggs","spinach"]},
		{"title":""},
		{"title":"Fried Rice"}
	]}`))
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "Veggie Omelette", got[0].Title)
	assert.Equal(t, []string{"eggs", "spinach"}, got[0].MatchedIngredients)
	assert.Equal(t, "Fried Rice", got[1].Title)

	_, err = Scan([]byte(`{}`))
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "recipes", verr.Field)
}

func ptr(f float64) *float64 { return &f }
