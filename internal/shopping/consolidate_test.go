package shopping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hazemq/souschef/internal/domain"
)

func ing(name string, qty *float64, unit *string) domain.Ingredient {
	return domain.Ingredient{Name: name, Quantity: qty, Unit: unit}
}

func ptr(f float64) *float64 { return &f }
func sptr(s string) *string  { return &s }

func TestConsolidateMergesSameUnit(t *testing.T) {
	got := Consolidate([]Contribution{
		{Ingredient: ing("Egg", ptr(2), sptr("pcs")), Servings: 3},
		{Ingredient: ing("egg", ptr(1), sptr("pcs")), Servings: 1},
	})

	require.Len(t, got, 1)
	assert.Equal(t, "Egg", got[0].Name, "first-seen casing wins")
	require.NotNil(t, got[0].TotalQuantity)
	assert.Equal(t, 7.0, *got[0].TotalQuantity)
	require.NotNil(t, got[0].Unit)
	assert.Equal(t, "pcs", *got[0].Unit)
	assert.Equal(t, 2, got[0].SourceCount)
}

func TestConsolidateUnitMismatch(t *testing.T) {
	got := Consolidate([]Contribution{
		{Ingredient: ing("Flour", ptr(1), sptr("cup")), Servings: 1},
		{Ingredient: ing("Flour", ptr(200), sptr("g")), Servings: 1},
	})

	require.Len(t, got, 1)
	assert.Nil(t, got[0].TotalQuantity, "mismatched units make the quantity unknown")
	assert.Nil(t, got[0].Unit)
	assert.Equal(t, 2, got[0].SourceCount)
}

func TestConsolidateUnknownQuantityPoisonsGroup(t *testing.T) {
	got := Consolidate([]Contribution{
		{Ingredient: ing("Basil", ptr(1), sptr("pinch")), Servings: 1},
		{Ingredient: ing("basil", nil, nil), Servings: 1},
	})

	require.Len(t, got, 1)
	assert.Nil(t, got[0].TotalQuantity)
	assert.Nil(t, got[0].Unit)
	assert.Equal(t, 2, got[0].SourceCount)
}

func TestConsolidateFirstSeenOrder(t *testing.T) {
	input := []Contribution{
		{Ingredient: ing("Tomatoes", ptr(4), nil), Servings: 1},
		{Ingredient: ing("Onion", ptr(1), nil), Servings: 1},
		{Ingredient: ing("tomatoes", ptr(2), nil), Servings: 1},
		{Ingredient: ing("Garlic", ptr(3), sptr("clove")), Servings: 1},
	}

	got := Consolidate(input)
	require.Len(t, got, 3)
	assert.Equal(t, "Tomatoes", got[0].Name)
	assert.Equal(t, "Onion", got[1].Name)
	assert.Equal(t, "Garlic", got[2].Name)

	// Deterministic: a second run over the same input is identical.
	assert.Equal(t, got, Consolidate(input))
}

func TestConsolidateEmptyNamesSkipped(t *testing.T) {
	got := Consolidate([]Contribution{
		{Ingredient: ing("  ", ptr(1), nil), Servings: 1},
		{Ingredient: ing("Rice", ptr(1), sptr("cup")), Servings: 2},
	})

	require.Len(t, got, 1)
	assert.Equal(t, "Rice", got[0].Name)
	require.NotNil(t, got[0].TotalQuantity)
	assert.Equal(t, 2.0, *got[0].TotalQuantity)
}
