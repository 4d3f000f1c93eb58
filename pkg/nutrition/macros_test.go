package nutrition

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pantry-backend/domain"
)

func TestRecipeMacros(t *testing.T) {
	facts := &Facts{Calories: 250.55, Protein: 12.34, Carbohydrates: 30, Fat: 8.25}

	t.Run("scales and rounds each field", func(t *testing.T) {
		for _, servings := range []float64{0, 0.5, 1, 2, 3.3} {
			got := RecipeMacros(facts, servings)
			assert.Equal(t, domain.Round(facts.Calories*servings, 1), got.Calories)
			assert.Equal(t, domain.Round(facts.Protein*servings, 1), got.Protein)
			assert.Equal(t, domain.Round(facts.Carbohydrates*servings, 1), got.Carbs)
			assert.Equal(t, domain.Round(facts.Fat*servings, 1), got.Fat)
		}
	})

	t.Run("absent nutrition yields zero totals", func(t *testing.T) {
		assert.Equal(t, domain.MacroTotals{}, RecipeMacros(nil, 2))
	})
}

func TestIngredientMacros(t *testing.T) {
	per100g := &Facts{Calories: 52, Protein: 0.4, Carbohydrates: 14, Fat: 0.2}

	t.Run("grams", func(t *testing.T) {
		got := IngredientMacros(per100g, 150, "g")
		assert.Equal(t, domain.MacroTotals{Calories: 78, Protein: 0.6, Carbs: 21, Fat: 0.3}, got)
	})

	t.Run("kilograms convert to grams", func(t *testing.T) {
		assert.Equal(t, IngredientMacros(per100g, 1000, "g"), IngredientMacros(per100g, 1, "kg"))
	})

	t.Run("gram aliases", func(t *testing.T) {
		want := IngredientMacros(per100g, 200, "g")
		assert.Equal(t, want, IngredientMacros(per100g, 200, "gr"))
		assert.Equal(t, want, IngredientMacros(per100g, 200, "gramos"))
	})

	t.Run("other units are approximate grams", func(t *testing.T) {
		assert.Equal(t, IngredientMacros(per100g, 3, "g"), IngredientMacros(per100g, 3, "pcs"))
	})

	t.Run("linear in grams", func(t *testing.T) {
		for _, unit := range []string{"g", "kg"} {
			single := IngredientMacros(per100g, 100, unit)
			double := IngredientMacros(per100g, 200, unit)
			assert.InDelta(t, single.Calories*2, double.Calories, 0.11)
			assert.InDelta(t, single.Carbs*2, double.Carbs, 0.11)
		}
	})

	t.Run("missing nutrition", func(t *testing.T) {
		assert.Equal(t, domain.MacroTotals{}, IngredientMacros(nil, 100, "g"))
	})
}

func TestFromMap(t *testing.T) {
	t.Run("aliases", func(t *testing.T) {
		got := FromMap(map[string]any{"kcal": 100.0, "carbs": 20, "protein": "5", "fat": json.Number("1.5")})
		require.NotNil(t, got)
		assert.Equal(t, Facts{Calories: 100, Protein: 5, Carbohydrates: 20, Fat: 1.5}, *got)
	})

	t.Run("primary key wins", func(t *testing.T) {
		got := FromMap(map[string]any{"calories": 90.0, "kcal": 100.0, "carbohydrates": 10.0, "carbs": 20.0})
		require.NotNil(t, got)
		assert.Equal(t, 90.0, got.Calories)
		assert.Equal(t, 10.0, got.Carbohydrates)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Nil(t, FromMap(nil))
		assert.Nil(t, FromMap(map[string]any{}))
	})
}

func TestFromNutrients(t *testing.T) {
	got := FromNutrients([]Nutrient{
		{Name: "Calories", Amount: 320},
		{Name: "Fat", Amount: 10},
		{Name: "Carbohydrates", Amount: 40},
		{Name: "Protein", Amount: 15},
		{Name: "Sodium", Amount: 500},
	})
	require.NotNil(t, got)
	assert.Equal(t, Facts{Calories: 320, Protein: 15, Carbohydrates: 40, Fat: 10}, *got)
	assert.Len(t, got.Map(), 4)

	assert.Nil(t, FromNutrients([]Nutrient{{Name: "Sugar", Amount: 3}}))
}

func TestSnapshotFromMap(t *testing.T) {
	snap, ok := SnapshotFromMap(domain.MacroTotals{Calories: 10, Protein: 1, Carbs: 2, Fat: 3}.ToMap())
	assert.True(t, ok)
	assert.Equal(t, domain.MacroTotals{Calories: 10, Protein: 1, Carbs: 2, Fat: 3}, snap)

	_, ok = SnapshotFromMap(map[string]any{})
	assert.False(t, ok)
}
