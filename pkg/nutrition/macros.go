// Package nutrition computes macro totals for recipe servings and raw
// ingredient quantities.
package nutrition

import (
	"encoding/json"
	"strconv"
	"strings"

	"pantry-backend/domain"
)

// Facts is the canonical macro record for either one recipe serving or
// 100 g of an ingredient. Aliased source keys are resolved when a Facts
// value is built, nowhere else.
type Facts struct {
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fat           float64 `json:"fat"`
}

// Nutrient is one entry of a provider nutrition payload.
type Nutrient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit,omitempty"`
}

var keyAliases = map[string][2]string{
	"calories":      {"calories", "kcal"},
	"protein":       {"protein", ""},
	"carbohydrates": {"carbohydrates", "carbs"},
	"fat":           {"fat", ""},
}

// FromMap normalizes a loosely keyed nutrition map. A nil or empty map
// yields nil.
func FromMap(m map[string]any) *Facts {
	if len(m) == 0 {
		return nil
	}
	lookup := func(field string) float64 {
		keys := keyAliases[field]
		if v := toFloat(m[keys[0]]); v != 0 {
			return v
		}
		if keys[1] == "" {
			return 0
		}
		return toFloat(m[keys[1]])
	}
	return &Facts{
		Calories:      lookup("calories"),
		Protein:       lookup("protein"),
		Carbohydrates: lookup("carbohydrates"),
		Fat:           lookup("fat"),
	}
}

// FromNutrients keeps the four macro nutrients of a provider payload and
// discards everything else. Names are matched case-insensitively.
func FromNutrients(nutrients []Nutrient) *Facts {
	if len(nutrients) == 0 {
		return nil
	}
	m := make(map[string]any, 4)
	for _, n := range nutrients {
		key := strings.ToLower(strings.TrimSpace(n.Name))
		if _, ok := keyAliases[key]; ok {
			m[key] = n.Amount
			continue
		}
		switch key {
		case "carbs", "kcal":
			m[key] = n.Amount
		}
	}
	if len(m) == 0 {
		return nil
	}
	return FromMap(m)
}

// Map returns the storage form of f, keyed by canonical names only.
func (f *Facts) Map() map[string]any {
	if f == nil {
		return nil
	}
	return map[string]any{
		"calories":      f.Calories,
		"protein":       f.Protein,
		"carbohydrates": f.Carbohydrates,
		"fat":           f.Fat,
	}
}

// RecipeMacros scales per-serving nutrition by the servings consumed.
func RecipeMacros(perServing *Facts, servings float64) domain.MacroTotals {
	if perServing == nil {
		return domain.MacroTotals{}
	}
	return scale(perServing, servings)
}

// IngredientMacros scales per-100g nutrition by a quantity. Only "kg" is
// converted; "g", "gr" and "gramos" are grams and any other unit is taken
// as an approximate gram count.
func IngredientMacros(per100g *Facts, quantity float64, unit string) domain.MacroTotals {
	if per100g == nil {
		return domain.MacroTotals{}
	}
	return scale(per100g, Grams(quantity, unit)/100)
}

func Grams(quantity float64, unit string) float64 {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "kg":
		return quantity * 1000
	default:
		return quantity
	}
}

func scale(f *Facts, multiplier float64) domain.MacroTotals {
	return domain.MacroTotals{
		Calories: f.Calories * multiplier,
		Protein:  f.Protein * multiplier,
		Carbs:    f.Carbohydrates * multiplier,
		Fat:      f.Fat * multiplier,
	}.Rounded()
}

// SnapshotFromMap reads a stored MacroTotals snapshot. It reports false
// when the snapshot is absent.
func SnapshotFromMap(m map[string]any) (domain.MacroTotals, bool) {
	if len(m) == 0 {
		return domain.MacroTotals{}, false
	}
	carbs := toFloat(m["carbs"])
	if carbs == 0 {
		carbs = toFloat(m["carbohydrates"])
	}
	return domain.MacroTotals{
		Calories: toFloat(m["calories"]),
		Protein:  toFloat(m["protein"]),
		Carbs:    carbs,
		Fat:      toFloat(m["fat"]),
	}, true
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, _ := n.Float64()
		return f
	case string:
		f, _ := strconv.ParseFloat(n, 64)
		return f
	default:
		return 0
	}
}
