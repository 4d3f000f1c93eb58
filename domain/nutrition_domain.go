package domain

import "math"

// MacroTotals is the calories/protein/carbs/fat aggregate of a consumption
// event or a recipe serving.
type MacroTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

func (m MacroTotals) Add(o MacroTotals) MacroTotals {
	return MacroTotals{
		Calories: m.Calories + o.Calories,
		Protein:  m.Protein + o.Protein,
		Carbs:    m.Carbs + o.Carbs,
		Fat:      m.Fat + o.Fat,
	}
}

// Rounded returns the totals rounded to one decimal place.
func (m MacroTotals) Rounded() MacroTotals {
	return MacroTotals{
		Calories: Round(m.Calories, 1),
		Protein:  Round(m.Protein, 1),
		Carbs:    Round(m.Carbs, 1),
		Fat:      Round(m.Fat, 1),
	}
}

func (m MacroTotals) ToMap() map[string]any {
	return map[string]any{
		"calories": m.Calories,
		"protein":  m.Protein,
		"carbs":    m.Carbs,
		"fat":      m.Fat,
	}
}

// Round rounds v half away from zero to the given number of decimals.
func Round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
