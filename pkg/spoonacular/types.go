package spoonacular

import "pantry-backend/pkg/nutrition"

type (
	Nutrition struct {
		Nutrients []nutrition.Nutrient `json:"nutrients"`
	}

	ExtendedIngredient struct {
		ID       int     `json:"id"`
		Name     string  `json:"name"`
		Amount   float64 `json:"amount"`
		Unit     string  `json:"unit"`
		Original string  `json:"original"`
		Aisle    string  `json:"aisle"`
	}

	RecipeInformation struct {
		ID                  int                  `json:"id"`
		Title               string               `json:"title"`
		Image               string               `json:"image"`
		Servings            int                  `json:"servings"`
		Diets               []string             `json:"diets"`
		Instructions        string               `json:"instructions"`
		Summary             string               `json:"summary"`
		GlutenFree          bool                 `json:"glutenFree"`
		DairyFree           bool                 `json:"dairyFree"`
		Nutrition           *Nutrition           `json:"nutrition"`
		ExtendedIngredients []ExtendedIngredient `json:"extendedIngredients"`
	}

	IngredientInformation struct {
		ID        int        `json:"id"`
		Name      string     `json:"name"`
		Aisle     string     `json:"aisle"`
		Amount    float64    `json:"amount"`
		Unit      string     `json:"unit"`
		Nutrition *Nutrition `json:"nutrition"`
	}

	SearchParams struct {
		Query        string
		Diet         string
		Intolerances []string
		Offset       int
		Number       int
	}

	SearchResult struct {
		Results      []RecipeInformation `json:"results"`
		Offset       int                 `json:"offset"`
		Number       int                 `json:"number"`
		TotalResults int                 `json:"totalResults"`
	}
)

// Macros returns the canonical macro record of the payload, nil when it
// carries no nutrition.
func (n *Nutrition) Macros() *nutrition.Facts {
	if n == nil {
		return nil
	}
	return nutrition.FromNutrients(n.Nutrients)
}

// IntoleranceWarnings derives the intolerance labels a recipe triggers
// from the provider's free-from flags.
func (r *RecipeInformation) IntoleranceWarnings() []string {
	warnings := []string{}
	if !r.GlutenFree {
		warnings = append(warnings, "gluten")
	}
	if !r.DairyFree {
		warnings = append(warnings, "dairy")
	}
	return warnings
}
