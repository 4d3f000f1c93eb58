package domain

var (
	MessageSuccessSearchIngredients = "ingredients retrieved successfully"
	MessageFailedSearchIngredients  = "failed to search ingredients"
)

type (
	IngredientSearchQuery struct {
		Q      string `query:"q" validate:"required,min=2"`
		Limit  int    `query:"limit" validate:"min=0"`
		Offset int    `query:"offset" validate:"min=0"`
	}

	IngredientResponse struct {
		ID            string `json:"id"`
		Name          string `json:"name"`
		CanonicalName string `json:"canonical_name"`
		Category      string `json:"category,omitempty"`
		HasNutrition  bool   `json:"has_nutrition"`
	}
)
