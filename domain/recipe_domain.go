package domain

import "errors"

var (
	MessageSuccessGetRecipes         = "success get recipes"
	MessageSuccessGetRecipeDetail    = "success get recipe detail"
	MessageSuccessImportRecipe       = "recipe imported successfully"
	MessageSuccessGetRecommendations = "success get expiring recommendations"

	MessageFailedGetRecipes         = "failed to get recipes"
	MessageFailedGetRecipeDetail    = "failed to get recipe detail"
	MessageFailedImportRecipe       = "failed to import recipe"
	MessageFailedGetRecommendations = "failed to get expiring recommendations"

	ErrRecipeNotFound        = notFound("recipe not found")
	ErrIngredientNotInRecipe = notFound("ingredient not found in recipe")
	ErrInvalidExternalID     = errors.New("spoonacular id must be a positive number")
)

type (
	RecipeListQuery struct {
		Skip                int      `query:"skip" validate:"min=0"`
		Limit               int      `query:"limit" validate:"min=1,max=100"`
		DietType            string   `query:"diet_type"`
		ExcludeIntolerances []string `query:"exclude_intolerances"`
		UseUserProfile      bool     `query:"use_user_profile"`
	}

	RecipeListItem struct {
		ID                    string      `json:"id"`
		Title                 string      `json:"title"`
		ImageURL              string      `json:"image_url,omitempty"`
		Servings              int         `json:"servings"`
		Diets                 []string    `json:"diets"`
		MacrosPerServing      MacroTotals `json:"macros_per_serving"`
		IsCompatibleWithUser  *bool       `json:"is_compatible_with_user"`
		IntoleranceWarnings   []string    `json:"intolerance_warnings"`
		TotalIngredientsCount int         `json:"total_ingredients_count"`
	}

	RecipeListResponse struct {
		Recipes       []RecipeListItem `json:"recipes"`
		TotalFiltered int              `json:"total_filtered"`
	}

	RecipeIngredientDetail struct {
		IngredientID   string      `json:"ingredient_id"`
		Name           string      `json:"name"`
		CanonicalName  string      `json:"canonical_name"`
		Amount         *float64    `json:"amount"`
		Nutrition      MacroTotals `json:"nutrition"`
		Unit           *string     `json:"unit"`
		Note           string      `json:"note,omitempty"`
		IsAvailable    bool        `json:"is_available"`
		PantryQuantity *float64    `json:"pantry_quantity"`
		PantryUnit     *string     `json:"pantry_unit"`
		MissingAmount  *float64    `json:"missing_quantity"`
	}

	RecipeDetail struct {
		ID                   string                   `json:"id"`
		Title                string                   `json:"title"`
		ImageURL             string                   `json:"image_url,omitempty"`
		Servings             int                      `json:"servings"`
		Diets                []string                 `json:"diets"`
		Instructions         string                   `json:"instructions"`
		Summary              string                   `json:"summary,omitempty"`
		MacrosPerServing     MacroTotals              `json:"macros_per_serving"`
		IsCompatibleWithUser *bool                    `json:"is_compatible_with_user"`
		IntoleranceWarnings  []string                 `json:"intolerance_warnings"`
		Ingredients          []RecipeIngredientDetail `json:"ingredients"`
	}

	ImportRecipeResponse struct {
		RecipeID           string `json:"recipe_id"`
		Title              string `json:"title"`
		Created            bool   `json:"created"`
		NewIngredients     int    `json:"new_ingredients"`
		IngredientsLinked  int    `json:"ingredients_linked"`
		TotalIngredients   int    `json:"total_ingredients"`
		TranslationsQueued int    `json:"translations_queued"`
	}

	ImportSearchRequest struct {
		Query        string   `json:"query"`
		Diet         string   `json:"diet"`
		Intolerances []string `json:"intolerances"`
		Number       int      `json:"number" validate:"omitempty,min=1,max=100"`
	}

	ImportBatchResponse struct {
		Imported []ImportRecipeResponse `json:"imported"`
		Failed   []string               `json:"failed"`
	}

	ExpiringIngredient struct {
		IngredientID    string `json:"ingredient_id"`
		Name            string `json:"name"`
		ExpiresAt       string `json:"expires_at"`
		DaysUntilExpiry int    `json:"days_until_expiry"`
	}

	ExpiringRecipeRecommendation struct {
		RecipeID            string               `json:"recipe_id"`
		Title               string               `json:"title"`
		ImageURL            string               `json:"image_url,omitempty"`
		Servings            int                  `json:"servings"`
		MacrosPerServing    MacroTotals          `json:"macros_per_serving"`
		ExpiringCount       int                  `json:"expiring_ingredients_count"`
		TotalCount          int                  `json:"total_ingredients_count"`
		CoverageRatio       float64              `json:"coverage_ratio"`
		ExpiringIngredients []ExpiringIngredient `json:"expiring_ingredients"`
	}
)
