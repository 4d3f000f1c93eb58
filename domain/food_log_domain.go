package domain

import (
	"errors"
	"time"
)

const (
	FoodLogTypeRecipe     = "recipe"
	FoodLogTypeIngredient = "ingredient"
)

var (
	MessageSuccessLogFood         = "food logged successfully"
	MessageSuccessGetDailySummary = "daily summary retrieved successfully"
	MessageSuccessDeleteFoodLog   = "food log deleted successfully"

	MessageFailedLogFood         = "failed to log food"
	MessageFailedGetDailySummary = "failed to retrieve daily summary"
	MessageFailedDeleteFoodLog   = "failed to delete food log"

	ErrFoodLogNotFound = notFound("food log entry not found")
	ErrInvalidLogDate  = errors.New("invalid date, expected YYYY-MM-DD")
)

type (
	LogRecipeRequest struct {
		RecipeID string     `json:"recipe_id" validate:"required,uuid"`
		Servings *float64   `json:"servings" validate:"omitempty,gt=0"`
		LoggedAt *time.Time `json:"logged_at"`
	}

	LogIngredientRequest struct {
		IngredientID string     `json:"ingredient_id" validate:"required,uuid"`
		Quantity     float64    `json:"quantity" validate:"gt=0"`
		Unit         string     `json:"unit"`
		LoggedAt     *time.Time `json:"logged_at"`
	}

	FoodLogEntry struct {
		ID           string      `json:"id"`
		Type         string      `json:"type"`
		RecipeID     *string     `json:"recipe_id"`
		IngredientID *string     `json:"ingredient_id"`
		Name         string      `json:"name"`
		Quantity     float64     `json:"quantity"`
		Unit         string      `json:"unit"`
		Macros       MacroTotals `json:"macros"`
		LoggedAt     time.Time   `json:"logged_at"`
	}

	DailySummaryResponse struct {
		Date    string         `json:"date"`
		Totals  MacroTotals    `json:"totals"`
		Entries []FoodLogEntry `json:"entries"`
	}
)
