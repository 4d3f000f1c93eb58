package foodlog

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"pantry-backend/domain"
	"pantry-backend/entities"
	"pantry-backend/internal/testutil"
	"pantry-backend/pkg/ingredient"
	"pantry-backend/pkg/recipe"
)

func TestFoodLogService(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	userID := uuid.NewString()
	day := time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)

	bowl := &entities.Recipe{
		Source: "spoonacular", ExternalID: "7", TitleOriginal: "Rice Bowl",
		NutritionPerServing: datatypes.JSONMap{"calories": 500.0, "protein": 20.0, "carbs": 70.0, "fat": 10.0},
		Translations:        []entities.RecipeTranslation{{Lang: "es", Title: "Bol de arroz"}},
	}
	require.NoError(t, db.Create(bowl).Error)
	oats := &entities.Ingredient{
		CanonicalName:    "oats",
		NutritionPer100g: datatypes.JSONMap{"calories": 389.0, "protein": 16.0, "carbohydrates": 66.0, "fat": 7.0},
	}
	require.NoError(t, db.Create(oats).Error)

	svc := NewFoodLogService(NewFoodLogRepository(db), recipe.NewRecipeRepository(db), ingredient.NewIngredientRepository(db), "es").(*foodLogService)
	svc.now = func() time.Time { return day.Add(9 * time.Hour) }

	var recipeEntry domain.FoodLogEntry

	t.Run("log recipe defaults to one serving", func(t *testing.T) {
		var err error
		recipeEntry, err = svc.LogRecipe(ctx, domain.LogRecipeRequest{RecipeID: bowl.ID.String()}, userID)
		require.NoError(t, err)
		assert.Equal(t, "Bol de arroz", recipeEntry.Name)
		assert.Equal(t, 1.0, recipeEntry.Quantity)
		assert.Equal(t, "servings", recipeEntry.Unit)
		assert.Equal(t, domain.MacroTotals{Calories: 500, Protein: 20, Carbs: 70, Fat: 10}, recipeEntry.Macros)
	})

	t.Run("log ingredient defaults to grams", func(t *testing.T) {
		at := day.Add(10 * time.Hour)
		entry, err := svc.LogIngredient(ctx, domain.LogIngredientRequest{IngredientID: oats.ID.String(), Quantity: 50, LoggedAt: &at}, userID)
		require.NoError(t, err)
		assert.Equal(t, "g", entry.Unit)
		assert.Equal(t, domain.MacroTotals{Calories: 194.5, Protein: 8, Carbs: 33, Fat: 3.5}, entry.Macros)
	})

	t.Run("log on another day", func(t *testing.T) {
		at := day.AddDate(0, 0, -1).Add(23 * time.Hour)
		_, err := svc.LogRecipe(ctx, domain.LogRecipeRequest{RecipeID: bowl.ID.String(), LoggedAt: &at}, userID)
		require.NoError(t, err)
	})

	t.Run("snapshot survives nutrition change", func(t *testing.T) {
		bowl.NutritionPerServing = datatypes.JSONMap{"calories": 900.0}
		require.NoError(t, db.Model(bowl).Update("nutrition_per_serving", bowl.NutritionPerServing).Error)

		summary, err := svc.DailySummary(ctx, "", userID)
		require.NoError(t, err)
		assert.Equal(t, "2026-05-04", summary.Date)
		require.Len(t, summary.Entries, 2)
		assert.Equal(t, 500.0, summary.Entries[0].Macros.Calories)
		assert.Equal(t, domain.MacroTotals{Calories: 694.5, Protein: 28, Carbs: 103, Fat: 13.5}, summary.Totals)
	})

	t.Run("entry without snapshot is recomputed", func(t *testing.T) {
		at := day.AddDate(0, 0, 1).Add(8 * time.Hour)
		require.NoError(t, db.Create(&entities.UserFoodLog{
			UserID: uuid.MustParse(userID), Type: domain.FoodLogTypeRecipe, RecipeID: &bowl.ID,
			Quantity: 2, Unit: "servings", LoggedAt: at,
		}).Error)

		summary, err := svc.DailySummary(ctx, "2026-05-05", userID)
		require.NoError(t, err)
		require.Len(t, summary.Entries, 1)
		assert.Equal(t, 1800.0, summary.Totals.Calories)
	})

	t.Run("invalid date", func(t *testing.T) {
		_, err := svc.DailySummary(ctx, "05/04/2026", userID)
		assert.ErrorIs(t, err, domain.ErrInvalidLogDate)
	})

	t.Run("delete", func(t *testing.T) {
		err := svc.DeleteFoodLog(ctx, recipeEntry.ID, uuid.NewString())
		assert.ErrorIs(t, err, domain.ErrFoodLogNotFound)

		require.NoError(t, svc.DeleteFoodLog(ctx, recipeEntry.ID, userID))
		err = svc.DeleteFoodLog(ctx, recipeEntry.ID, userID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.LogRecipe(ctx, domain.LogRecipeRequest{RecipeID: uuid.NewString()}, userID)
		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
		_, err = svc.LogIngredient(ctx, domain.LogIngredientRequest{IngredientID: uuid.NewString(), Quantity: 1}, userID)
		assert.ErrorIs(t, err, domain.ErrIngredientNotFound)
	})
}
