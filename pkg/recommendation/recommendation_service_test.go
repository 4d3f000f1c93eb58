package recommendation

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pantry-backend/entities"
	"pantry-backend/internal/testutil"
	"pantry-backend/pkg/pantry"
	"pantry-backend/pkg/recipe"
)

func TestExpiringRecommendations(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	userID := uuid.New()

	ingredients := map[string]*entities.Ingredient{}
	for _, name := range []string{"egg", "milk", "flour", "cheese", "bread"} {
		ing := &entities.Ingredient{CanonicalName: name}
		if name == "egg" {
			ing.Translations = []entities.IngredientTranslation{{Lang: "es", Name: "huevo"}}
		}
		require.NoError(t, db.Create(ing).Error)
		ingredients[name] = ing
	}

	stock := map[string]*time.Time{
		"egg":    expiresIn(0, 6),
		"milk":   expiresIn(1, 10),
		"cheese": expiresIn(5, 0),
		"flour":  nil,
	}
	for name, exp := range stock {
		require.NoError(t, db.Create(&entities.PantryItem{
			UserID: userID, IngredientID: ingredients[name].ID, Unit: "g", Quantity: 1, ExpiresAt: exp,
		}).Error)
	}

	newRecipe := func(id, title string, names ...string) {
		r := &entities.Recipe{Source: "spoonacular", ExternalID: id, TitleOriginal: title, Servings: 2}
		for i, n := range names {
			r.Ingredients = append(r.Ingredients, entities.RecipeIngredient{IngredientID: ingredients[n].ID, Position: i})
		}
		require.NoError(t, db.Create(r).Error)
	}
	newRecipe("1", "Latte", "milk")
	newRecipe("2", "Pancakes", "milk", "egg", "flour")
	newRecipe("3", "Omelette", "egg", "milk")
	newRecipe("4", "Cheese Toast", "cheese", "bread")

	svc := NewRecommendationService(pantry.NewPantryRepository(db), recipe.NewRecipeRepository(db), "es").(*recommendationService)
	svc.now = func() time.Time { return today.Add(12*time.Hour + 34*time.Minute) }

	recs, err := svc.ExpiringRecommendations(ctx, userID.String(), 3, 20)
	require.NoError(t, err)
	require.Len(t, recs, 3)

	assert.Equal(t, "Omelette", recs[0].Title)
	assert.Equal(t, 1.0, recs[0].CoverageRatio)
	assert.Equal(t, "Pancakes", recs[1].Title)
	assert.Equal(t, 0.67, recs[1].CoverageRatio)
	assert.Equal(t, 3, recs[1].TotalCount)
	assert.Equal(t, "Latte", recs[2].Title)

	require.Len(t, recs[0].ExpiringIngredients, 2)
	assert.Equal(t, "huevo", recs[0].ExpiringIngredients[0].Name)
	assert.Equal(t, 0, recs[0].ExpiringIngredients[0].DaysUntilExpiry)
	assert.Equal(t, "2026-03-10", recs[0].ExpiringIngredients[0].ExpiresAt)
	assert.Equal(t, "milk", recs[0].ExpiringIngredients[1].Name)
	assert.Equal(t, 1, recs[0].ExpiringIngredients[1].DaysUntilExpiry)

	t.Run("limit", func(t *testing.T) {
		recs, err := svc.ExpiringRecommendations(ctx, userID.String(), 3, 1)
		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, "Omelette", recs[0].Title)
	})

	t.Run("nothing expiring", func(t *testing.T) {
		recs, err := svc.ExpiringRecommendations(ctx, uuid.NewString(), 3, 20)
		require.NoError(t, err)
		assert.Empty(t, recs)
		assert.NotNil(t, recs)
	})
}
