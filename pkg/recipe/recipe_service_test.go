package recipe

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"pantry-backend/domain"
	"pantry-backend/entities"
	"pantry-backend/internal/testutil"
	"pantry-backend/pkg/pantry"
	"pantry-backend/pkg/user"
)

func ptr[T any](v T) *T { return &v }

func TestRecipeService(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)

	rice := &entities.Ingredient{
		CanonicalName:    "rice",
		NutritionPer100g: datatypes.JSONMap{"calories": 130.0, "protein": 2.5, "carbohydrates": 28.0, "fat": 0.5},
		Translations:     []entities.IngredientTranslation{{Lang: "es", Name: "arroz"}},
	}
	onion := &entities.Ingredient{CanonicalName: "onion"}
	pasta := &entities.Ingredient{CanonicalName: "pasta"}
	beef := &entities.Ingredient{CanonicalName: "beef"}
	for _, ing := range []*entities.Ingredient{rice, onion, pasta, beef} {
		require.NoError(t, db.Create(ing).Error)
	}

	curry := &entities.Recipe{
		Source: "spoonacular", ExternalID: "1", TitleOriginal: "Veggie Curry", Servings: 2,
		Diets:               datatypes.JSONSlice[string]{"vegan"},
		NutritionPerServing: datatypes.JSONMap{"calories": 420.0, "carbs": 60.0},
		InstructionsRaw:     "Cook.",
		Translations:        []entities.RecipeTranslation{{Lang: "es", Title: "Curry de verduras", Instructions: "Cocinar."}},
		Ingredients: []entities.RecipeIngredient{
			{IngredientID: rice.ID, Amount: ptr(200.0), Unit: ptr("g"), Position: 0},
			{IngredientID: onion.ID, Amount: ptr(1.0), Unit: ptr("pcs"), Position: 1},
		},
	}
	cheesePasta := &entities.Recipe{
		Source: "spoonacular", ExternalID: "2", TitleOriginal: "Cheese Pasta",
		Diets:            datatypes.JSONSlice[string]{"vegetarian"},
		IntolerancesWarn: datatypes.JSONSlice[string]{"dairy", "gluten"},
		Ingredients:      []entities.RecipeIngredient{{IngredientID: pasta.ID}},
	}
	steak := &entities.Recipe{
		Source: "spoonacular", ExternalID: "3", TitleOriginal: "Steak",
		Ingredients: []entities.RecipeIngredient{{IngredientID: beef.ID}},
	}
	empty := &entities.Recipe{Source: "spoonacular", ExternalID: "4", TitleOriginal: "Empty"}
	for _, r := range []*entities.Recipe{curry, cheesePasta, steak, empty} {
		require.NoError(t, db.Create(r).Error)
	}

	veggie := &entities.User{Email: "v@example.com", DietType: ptr("vegetarian"), Intolerances: datatypes.JSONSlice[string]{"dairy"}}
	require.NoError(t, db.Create(veggie).Error)
	stranger := uuid.NewString()

	require.NoError(t, db.Create(&entities.PantryItem{UserID: veggie.ID, IngredientID: rice.ID, Unit: "g", Quantity: 150}).Error)
	require.NoError(t, db.Create(&entities.PantryItem{UserID: veggie.ID, IngredientID: onion.ID, Unit: "kg", Quantity: 1}).Error)

	svc := NewRecipeService(NewRecipeRepository(db), pantry.NewPantryRepository(db), user.NewUserRepository(db), "es")

	t.Run("profile filters", func(t *testing.T) {
		res, err := svc.GetRecipes(ctx, domain.RecipeListQuery{UseUserProfile: true}, veggie.ID.String())
		require.NoError(t, err)
		assert.Equal(t, 1, res.TotalFiltered)
		require.Len(t, res.Recipes, 1)
		item := res.Recipes[0]
		assert.Equal(t, "Curry de verduras", item.Title)
		assert.Equal(t, 2, item.TotalIngredientsCount)
		assert.Equal(t, 60.0, item.MacrosPerServing.Carbs)
		require.NotNil(t, item.IsCompatibleWithUser)
		assert.True(t, *item.IsCompatibleWithUser)
	})

	t.Run("explicit filter wins over profile", func(t *testing.T) {
		res, err := svc.GetRecipes(ctx, domain.RecipeListQuery{DietType: "vegan", UseUserProfile: true}, stranger)
		require.NoError(t, err)
		require.Len(t, res.Recipes, 1)
		assert.Nil(t, res.Recipes[0].IsCompatibleWithUser)
	})

	t.Run("paginates after filtering", func(t *testing.T) {
		res, err := svc.GetRecipes(ctx, domain.RecipeListQuery{Skip: 1, Limit: 2}, veggie.ID.String())
		require.NoError(t, err)
		assert.Equal(t, 3, res.TotalFiltered)
		require.Len(t, res.Recipes, 2)

		assert.Equal(t, "Cheese Pasta", res.Recipes[0].Title)
		require.NotNil(t, res.Recipes[0].IsCompatibleWithUser)
		assert.False(t, *res.Recipes[0].IsCompatibleWithUser)
		assert.Equal(t, []string{"dairy"}, res.Recipes[0].IntoleranceWarnings)

		assert.Equal(t, "Steak", res.Recipes[1].Title)
		assert.False(t, *res.Recipes[1].IsCompatibleWithUser)
		assert.Equal(t, []string{}, res.Recipes[1].Diets)
	})

	t.Run("detail with availability", func(t *testing.T) {
		detail, err := svc.GetRecipeDetail(ctx, curry.ID.String(), veggie.ID.String())
		require.NoError(t, err)
		assert.Equal(t, "Cocinar.", detail.Instructions)
		require.Len(t, detail.Ingredients, 2)

		r := detail.Ingredients[0]
		assert.Equal(t, "arroz", r.Name)
		assert.False(t, r.IsAvailable)
		require.NotNil(t, r.PantryQuantity)
		assert.Equal(t, 150.0, *r.PantryQuantity)
		require.NotNil(t, r.MissingAmount)
		assert.Equal(t, 50.0, *r.MissingAmount)
		assert.Equal(t, 260.0, r.Nutrition.Calories)

		o := detail.Ingredients[1]
		assert.False(t, o.IsAvailable)
		require.NotNil(t, o.PantryUnit)
		assert.Equal(t, "kg", *o.PantryUnit)
		require.NotNil(t, o.MissingAmount)
		assert.Equal(t, 1.0, *o.MissingAmount)
	})

	t.Run("detail for user without pantry", func(t *testing.T) {
		detail, err := svc.GetRecipeDetail(ctx, curry.ID.String(), stranger)
		require.NoError(t, err)
		assert.Nil(t, detail.IsCompatibleWithUser)
		assert.Nil(t, detail.Ingredients[0].PantryQuantity)
		assert.Nil(t, detail.Ingredients[0].PantryUnit)
	})

	t.Run("unknown recipe", func(t *testing.T) {
		_, err := svc.GetRecipeDetail(ctx, uuid.NewString(), stranger)
		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	})
}
