package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pantry-backend/domain"
	"pantry-backend/internal/utils"
)

type recordingRecipeService struct {
	query domain.RecipeListQuery
}

func (s *recordingRecipeService) GetRecipes(_ context.Context, query domain.RecipeListQuery, _ string) (domain.RecipeListResponse, error) {
	s.query = query
	return domain.RecipeListResponse{}, nil
}

func (s *recordingRecipeService) GetRecipeDetail(context.Context, string, string) (domain.RecipeDetail, error) {
	return domain.RecipeDetail{}, domain.ErrRecipeNotFound
}

func TestGetRecipesQuery(t *testing.T) {
	svc := &recordingRecipeService{}
	h := NewRecipeHandler(svc, nil, nil, utils.NewValidator())

	app := fiber.New()
	app.Get("/recipes", func(c *fiber.Ctx) error {
		c.Locals("user_id", "u-1")
		return c.Next()
	}, h.GetRecipes)

	get := func(target string) int {
		t.Helper()
		res, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
		require.NoError(t, err)
		return res.StatusCode
	}

	t.Run("defaults", func(t *testing.T) {
		require.Equal(t, http.StatusOK, get("/recipes"))
		assert.Equal(t, domain.RecipeListQuery{Skip: 0, Limit: 20, UseUserProfile: true}, svc.query)
	})

	t.Run("explicit values", func(t *testing.T) {
		require.Equal(t, http.StatusOK, get("/recipes?skip=5&limit=10&diet_type=vegan&exclude_intolerances=gluten,%20dairy&use_user_profile=false"))
		assert.Equal(t, domain.RecipeListQuery{
			Skip:                5,
			Limit:               10,
			DietType:            "vegan",
			ExcludeIntolerances: []string{"gluten", "dairy"},
			UseUserProfile:      false,
		}, svc.query)
	})

	t.Run("limit out of range", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, get("/recipes?limit=500"))
	})
}
