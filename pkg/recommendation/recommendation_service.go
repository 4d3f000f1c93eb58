package recommendation

import (
	"context"
	"time"

	"pantry-backend/domain"
	"pantry-backend/pkg/naming"
	"pantry-backend/pkg/nutrition"
	"pantry-backend/pkg/pantry"
	"pantry-backend/pkg/recipe"

	"github.com/google/uuid"
)

const (
	DefaultDays  = 3
	DefaultLimit = 20
)

type (
	RecommendationService interface {
		ExpiringRecommendations(ctx context.Context, userID string, days, limit int) ([]domain.ExpiringRecipeRecommendation, error)
	}

	recommendationService struct {
		pantryRepository pantry.PantryRepository
		recipeRepository recipe.RecipeRepository
		lang             string
		now              func() time.Time
	}
)

func NewRecommendationService(pantryRepository pantry.PantryRepository, recipeRepository recipe.RecipeRepository, lang string) RecommendationService {
	return &recommendationService{
		pantryRepository: pantryRepository,
		recipeRepository: recipeRepository,
		lang:             lang,
		now:              time.Now,
	}
}

// ExpiringRecommendations looks at stock expiring between today 00:00 and
// the same time days later.
func (s *recommendationService) ExpiringRecommendations(ctx context.Context, userID string, days, limit int) ([]domain.ExpiringRecipeRecommendation, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	if days < 0 {
		days = DefaultDays
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	today := s.now().UTC().Truncate(24 * time.Hour)
	end := today.AddDate(0, 0, days)

	items, err := s.pantryRepository.GetPantryItemsByExpiryRange(ctx, userUUID, today, end)
	if err != nil {
		return nil, err
	}
	res := []domain.ExpiringRecipeRecommendation{}
	if len(items) == 0 {
		return res, nil
	}

	index := IndexExpiring(items, today)
	ids := make([]uuid.UUID, 0, len(index))
	for id := range index {
		ids = append(ids, id)
	}

	recipes, err := s.recipeRepository.GetRecipesByIngredients(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, r := range Rank(recipes, index, limit) {
		expiring := make([]domain.ExpiringIngredient, 0, len(r.Expiring))
		for _, e := range r.Expiring {
			expiring = append(expiring, domain.ExpiringIngredient{
				IngredientID:    e.IngredientID.String(),
				Name:            naming.IngredientName(e.Ingredient, s.lang),
				ExpiresAt:       e.ExpiresAt.Format("2006-01-02"),
				DaysUntilExpiry: e.DaysUntil,
			})
		}
		res = append(res, domain.ExpiringRecipeRecommendation{
			RecipeID:            r.Recipe.ID.String(),
			Title:               naming.RecipeTitle(r.Recipe, s.lang),
			ImageURL:            r.Recipe.ImageURL,
			Servings:            r.Recipe.Servings,
			MacrosPerServing:    nutrition.RecipeMacros(nutrition.FromMap(r.Recipe.NutritionPerServing), 1),
			ExpiringCount:       r.ExpiringCount,
			TotalCount:          r.TotalCount,
			CoverageRatio:       domain.Round(r.Coverage, 2),
			ExpiringIngredients: expiring,
		})
	}
	return res, nil
}
