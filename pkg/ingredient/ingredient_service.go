package ingredient

import (
	"context"
	"strings"

	"pantry-backend/domain"
	"pantry-backend/pkg/naming"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 50
)

type (
	IngredientService interface {
		SearchIngredients(ctx context.Context, query domain.IngredientSearchQuery) ([]domain.IngredientResponse, error)
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
		lang                 string
	}
)

func NewIngredientService(ingredientRepository IngredientRepository, lang string) IngredientService {
	return &ingredientService{
		ingredientRepository: ingredientRepository,
		lang:                 lang,
	}
}

func (s *ingredientService) SearchIngredients(ctx context.Context, query domain.IngredientSearchQuery) ([]domain.IngredientResponse, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	ingredients, err := s.ingredientRepository.SearchIngredients(ctx, strings.TrimSpace(query.Q), s.lang, limit, query.Offset)
	if err != nil {
		return nil, err
	}

	res := make([]domain.IngredientResponse, 0, len(ingredients))
	for i := range ingredients {
		ing := &ingredients[i]
		res = append(res, domain.IngredientResponse{
			ID:            ing.ID.String(),
			Name:          naming.IngredientName(ing, s.lang),
			CanonicalName: ing.CanonicalName,
			Category:      ing.Category,
			HasNutrition:  len(ing.NutritionPer100g) > 0,
		})
	}
	return res, nil
}
