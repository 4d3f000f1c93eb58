package recipe

import (
	"context"
	"errors"

	"pantry-backend/domain"
	"pantry-backend/entities"
	"pantry-backend/pkg/dietary"
	"pantry-backend/pkg/naming"
	"pantry-backend/pkg/nutrition"
	"pantry-backend/pkg/pantry"
	"pantry-backend/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultListLimit = 20

type (
	RecipeService interface {
		GetRecipes(ctx context.Context, query domain.RecipeListQuery, userID string) (domain.RecipeListResponse, error)
		GetRecipeDetail(ctx context.Context, recipeID string, userID string) (domain.RecipeDetail, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		pantryRepository pantry.PantryRepository
		userRepository   user.UserRepository
		lang             string
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	pantryRepository pantry.PantryRepository,
	userRepository user.UserRepository,
	lang string,
) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		pantryRepository: pantryRepository,
		userRepository:   userRepository,
		lang:             lang,
	}
}

// GetRecipes filters recipes by the effective diet and intolerances, then
// paginates the filtered list. With UseUserProfile the caller's profile
// fills in whichever filter the query leaves empty.
func (s *recipeService) GetRecipes(ctx context.Context, query domain.RecipeListQuery, userID string) (domain.RecipeListResponse, error) {
	u, err := s.getUser(ctx, userID)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	diet := query.DietType
	excluded := query.ExcludeIntolerances
	if query.UseUserProfile && u != nil {
		if diet == "" && u.DietType != nil {
			diet = *u.DietType
		}
		if len(excluded) == 0 {
			excluded = u.Intolerances
		}
	}

	recipes, err := s.recipeRepository.GetRecipes(ctx)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	filtered := make([]*entities.Recipe, 0, len(recipes))
	for i := range recipes {
		r := &recipes[i]
		if len(r.Ingredients) == 0 {
			continue
		}
		if diet != "" && !dietary.IsCompatible(r.Diets, diet) {
			continue
		}
		if len(excluded) > 0 && len(dietary.IntoleranceWarnings(r.IntolerancesWarn, excluded)) > 0 {
			continue
		}
		filtered = append(filtered, r)
	}

	limit := query.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	start := min(max(query.Skip, 0), len(filtered))
	end := min(start+limit, len(filtered))

	items := make([]domain.RecipeListItem, 0, end-start)
	for _, r := range filtered[start:end] {
		compatible, warnings := compatibilityFor(r, u)
		items = append(items, domain.RecipeListItem{
			ID:                    r.ID.String(),
			Title:                 naming.RecipeTitle(r, s.lang),
			ImageURL:              r.ImageURL,
			Servings:              r.Servings,
			Diets:                 labels(r.Diets),
			MacrosPerServing:      nutrition.RecipeMacros(nutrition.FromMap(r.NutritionPerServing), 1),
			IsCompatibleWithUser:  compatible,
			IntoleranceWarnings:   warnings,
			TotalIngredientsCount: len(r.Ingredients),
		})
	}

	return domain.RecipeListResponse{Recipes: items, TotalFiltered: len(filtered)}, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID string, userID string) (domain.RecipeDetail, error) {
	id, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.RecipeDetail{}, domain.ErrParseUUID
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeDetail{}, domain.ErrParseUUID
	}

	r, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetail{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetail{}, err
	}

	u, err := s.getUser(ctx, userID)
	if err != nil {
		return domain.RecipeDetail{}, err
	}

	stock, err := StockFor(ctx, s.pantryRepository, userUUID, r.Ingredients)
	if err != nil {
		return domain.RecipeDetail{}, err
	}

	ingredients := make([]domain.RecipeIngredientDetail, 0, len(r.Ingredients))
	for _, line := range r.Ingredients {
		ingredients = append(ingredients, s.ingredientDetail(line, stock[line.IngredientID]))
	}

	compatible, warnings := compatibilityFor(r, u)
	return domain.RecipeDetail{
		ID:                   r.ID.String(),
		Title:                naming.RecipeTitle(r, s.lang),
		ImageURL:             r.ImageURL,
		Servings:             r.Servings,
		Diets:                labels(r.Diets),
		Instructions:         naming.RecipeInstructions(r, s.lang),
		Summary:              s.summary(r),
		MacrosPerServing:     nutrition.RecipeMacros(nutrition.FromMap(r.NutritionPerServing), 1),
		IsCompatibleWithUser: compatible,
		IntoleranceWarnings:  warnings,
		Ingredients:          ingredients,
	}, nil
}

func (s *recipeService) ingredientDetail(line entities.RecipeIngredient, stock pantry.Stock) domain.RecipeIngredientDetail {
	avail := pantry.Resolve(pantry.Requirement{Amount: line.Amount, Unit: line.Unit}, stock)

	detail := domain.RecipeIngredientDetail{
		IngredientID:  line.IngredientID.String(),
		Amount:        line.Amount,
		Unit:          line.Unit,
		Note:          line.Note,
		IsAvailable:   avail.Available,
		PantryUnit:    avail.PantryUnit,
		MissingAmount: avail.Missing,
	}
	if avail.PantryQuantity > 0 {
		qty := avail.PantryQuantity
		detail.PantryQuantity = &qty
	}
	if line.Ingredient != nil {
		detail.Name = naming.IngredientName(line.Ingredient, s.lang)
		detail.CanonicalName = line.Ingredient.CanonicalName
		if line.Amount != nil {
			unit := ""
			if line.Unit != nil {
				unit = *line.Unit
			}
			detail.Nutrition = nutrition.IngredientMacros(nutrition.FromMap(line.Ingredient.NutritionPer100g), *line.Amount, unit)
		}
	}
	return detail
}

func (s *recipeService) summary(r *entities.Recipe) string {
	for _, t := range r.Translations {
		if t.Lang == s.lang {
			return t.Summary
		}
	}
	return ""
}

// getUser returns nil when the caller has no stored profile.
func (s *recipeService) getUser(ctx context.Context, userID string) (*entities.User, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	u, err := s.userRepository.GetUserByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// StockFor loads the user's pantry stock for every ingredient of a recipe.
func StockFor(ctx context.Context, repo pantry.PantryRepository, userID uuid.UUID, lines []entities.RecipeIngredient) (map[uuid.UUID]pantry.Stock, error) {
	ids := make([]uuid.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.IngredientID)
	}
	items, err := repo.GetPantryItemsByIngredients(ctx, userID, ids)
	if err != nil {
		return nil, err
	}
	return pantry.GroupStock(items), nil
}

// compatibilityFor is nil when the user declared neither a diet nor intolerances.
func compatibilityFor(r *entities.Recipe, u *entities.User) (*bool, []string) {
	if u == nil || (u.DietType == nil && len(u.Intolerances) == 0) {
		return nil, []string{}
	}
	dietOK := true
	if u.DietType != nil {
		dietOK = dietary.IsCompatible(r.Diets, *u.DietType)
	}
	warnings := dietary.IntoleranceWarnings(r.IntolerancesWarn, u.Intolerances)
	compatible := dietOK && len(warnings) == 0
	return &compatible, warnings
}

func labels(l []string) []string {
	if l == nil {
		return []string{}
	}
	return l
}
