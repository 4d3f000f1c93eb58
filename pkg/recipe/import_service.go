package recipe

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"pantry-backend/domain"
	"pantry-backend/entities"
	"pantry-backend/pkg/ingredient"
	"pantry-backend/pkg/spoonacular"
	"pantry-backend/pkg/translation"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

const (
	SourceSpoonacular = "spoonacular"

	spoonacularIDKey = "spoonacular_id"
)

type (
	ImportService interface {
		ImportRecipe(ctx context.Context, externalID string) (domain.ImportRecipeResponse, error)
		ImportFromSearch(ctx context.Context, req domain.ImportSearchRequest) (domain.ImportBatchResponse, error)
	}

	importService struct {
		provider             spoonacular.Client
		recipeRepository     RecipeRepository
		ingredientRepository ingredient.IngredientRepository
		queue                translation.Queue
		logger               *zap.Logger
	}
)

func NewImportService(
	provider spoonacular.Client,
	recipeRepository RecipeRepository,
	ingredientRepository ingredient.IngredientRepository,
	queue translation.Queue,
	logger *zap.Logger,
) ImportService {
	return &importService{
		provider:             provider,
		recipeRepository:     recipeRepository,
		ingredientRepository: ingredientRepository,
		queue:                queue,
		logger:               logger,
	}
}

// ImportRecipe pulls one recipe from the provider and stores it with its
// ingredients. Importing the same recipe again only links ingredients that
// are not linked yet. Ingredient nutrition lookups are best effort.
func (s *importService) ImportRecipe(ctx context.Context, externalID string) (domain.ImportRecipeResponse, error) {
	id, err := strconv.Atoi(externalID)
	if err != nil || id <= 0 {
		return domain.ImportRecipeResponse{}, domain.ErrInvalidExternalID
	}

	info, err := s.provider.GetRecipeInformation(ctx, id)
	if err != nil {
		return domain.ImportRecipeResponse{}, domain.UpstreamError(SourceSpoonacular, err)
	}
	return s.store(ctx, strconv.Itoa(id), info)
}

// ImportFromSearch imports every recipe of one provider search page. A
// failing recipe is reported by external id and does not stop the others.
func (s *importService) ImportFromSearch(ctx context.Context, req domain.ImportSearchRequest) (domain.ImportBatchResponse, error) {
	result, err := s.provider.SearchRecipes(ctx, spoonacular.SearchParams{
		Query:        req.Query,
		Diet:         req.Diet,
		Intolerances: req.Intolerances,
		Number:       req.Number,
	})
	if err != nil {
		return domain.ImportBatchResponse{}, domain.UpstreamError(SourceSpoonacular, err)
	}

	res := domain.ImportBatchResponse{
		Imported: make([]domain.ImportRecipeResponse, 0, len(result.Results)),
		Failed:   []string{},
	}
	for _, r := range result.Results {
		externalID := strconv.Itoa(r.ID)
		imported, err := s.ImportRecipe(ctx, externalID)
		if err != nil {
			s.logger.Warn("recipe import failed", zap.String("external_id", externalID), zap.Error(err))
			res.Failed = append(res.Failed, externalID)
			continue
		}
		res.Imported = append(res.Imported, imported)
	}
	return res, nil
}

func (s *importService) store(ctx context.Context, externalID string, info *spoonacular.RecipeInformation) (domain.ImportRecipeResponse, error) {
	res := domain.ImportRecipeResponse{TotalIngredients: len(info.ExtendedIngredients)}

	r, err := s.recipeRepository.GetRecipeBySource(ctx, SourceSpoonacular, externalID)
	if err != nil {
		return res, err
	}
	if r == nil {
		r, err = s.createRecipe(ctx, externalID, info)
		if err != nil {
			return res, err
		}
		res.Created = true
		res.TranslationsQueued += s.enqueue(ctx, domain.EntityTypeRecipe, r.ID)
	}
	res.RecipeID = r.ID.String()
	res.Title = r.TitleOriginal

	position := 0
	for _, raw := range info.ExtendedIngredients {
		canonical := ingredient.CanonicalName(raw.Name)
		if canonical == "" {
			continue
		}

		ing, created, err := s.findOrCreateIngredient(ctx, canonical, raw)
		if err != nil {
			return res, err
		}
		if created {
			res.NewIngredients++
			res.TranslationsQueued += s.enqueue(ctx, domain.EntityTypeIngredient, ing.ID)
		}

		link, err := s.recipeRepository.GetRecipeIngredient(ctx, r.ID, ing.ID)
		if err != nil {
			return res, err
		}
		if link == nil {
			amount, unit := raw.Amount, raw.Unit
			if err := s.recipeRepository.CreateRecipeIngredient(ctx, &entities.RecipeIngredient{
				RecipeID:     r.ID,
				IngredientID: ing.ID,
				Amount:       &amount,
				Unit:         &unit,
				Note:         raw.Original,
				Position:     position,
			}); err != nil {
				return res, fmt.Errorf("failed to link ingredient %q: %w", canonical, err)
			}
			res.IngredientsLinked++
		}
		position++
	}

	s.logger.Info("recipe imported",
		zap.String("external_id", externalID),
		zap.Bool("created", res.Created),
		zap.Int("new_ingredients", res.NewIngredients),
		zap.Int("linked", res.IngredientsLinked))
	return res, nil
}

func (s *importService) createRecipe(ctx context.Context, externalID string, info *spoonacular.RecipeInformation) (*entities.Recipe, error) {
	raw, err := json.Marshal(info)
	if err != nil {
		return nil, err
	}
	servings := info.Servings
	if servings <= 0 {
		servings = 1
	}

	r := &entities.Recipe{
		Source:              SourceSpoonacular,
		ExternalID:          externalID,
		TitleOriginal:       info.Title,
		ImageURL:            info.Image,
		Servings:            servings,
		Diets:               datatypes.JSONSlice[string](info.Diets),
		IntolerancesWarn:    datatypes.JSONSlice[string](info.IntoleranceWarnings()),
		NutritionPerServing: info.Nutrition.Macros().Map(),
		InstructionsRaw:     info.Instructions,
		RawJSON:             datatypes.JSON(raw),
	}
	if r.Diets == nil {
		r.Diets = datatypes.JSONSlice[string]{}
	}
	if err := s.recipeRepository.CreateRecipe(ctx, r); err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}
	return r, nil
}

// findOrCreateIngredient reports whether the ingredient was created. An
// existing ingredient without nutrition data is backfilled when the
// provider knows it.
func (s *importService) findOrCreateIngredient(ctx context.Context, canonical string, raw spoonacular.ExtendedIngredient) (*entities.Ingredient, bool, error) {
	ing, err := s.ingredientRepository.GetIngredientByCanonicalName(ctx, canonical)
	if err != nil {
		return nil, false, err
	}

	if ing == nil {
		ing = &entities.Ingredient{
			CanonicalName:    canonical,
			DisplayName:      raw.Name,
			Category:         raw.Aisle,
			DefaultUnit:      raw.Unit,
			SourceIDs:        datatypes.JSONMap{},
			NutritionPer100g: s.nutritionPer100g(ctx, raw.ID),
		}
		if raw.ID > 0 {
			ing.SourceIDs[spoonacularIDKey] = raw.ID
		}
		if err := s.ingredientRepository.CreateIngredient(ctx, ing); err != nil {
			return nil, false, fmt.Errorf("failed to create ingredient %q: %w", canonical, err)
		}
		return ing, true, nil
	}

	if len(ing.NutritionPer100g) == 0 && raw.ID > 0 {
		if facts := s.nutritionPer100g(ctx, raw.ID); facts != nil {
			ing.NutritionPer100g = facts
			if ing.SourceIDs == nil {
				ing.SourceIDs = datatypes.JSONMap{}
			}
			if _, ok := ing.SourceIDs[spoonacularIDKey]; !ok {
				ing.SourceIDs[spoonacularIDKey] = raw.ID
			}
			if err := s.ingredientRepository.UpdateIngredient(ctx, ing); err != nil {
				return nil, false, err
			}
		}
	}
	return ing, false, nil
}

// nutritionPer100g returns nil when the provider has no data or fails.
func (s *importService) nutritionPer100g(ctx context.Context, providerID int) datatypes.JSONMap {
	if providerID <= 0 {
		return nil
	}
	info, err := s.provider.GetIngredientInformation(ctx, providerID, 100, "g")
	if err != nil {
		s.logger.Warn("ingredient nutrition fetch failed",
			zap.Int("spoonacular_id", providerID),
			zap.Error(domain.UpstreamError(SourceSpoonacular, err)))
		return nil
	}
	m := info.Nutrition.Macros().Map()
	if m == nil {
		return nil
	}
	return datatypes.JSONMap(m)
}

// enqueue reports 1 when a translation job was created. Queue failures are
// logged and do not fail the import.
func (s *importService) enqueue(ctx context.Context, entityType string, id uuid.UUID) int {
	created, err := s.queue.Enqueue(ctx, entityType, id)
	if err != nil {
		s.logger.Warn("failed to enqueue translation", zap.String("entity_type", entityType), zap.String("entity_id", id.String()), zap.Error(err))
		return 0
	}
	if created {
		return 1
	}
	return 0
}
