// Package foodlog records consumption events and sums their macros per day.
package foodlog

import (
	"context"
	"errors"
	"strings"
	"time"

	"pantry-backend/domain"
	"pantry-backend/entities"
	"pantry-backend/pkg/ingredient"
	"pantry-backend/pkg/naming"
	"pantry-backend/pkg/nutrition"
	"pantry-backend/pkg/recipe"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	dateLayout      = "2006-01-02"
	servingsUnit    = "servings"
	defaultLogUnit  = "g"
	defaultServings = 1.0
)

type (
	FoodLogService interface {
		LogRecipe(ctx context.Context, req domain.LogRecipeRequest, userID string) (domain.FoodLogEntry, error)
		LogIngredient(ctx context.Context, req domain.LogIngredientRequest, userID string) (domain.FoodLogEntry, error)
		DailySummary(ctx context.Context, date string, userID string) (domain.DailySummaryResponse, error)
		DeleteFoodLog(ctx context.Context, id string, userID string) error
	}

	foodLogService struct {
		foodLogRepository    FoodLogRepository
		recipeRepository     recipe.RecipeRepository
		ingredientRepository ingredient.IngredientRepository
		lang                 string
		now                  func() time.Time
	}
)

func NewFoodLogService(
	foodLogRepository FoodLogRepository,
	recipeRepository recipe.RecipeRepository,
	ingredientRepository ingredient.IngredientRepository,
	lang string,
) FoodLogService {
	return &foodLogService{
		foodLogRepository:    foodLogRepository,
		recipeRepository:     recipeRepository,
		ingredientRepository: ingredientRepository,
		lang:                 lang,
		now:                  time.Now,
	}
}

// LogRecipe stores the macros of the servings eaten as a snapshot so later
// nutrition edits do not rewrite history.
func (s *foodLogService) LogRecipe(ctx context.Context, req domain.LogRecipeRequest, userID string) (domain.FoodLogEntry, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.FoodLogEntry{}, domain.ErrParseUUID
	}
	recipeID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		return domain.FoodLogEntry{}, domain.ErrParseUUID
	}

	r, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodLogEntry{}, domain.ErrRecipeNotFound
		}
		return domain.FoodLogEntry{}, err
	}

	servings := defaultServings
	if req.Servings != nil {
		servings = *req.Servings
	}
	macros := nutrition.RecipeMacros(nutrition.FromMap(r.NutritionPerServing), servings)

	log := &entities.UserFoodLog{
		UserID:            userUUID,
		Type:              domain.FoodLogTypeRecipe,
		RecipeID:          &r.ID,
		Quantity:          servings,
		Unit:              servingsUnit,
		NutritionSnapshot: macros.ToMap(),
		LoggedAt:          s.loggedAt(req.LoggedAt),
	}
	if err := s.foodLogRepository.CreateFoodLog(ctx, log); err != nil {
		return domain.FoodLogEntry{}, err
	}
	log.Recipe = r

	return s.toEntry(log, macros), nil
}

func (s *foodLogService) LogIngredient(ctx context.Context, req domain.LogIngredientRequest, userID string) (domain.FoodLogEntry, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.FoodLogEntry{}, domain.ErrParseUUID
	}
	ingredientID, err := uuid.Parse(req.IngredientID)
	if err != nil {
		return domain.FoodLogEntry{}, domain.ErrParseUUID
	}

	ing, err := s.ingredientRepository.GetIngredientByID(ctx, ingredientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodLogEntry{}, domain.ErrIngredientNotFound
		}
		return domain.FoodLogEntry{}, err
	}

	unit := strings.TrimSpace(req.Unit)
	if unit == "" {
		unit = defaultLogUnit
	}
	macros := nutrition.IngredientMacros(nutrition.FromMap(ing.NutritionPer100g), req.Quantity, unit)

	log := &entities.UserFoodLog{
		UserID:            userUUID,
		Type:              domain.FoodLogTypeIngredient,
		IngredientID:      &ing.ID,
		Quantity:          req.Quantity,
		Unit:              unit,
		NutritionSnapshot: macros.ToMap(),
		LoggedAt:          s.loggedAt(req.LoggedAt),
	}
	if err := s.foodLogRepository.CreateFoodLog(ctx, log); err != nil {
		return domain.FoodLogEntry{}, err
	}
	log.Ingredient = ing

	return s.toEntry(log, macros), nil
}

// DailySummary lists one UTC day of logs. An empty date means today. Each
// entry uses its stored snapshot and falls back to the current nutrition
// data only when no snapshot was recorded.
func (s *foodLogService) DailySummary(ctx context.Context, date string, userID string) (domain.DailySummaryResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.DailySummaryResponse{}, domain.ErrParseUUID
	}

	day := s.now().UTC().Truncate(24 * time.Hour)
	if date != "" {
		day, err = time.ParseInLocation(dateLayout, date, time.UTC)
		if err != nil {
			return domain.DailySummaryResponse{}, domain.ErrInvalidLogDate
		}
	}

	logs, err := s.foodLogRepository.GetFoodLogsBetween(ctx, userUUID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return domain.DailySummaryResponse{}, err
	}

	res := domain.DailySummaryResponse{
		Date:    day.Format(dateLayout),
		Entries: make([]domain.FoodLogEntry, 0, len(logs)),
	}
	var totals domain.MacroTotals
	for i := range logs {
		macros := macrosOf(&logs[i])
		totals = totals.Add(macros)
		res.Entries = append(res.Entries, s.toEntry(&logs[i], macros))
	}
	res.Totals = totals.Rounded()

	return res, nil
}

func (s *foodLogService) DeleteFoodLog(ctx context.Context, id string, userID string) error {
	logID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrParseUUID
	}

	log, err := s.foodLogRepository.GetFoodLogByID(ctx, logID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodLogNotFound
		}
		return err
	}
	if log.UserID.String() != userID {
		return domain.ErrFoodLogNotFound
	}
	return s.foodLogRepository.DeleteFoodLog(ctx, log.ID)
}

func (s *foodLogService) loggedAt(t *time.Time) time.Time {
	if t == nil {
		return s.now().UTC()
	}
	return t.UTC()
}

func macrosOf(log *entities.UserFoodLog) domain.MacroTotals {
	if snap, ok := nutrition.SnapshotFromMap(log.NutritionSnapshot); ok {
		return snap
	}
	switch {
	case log.Type == domain.FoodLogTypeRecipe && log.Recipe != nil:
		return nutrition.RecipeMacros(nutrition.FromMap(log.Recipe.NutritionPerServing), log.Quantity)
	case log.Type == domain.FoodLogTypeIngredient && log.Ingredient != nil:
		return nutrition.IngredientMacros(nutrition.FromMap(log.Ingredient.NutritionPer100g), log.Quantity, log.Unit)
	}
	return domain.MacroTotals{}
}

func (s *foodLogService) toEntry(log *entities.UserFoodLog, macros domain.MacroTotals) domain.FoodLogEntry {
	entry := domain.FoodLogEntry{
		ID:       log.ID.String(),
		Type:     log.Type,
		Quantity: log.Quantity,
		Unit:     log.Unit,
		Macros:   macros,
		LoggedAt: log.LoggedAt,
	}
	if log.RecipeID != nil {
		id := log.RecipeID.String()
		entry.RecipeID = &id
	}
	if log.IngredientID != nil {
		id := log.IngredientID.String()
		entry.IngredientID = &id
	}
	switch {
	case log.Type == domain.FoodLogTypeRecipe && log.Recipe != nil:
		entry.Name = naming.RecipeTitle(log.Recipe, s.lang)
	case log.Type == domain.FoodLogTypeIngredient && log.Ingredient != nil:
		entry.Name = naming.IngredientName(log.Ingredient, s.lang)
	}
	return entry
}
