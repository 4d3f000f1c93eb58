package recipe

import (
	"context"
	"errors"

	"pantry-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id uuid.UUID) (*entities.Recipe, error)
		GetRecipeBySource(ctx context.Context, source, externalID string) (*entities.Recipe, error)
		GetRecipes(ctx context.Context) ([]entities.Recipe, error)
		GetRecipesByIngredients(ctx context.Context, ingredientIDs []uuid.UUID) ([]entities.Recipe, error)

		GetRecipeIngredient(ctx context.Context, recipeID, ingredientID uuid.UUID) (*entities.RecipeIngredient, error)
		CreateRecipeIngredient(ctx context.Context, link *entities.RecipeIngredient) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Omit("Translations", "Ingredients").Create(recipe).Error
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Omit("Translations", "Ingredients").Save(recipe).Error
}

// GetRecipeByID loads the recipe with its translations and its ingredient
// lines, each with the ingredient and the ingredient's translations.
func (r *recipeRepository) GetRecipeByID(ctx context.Context, id uuid.UUID) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Translations").
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc, created_at asc")
		}).
		Preload("Ingredients.Ingredient.Translations").
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// GetRecipeBySource returns nil without error when the recipe was never imported.
func (r *recipeRepository) GetRecipeBySource(ctx context.Context, source, externalID string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	err := r.db.WithContext(ctx).Where("source = ? AND external_id = ?", source, externalID).First(&recipe).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipes(ctx context.Context) ([]entities.Recipe, error) {
	var recipes []entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Translations").
		Preload("Ingredients").
		Order("created_at asc, id asc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetRecipesByIngredients(ctx context.Context, ingredientIDs []uuid.UUID) ([]entities.Recipe, error) {
	var recipes []entities.Recipe
	if len(ingredientIDs) == 0 {
		return recipes, nil
	}

	linked := r.db.WithContext(ctx).
		Model(&entities.RecipeIngredient{}).
		Select("recipe_id").
		Where("ingredient_id IN ?", ingredientIDs)

	if err := r.db.WithContext(ctx).
		Preload("Translations").
		Preload("Ingredients").
		Where("id IN (?)", linked).
		Order("created_at asc, id asc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetRecipeIngredient returns nil without error when the pair is not linked.
func (r *recipeRepository) GetRecipeIngredient(ctx context.Context, recipeID, ingredientID uuid.UUID) (*entities.RecipeIngredient, error) {
	var link entities.RecipeIngredient
	err := r.db.WithContext(ctx).
		Where("recipe_id = ? AND ingredient_id = ?", recipeID, ingredientID).
		First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *recipeRepository) CreateRecipeIngredient(ctx context.Context, link *entities.RecipeIngredient) error {
	return r.db.WithContext(ctx).Omit("Ingredient").Create(link).Error
}
