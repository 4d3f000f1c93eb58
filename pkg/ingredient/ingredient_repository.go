package ingredient

import (
	"context"
	"errors"
	"strings"

	"pantry-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	IngredientRepository interface {
		CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error
		UpdateIngredient(ctx context.Context, ingredient *entities.Ingredient) error
		GetIngredientByID(ctx context.Context, id uuid.UUID) (*entities.Ingredient, error)
		GetIngredientByCanonicalName(ctx context.Context, canonicalName string) (*entities.Ingredient, error)
		SearchIngredients(ctx context.Context, q string, lang string, limit, offset int) ([]entities.Ingredient, error)
	}

	ingredientRepository struct {
		db *gorm.DB
	}
)

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	return r.db.WithContext(ctx).Create(ingredient).Error
}

func (r *ingredientRepository) UpdateIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	return r.db.WithContext(ctx).Omit("Translations").Save(ingredient).Error
}

func (r *ingredientRepository) GetIngredientByID(ctx context.Context, id uuid.UUID) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	if err := r.db.WithContext(ctx).Preload("Translations").Where("id = ?", id).First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// GetIngredientByCanonicalName returns nil without error when no row matches.
func (r *ingredientRepository) GetIngredientByCanonicalName(ctx context.Context, canonicalName string) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	err := r.db.WithContext(ctx).Where("canonical_name = ?", canonicalName).First(&ingredient).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *ingredientRepository) SearchIngredients(ctx context.Context, q string, lang string, limit, offset int) ([]entities.Ingredient, error) {
	var ingredients []entities.Ingredient
	pattern := "%" + escapeLike(q) + "%"

	matching := r.db.WithContext(ctx).
		Model(&entities.IngredientTranslation{}).
		Select("ingredient_id").
		Where(`lang = ? AND LOWER(name) LIKE LOWER(?) ESCAPE '\'`, lang, pattern)

	err := r.db.WithContext(ctx).
		Preload("Translations").
		Where(`LOWER(display_name) LIKE LOWER(?) ESCAPE '\' OR LOWER(canonical_name) LIKE LOWER(?) ESCAPE '\' OR id IN (?)`, pattern, pattern, matching).
		Order("canonical_name asc").
		Limit(limit).
		Offset(offset).
		Find(&ingredients).Error
	if err != nil {
		return nil, err
	}
	return ingredients, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// escapeLike makes user text match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
